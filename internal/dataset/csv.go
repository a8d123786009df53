package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
)

// Columns is the dataset header, in the exact order written to and expected
// from binding_energy_per_A.csv.
var Columns = []string{"N", "Z", "E", "U(E)", "known", "A", "N-Z", "N/Z"}

// WriteCSV writes recs to w as a CSV document: one header row, then one row
// per record in the given order. Absent energies become empty fields and
// non-finite ratios are spelled "inf"/"-inf", matching the files the rest of
// the pipeline reads.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(Columns))
	for i, r := range recs {
		row[0] = strconv.Itoa(r.N)
		row[1] = strconv.Itoa(r.Z)
		row[2] = formatFloat(r.E)
		row[3] = formatFloat(r.UE)
		row[4] = formatKnown(r.Known)
		row[5] = strconv.Itoa(r.A)
		row[6] = strconv.Itoa(r.Excess)
		row[7] = formatFloat(r.Ratio)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes recs to a CSV file at path, replacing any existing
// file.
func WriteCSVFile(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	if err := WriteCSV(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a dataset document produced by WriteCSV. The header must
// match Columns exactly; any malformed row aborts the read.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if !slices.Equal(header, Columns) {
		return nil, fmt.Errorf("unexpected CSV header %v, want %v", header, Columns)
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadCSVFile reads the dataset file at path.
func ReadCSVFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	recs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(Columns) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(row))
	}

	var (
		rec Record
		err error
	)
	if rec.N, err = parseIntColumn("N", row[0]); err != nil {
		return Record{}, err
	}
	if rec.Z, err = parseIntColumn("Z", row[1]); err != nil {
		return Record{}, err
	}
	if rec.E, err = parseFloatColumn("E", row[2]); err != nil {
		return Record{}, err
	}
	if rec.UE, err = parseFloatColumn("U(E)", row[3]); err != nil {
		return Record{}, err
	}
	if rec.Known, err = parseKnown(row[4]); err != nil {
		return Record{}, err
	}
	if rec.A, err = parseIntColumn("A", row[5]); err != nil {
		return Record{}, err
	}
	if rec.Excess, err = parseIntColumn("N-Z", row[6]); err != nil {
		return Record{}, err
	}
	if rec.Ratio, err = parseFloatColumn("N/Z", row[7]); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseIntColumn(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as an integer", name, s)
	}
	return v, nil
}

// parseFloatColumn parses a float field, treating an empty field as a
// missing value. ParseFloat already understands the "inf" spelling.
func parseFloatColumn(name, s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as a number", name, s)
	}
	return v, nil
}

func parseKnown(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("column known: want 0 or 1, got %q", s)
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatKnown(known bool) string {
	if known {
		return "1"
	}
	return "0"
}
