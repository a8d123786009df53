package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/user/binding_energy_go/internal/dataset"
)

// ParseMassTable reads the mass table at path and decodes every data row
// into a nuclide record, preserving file order.
func ParseMassTable(path string) (*MassTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mass table: %w", err)
	}
	defer file.Close()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &MassTable{Path: path, Records: records}, nil
}

// Parse decodes mass table data from r. The banner is skipped, then every
// remaining non-blank line must slice cleanly into the four extracted
// fields. A structurally broken line aborts the whole parse; partial files
// are not recovered.
func Parse(r io.Reader) ([]dataset.Record, error) {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for lineNo < HeaderLineCount && scanner.Scan() {
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mass table: %w", err)
	}
	if lineNo < HeaderLineCount {
		return nil, fmt.Errorf("file ended after %d lines, want a %d-line banner before data", lineNo, HeaderLineCount)
	}

	var records []dataset.Record
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mass table: %w", err)
	}
	return records, nil
}

func decodeLine(line string) (dataset.Record, error) {
	if len(line) < minLineLength {
		return dataset.Record{}, fmt.Errorf("line is %d characters, want at least %d", len(line), minLineLength)
	}

	n, err := parseCount("N", neutronsSpan.slice(line))
	if err != nil {
		return dataset.Record{}, err
	}
	z, err := parseCount("Z", protonsSpan.slice(line))
	if err != nil {
		return dataset.Record{}, err
	}
	e, known, err := parseEnergy("E", energySpan.slice(line))
	if err != nil {
		return dataset.Record{}, err
	}
	// known reflects only the E field; the uncertainty may be blank on its
	// own without changing the flag.
	ue, _, err := parseEnergy("U(E)", uncSpan.slice(line))
	if err != nil {
		return dataset.Record{}, err
	}
	return dataset.NewRecord(n, z, e, ue, known), nil
}

func parseCount(name, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s field %q as an integer", name, field)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s field %q is negative", name, field)
	}
	return v, nil
}

// parseEnergy decodes a binding energy field. A blank field means no value
// was ever published for the nuclide; a field carrying the estimation marker
// is still a value, so the marker is stripped and the rest parsed normally.
func parseEnergy(name, field string) (float64, bool, error) {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return math.NaN(), false, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, EstimationMarker, ""), 64)
	if err != nil {
		return 0, false, fmt.Errorf("cannot parse %s field %q as a number", name, field)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%s field %q is not a finite number", name, field)
	}
	return v, true, nil
}
