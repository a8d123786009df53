package parser

import "github.com/user/binding_energy_go/internal/dataset"

// The AME2020 mass table is a fixed-width format: every data line lays out
// its fields at the same character offsets, padded with spaces. columnWidths
// lists the width of every field in file order; the decoder extracts only
// the four addressed by the indices below.
var columnWidths = []int{1, 3, 5, 5, 5, 1, 3, 4, 1, 14, 12, 13, 1, 10, 1, 2, 13, 11, 1, 3, 1, 13, 12}

const (
	colNeutrons         = 2  // N
	colProtons          = 3  // Z
	colBindingEnergy    = 11 // binding energy per nucleon, keV
	colBindingEnergyUnc = 13 // uncertainty on the binding energy, keV
)

// HeaderLineCount is the number of banner lines preceding the first data row
// of the mass table.
const HeaderLineCount = 29

// EstimationMarker flags values obtained from systematic trends rather than
// direct measurement. It is stripped before numeric parsing and does not
// change the value.
const EstimationMarker = "#"

// span is a half-open [start, end) character range within a data line.
type span struct {
	start, end int
}

func (s span) slice(line string) string {
	return line[s.start:s.end]
}

func fieldSpan(col int) span {
	var s span
	for i := 0; i < col; i++ {
		s.start += columnWidths[i]
	}
	s.end = s.start + columnWidths[col]
	return s
}

var (
	neutronsSpan = fieldSpan(colNeutrons)
	protonsSpan  = fieldSpan(colProtons)
	energySpan   = fieldSpan(colBindingEnergy)
	uncSpan      = fieldSpan(colBindingEnergyUnc)
)

// minLineLength is how long a data line must be for every extracted field to
// be sliceable. Shorter lines are structurally broken.
var minLineLength = uncSpan.end

// MassTable is the decoded content of a mass table file.
type MassTable struct {
	Path    string
	Records []dataset.Record
}

// MeasuredCount reports how many records carry a binding energy value,
// measured or estimated.
func (t *MassTable) MeasuredCount() int {
	count := 0
	for _, r := range t.Records {
		if r.Known {
			count++
		}
	}
	return count
}
