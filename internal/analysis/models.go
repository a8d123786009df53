package analysis

// RankedNuclide identifies one nuclide in a ranking together with the value
// it was ranked by.
type RankedNuclide struct {
	N     int
	Z     int
	A     int
	Value float64
}

// CurvePoint is one point on the binding energy curve: the most bound
// nuclide found at a given mass number.
type CurvePoint struct {
	A int
	E float64
	N int
	Z int
}

// Summary holds dataset-wide statistics computed from the decoded records.
type Summary struct {
	Total    int // records in the dataset
	Measured int // records with a binding energy value
	Missing  int // records with a blank binding energy field

	MinA      int
	MaxA      int
	MinExcess int
	MaxExcess int

	RankedMostBound []RankedNuclide // by binding energy, descending
	RankedUncertain []RankedNuclide // by uncertainty, descending
	CurvePerA       []CurvePoint    // by mass number, ascending
}

func NewSummary() *Summary {
	return &Summary{
		RankedMostBound: make([]RankedNuclide, 0),
		RankedUncertain: make([]RankedNuclide, 0),
		CurvePerA:       make([]CurvePoint, 0),
	}
}
