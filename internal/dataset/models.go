package dataset

// Record is one nuclide from the mass table together with the columns
// derived from it. Energies stay in the source unit (keV) until ToMeV is
// applied, so the CSV on disk always matches the table it was decoded from.
type Record struct {
	N  int     // neutron count
	Z  int     // proton count
	E  float64 // binding energy per nucleon (keV); NaN when absent in the source
	UE float64 // uncertainty on E (keV); NaN when absent

	// Known reports whether the raw binding-energy field was present at all.
	// Values estimated from systematics carry an estimation marker but are
	// still present, so they count as known.
	Known bool

	A      int     // mass number, N + Z
	Excess int     // neutron excess, N - Z
	Ratio  float64 // N/Z; +Inf when Z == 0 and N > 0
}

// NewRecord builds a record and fills in the derived columns. Division by a
// zero proton count yields the usual IEEE non-finite values rather than an
// error; the lone neutron row (N=1, Z=0) is a legitimate table entry.
func NewRecord(n, z int, e, ue float64, known bool) Record {
	return Record{
		N:      n,
		Z:      z,
		E:      e,
		UE:     ue,
		Known:  known,
		A:      n + z,
		Excess: n - z,
		Ratio:  float64(n) / float64(z),
	}
}

// ToMeV returns a copy of recs with E and U(E) converted from keV to MeV.
// The input slice is not modified.
func ToMeV(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		r.E /= 1000
		r.UE /= 1000
		out[i] = r
	}
	return out
}
