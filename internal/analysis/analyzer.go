package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/user/binding_energy_go/internal/dataset"
)

// Summarize computes dataset-wide statistics from decoded nuclide records:
// coverage counts, axis extents, rankings, and the binding energy curve.
// Energies keep whatever unit the records carry.
func Summarize(records []dataset.Record) (*Summary, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to summarize")
	}

	sum := NewSummary()
	sum.Total = len(records)
	sum.MinA, sum.MaxA = records[0].A, records[0].A
	sum.MinExcess, sum.MaxExcess = records[0].Excess, records[0].Excess

	// Best record per mass number, by binding energy.
	bestPerA := make(map[int]dataset.Record)

	for _, r := range records {
		if r.A < sum.MinA {
			sum.MinA = r.A
		}
		if r.A > sum.MaxA {
			sum.MaxA = r.A
		}
		if r.Excess < sum.MinExcess {
			sum.MinExcess = r.Excess
		}
		if r.Excess > sum.MaxExcess {
			sum.MaxExcess = r.Excess
		}

		if r.Known {
			sum.Measured++
		}
		if !math.IsNaN(r.E) {
			sum.RankedMostBound = append(sum.RankedMostBound, RankedNuclide{N: r.N, Z: r.Z, A: r.A, Value: r.E})
			if best, ok := bestPerA[r.A]; !ok || r.E > best.E {
				bestPerA[r.A] = r
			}
		}
		if !math.IsNaN(r.UE) {
			sum.RankedUncertain = append(sum.RankedUncertain, RankedNuclide{N: r.N, Z: r.Z, A: r.A, Value: r.UE})
		}
	}
	sum.Missing = sum.Total - sum.Measured

	sort.SliceStable(sum.RankedMostBound, func(i, j int) bool {
		return sum.RankedMostBound[i].Value > sum.RankedMostBound[j].Value
	})
	sort.SliceStable(sum.RankedUncertain, func(i, j int) bool {
		return sum.RankedUncertain[i].Value > sum.RankedUncertain[j].Value
	})

	for a, r := range bestPerA {
		sum.CurvePerA = append(sum.CurvePerA, CurvePoint{A: a, E: r.E, N: r.N, Z: r.Z})
	}
	sort.Slice(sum.CurvePerA, func(i, j int) bool {
		return sum.CurvePerA[i].A < sum.CurvePerA[j].A
	})

	return sum, nil
}
