package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Grid is the dataset pivoted into a dense matrix: one row per distinct
// neutron excess (ascending), one column per distinct mass number
// (ascending). Cells with no nuclide at that (N-Z, A) coordinate hold NaN.
//
// Grid implements gonum's plotter.GridXYZ, so it can be handed straight to a
// heatmap.
type Grid struct {
	as     []int       // distinct mass numbers, ascending
	excess []int       // distinct neutron excess values, ascending
	cells  [][]float64 // [row][col] binding energy; NaN marks an empty cell
}

// Pivot reshapes recs into a Grid keyed by (N-Z, A) with E as the cell
// value. Records whose E is absent still claim their coordinate; the cell
// simply stays NaN. Since (N-Z, A) determines (N, Z) uniquely, a duplicate
// coordinate means the input carries conflicting records and is an error.
func Pivot(recs []Record) (*Grid, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("no records to pivot")
	}

	aSet := make(map[int]bool)
	excessSet := make(map[int]bool)
	for _, r := range recs {
		aSet[r.A] = true
		excessSet[r.Excess] = true
	}

	g := &Grid{as: sortedKeys(aSet), excess: sortedKeys(excessSet)}
	colOf := indexOf(g.as)
	rowOf := indexOf(g.excess)

	g.cells = make([][]float64, len(g.excess))
	for i := range g.cells {
		row := make([]float64, len(g.as))
		for j := range row {
			row[j] = math.NaN()
		}
		g.cells[i] = row
	}

	seen := make(map[[2]int]bool, len(recs))
	for _, r := range recs {
		key := [2]int{r.Excess, r.A}
		if seen[key] {
			return nil, fmt.Errorf("duplicate grid coordinate N-Z=%d, A=%d", r.Excess, r.A)
		}
		seen[key] = true
		g.cells[rowOf[r.Excess]][colOf[r.A]] = r.E
	}
	return g, nil
}

// Dims, Z, X and Y implement plotter.GridXYZ. X coordinates are mass numbers
// and Y coordinates neutron excess values, so a heatmap drawn from the grid
// carries the real physical scales on its axes.

func (g *Grid) Dims() (c, r int) { return len(g.as), len(g.excess) }

func (g *Grid) Z(c, r int) float64 { return g.cells[r][c] }

func (g *Grid) X(c int) float64 { return float64(g.as[c]) }

func (g *Grid) Y(r int) float64 { return float64(g.excess[r]) }

// MassNumbers returns the distinct mass numbers backing the columns,
// ascending.
func (g *Grid) MassNumbers() []int {
	out := make([]int, len(g.as))
	copy(out, g.as)
	return out
}

// ExcessValues returns the distinct neutron excess values backing the rows,
// ascending.
func (g *Grid) ExcessValues() []int {
	out := make([]int, len(g.excess))
	copy(out, g.excess)
	return out
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func indexOf(vals []int) map[int]int {
	idx := make(map[int]int, len(vals))
	for i, v := range vals {
		idx[v] = i
	}
	return idx
}
