package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotPlacesRecordsByExcessAndMass(t *testing.T) {
	recs := []Record{
		NewRecord(10, 10, 8032.240, 0.1, true), // A=20, N-Z=0
		NewRecord(12, 8, 7568.570, 0.1, true),  // A=20, N-Z=4
		NewRecord(11, 10, 7971.713, 0.1, true), // A=21, N-Z=1
	}

	g, err := Pivot(recs)
	require.NoError(t, err)

	assert.Equal(t, []int{20, 21}, g.MassNumbers())
	assert.Equal(t, []int{0, 1, 4}, g.ExcessValues())

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, r)

	// Same mass number, one column; different excess, different rows.
	assert.Equal(t, 8032.240, g.Z(0, 0))
	assert.Equal(t, 7568.570, g.Z(0, 2))
	assert.Equal(t, 7971.713, g.Z(1, 1))
}

func TestPivotFillsGapsWithNaN(t *testing.T) {
	recs := []Record{
		NewRecord(10, 10, 8032.240, 0.1, true),
		NewRecord(12, 8, 7568.570, 0.1, true),
		NewRecord(11, 10, 7971.713, 0.1, true),
	}

	g, err := Pivot(recs)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(g.Z(1, 0)))
	assert.True(t, math.IsNaN(g.Z(0, 1)))
	assert.True(t, math.IsNaN(g.Z(1, 2)))
}

func TestPivotKeepsAbsentEnergyCellsNaN(t *testing.T) {
	recs := []Record{NewRecord(30, 10, math.NaN(), math.NaN(), false)}

	g, err := Pivot(recs)
	require.NoError(t, err)

	assert.Equal(t, []int{40}, g.MassNumbers())
	assert.Equal(t, []int{20}, g.ExcessValues())
	assert.True(t, math.IsNaN(g.Z(0, 0)))
}

func TestPivotCoordinateAxes(t *testing.T) {
	recs := []Record{
		NewRecord(10, 10, 8032.240, 0.1, true),
		NewRecord(12, 8, 7568.570, 0.1, true),
	}

	g, err := Pivot(recs)
	require.NoError(t, err)

	assert.Equal(t, 20.0, g.X(0))
	assert.Equal(t, 0.0, g.Y(0))
	assert.Equal(t, 4.0, g.Y(1))
}

func TestPivotRejectsDuplicateCoordinates(t *testing.T) {
	recs := []Record{
		NewRecord(10, 10, 8032.240, 0.1, true),
		NewRecord(10, 10, 8000.000, 0.1, true),
	}

	_, err := Pivot(recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate grid coordinate")
}

func TestPivotRejectsEmptyInput(t *testing.T) {
	_, err := Pivot(nil)
	require.Error(t, err)
}

func TestMassNumbersReturnsCopy(t *testing.T) {
	g, err := Pivot([]Record{NewRecord(10, 10, 8032.240, 0.1, true)})
	require.NoError(t, err)

	g.MassNumbers()[0] = -1
	assert.Equal(t, []int{20}, g.MassNumbers())
}
