package surface

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/user/binding_energy_go/internal/dataset"
)

// viridisColors is the viridis color scale as hex stops, dark purple through
// yellow.
var viridisColors = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// NewSurfaceChart builds a 3D surface of exponentiated binding energy over
// the grid's column/row index mesh. Energies are expected in MeV.
func NewSurfaceChart(grid *dataset.Grid) *charts.Surface3D {
	data, zmin, zmax := surfaceData(grid)

	chart := charts.NewSurface3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Binding Energy per Nucleon",
			Width:     "1200px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Binding Energy per Nucleon"}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "A", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "N-Z", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "e^E (MeV)", Type: "value"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:     float32(zmin),
			Max:     float32(zmax),
			InRange: &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	chart.AddSeries("e^E", data)
	return chart
}

// surfaceData flattens the grid into (column, row, exp(E)) triples over the
// full index mesh, row-major. Cells with no value get a nil z, which the
// renderer leaves as a hole in the surface. The returned bounds span the
// finite z values; an all-empty grid falls back to [0, 1].
func surfaceData(grid *dataset.Grid) (data []opts.Chart3DData, zmin, zmax float64) {
	cols, rows := grid.Dims()
	zmin, zmax = math.Inf(1), math.Inf(-1)

	data = make([]opts.Chart3DData, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := math.Exp(grid.Z(c, r))
			if math.IsNaN(z) || math.IsInf(z, 0) {
				data = append(data, opts.Chart3DData{Value: []interface{}{c, r, nil}})
				continue
			}
			if z < zmin {
				zmin = z
			}
			if z > zmax {
				zmax = z
			}
			data = append(data, opts.Chart3DData{Value: []interface{}{c, r, z}})
		}
	}
	if zmin > zmax {
		zmin, zmax = 0, 1
	}
	return data, zmin, zmax
}
