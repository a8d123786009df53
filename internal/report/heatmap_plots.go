package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/binding_energy_go/internal/dataset"
)

// CreateHeatmapPlot renders the pivoted binding energy grid as a chart of
// nuclides: mass number on the x axis, neutron excess on the y axis, cell
// color by binding energy. Returns the encoded PNG.
func CreateHeatmapPlot(grid *dataset.Grid, title string) ([]byte, error) {
	cols, rows := grid.Dims()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("empty grid, nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "A"
	p.Y.Label.Text = "N-Z"
	p.X.Tick.Marker = integerTicks(grid.MassNumbers(), 20)
	p.Y.Tick.Marker = integerTicks(grid.ExcessValues(), 10)

	hm := plotter.NewHeatMap(grid, moreland.Kindlmann().Palette(255))
	// Coordinates with no nuclide hold NaN; fill them in a neutral gray so
	// the valley of stability stays readable against the gaps.
	hm.NaN = color.Gray{Y: 230}
	if hm.Min > hm.Max {
		// Every cell was NaN.
		hm.Min, hm.Max = 0, 1
	} else if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	writer, err := p.WriterTo(vg.Points(1000), vg.Points(500), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render heatmap: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write heatmap to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// integerTicks labels an axis at every multiple of step occurring in vals.
func integerTicks(vals []int, step int) plot.ConstantTicks {
	var ticks []plot.Tick
	for _, v := range vals {
		if v%step == 0 {
			ticks = append(ticks, plot.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
		}
	}
	return plot.ConstantTicks(ticks)
}
