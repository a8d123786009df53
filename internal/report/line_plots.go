package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/user/binding_energy_go/internal/analysis"
	"github.com/user/binding_energy_go/internal/dataset"
)

// CreateCurvePlot draws the binding energy curve: every record with a value
// as a point, and the most bound nuclide per mass number traced as a line
// over the top. Returns the encoded PNG.
func CreateCurvePlot(records []dataset.Record, sum *analysis.Summary) ([]byte, error) {
	if sum == nil || len(sum.CurvePerA) == 0 {
		return nil, fmt.Errorf("no curve points to plot")
	}

	p := plot.New()
	p.Title.Text = "Binding Energy per Nucleon"
	p.X.Label.Text = "A"
	p.Y.Label.Text = "E (MeV)"

	pts := make(plotter.XYs, 0, len(records))
	for _, r := range records {
		if math.IsNaN(r.E) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(r.A), Y: r.E})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create nuclide scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.Gray{Y: 160}
	scatter.GlyphStyle.Radius = vg.Points(1)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	curve := make(plotter.XYs, len(sum.CurvePerA))
	for i, cp := range sum.CurvePerA {
		curve[i] = plotter.XY{X: float64(cp.A), Y: cp.E}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("failed to create curve line: %w", err)
	}
	line.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), scatter, line)
	p.Legend.Add("measured nuclides", scatter)
	p.Legend.Add("most bound per A", line)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render curve plot: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write curve plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
