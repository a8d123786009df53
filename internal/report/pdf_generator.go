package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/binding_energy_go/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flow state for PDF generation.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.newPage()
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	lines := s.pdf.SplitText(text, pdfContentWidth)
	s.checkAddPage(float64(len(lines)) * s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// drawTable renders a bordered table. relWidths are column fractions of the
// content width and must sum to 1.
func (s *pdfStyler) drawTable(headers []string, relWidths []float64, rows [][]string) {
	widths := make([]float64, len(relWidths))
	for i, rel := range relWidths {
		widths[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * float64(len(rows)+1))

	x, y := pdfMargin, s.currentY
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(x, y)
		s.pdf.CellFormat(widths[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	s.currentY = y + s.lineHeight

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		x, y = pdfMargin, s.currentY
		for i, cell := range row {
			s.pdf.SetXY(x, y)
			s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			x += widths[i]
		}
		s.currentY = y + s.lineHeight
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		height *= pdfContentWidth / width
		width = pdfContentWidth
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// BuildPDFReport writes the dataset summary as a PDF: coverage counts, the
// rankings, and the rendered charts. Energies in sum are expected in MeV.
// Missing plot images degrade to a note instead of failing the report.
func BuildPDFReport(path string, sum *analysis.Summary, source string, plots map[string][]byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph("Nuclear Binding Energy Summary (AME2020)", "h1", "C")
	styler.addSpacer(2)
	styler.writeParagraph(fmt.Sprintf("Dataset: %s", source), "normal", "C")
	styler.addSpacer(5)

	if sum == nil || sum.Total == 0 {
		styler.writeParagraph("No records to report.", "normal", "L")
		return pdf.OutputFileAndClose(path)
	}

	styler.writeParagraph(fmt.Sprintf(
		"%d nuclides decoded: %d with a binding energy value, %d without. Mass numbers span %d to %d, neutron excess %d to %d.",
		sum.Total, sum.Measured, sum.Missing, sum.MinA, sum.MaxA, sum.MinExcess, sum.MaxExcess), "normal", "L")
	styler.addSpacer(5)

	rankColWidths := []float64{0.12, 0.22, 0.22, 0.22, 0.22}

	styler.writeParagraph("Top 10 Most Bound Nuclides", "h2", "L")
	if rows := rankingRows(sum.RankedMostBound, "%.4f"); len(rows) > 0 {
		styler.drawTable([]string{"Rank", "N", "Z", "A", "E (MeV)"}, rankColWidths, rows)
	} else {
		styler.writeParagraph("No binding energy values in the dataset.", "normal", "L")
	}
	styler.addSpacer(5)

	styler.writeParagraph("Top 10 Largest Uncertainties", "h2", "L")
	if rows := rankingRows(sum.RankedUncertain, "%.6f"); len(rows) > 0 {
		styler.drawTable([]string{"Rank", "N", "Z", "A", "U(E) (MeV)"}, rankColWidths, rows)
	} else {
		styler.writeParagraph("No uncertainty values in the dataset.", "normal", "L")
	}

	styler.newPage()
	styler.writeParagraph("Graphical Analysis", "h1", "C")
	styler.addSpacer(5)

	imgWidth := pdfContentWidth * 0.9
	plotDefs := []struct {
		Key     string
		Title   string
		Caption string
	}{
		{"heatmap", "Chart of Nuclides", "Binding energy per nucleon (MeV) by mass number and neutron excess"},
		{"curve", "Binding Energy Curve", "Most bound nuclide per mass number, over all measured nuclides"},
	}
	for i, pd := range plotDefs {
		styler.writeParagraph(pd.Title, "h2", "L")
		if img, ok := plots[pd.Key]; ok && len(img) > 0 {
			// Both charts are rendered 2:1.
			styler.addImage(img, pd.Key, imgWidth, imgWidth*0.5, pd.Caption)
		} else {
			styler.writeParagraph(fmt.Sprintf("Plot for %s not available.", pd.Title), "normal", "L")
		}
		if i+1 < len(plotDefs) {
			styler.newPage()
		}
	}

	return pdf.OutputFileAndClose(path)
}

// rankingRows renders the top ten entries of a ranking as table rows.
func rankingRows(ranked []analysis.RankedNuclide, valueFormat string) [][]string {
	rows := make([][]string, 0, 10)
	for i, r := range ranked {
		if i >= 10 {
			break
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.N),
			strconv.Itoa(r.Z),
			strconv.Itoa(r.A),
			fmt.Sprintf(valueFormat, r.Value),
		})
	}
	return rows
}
