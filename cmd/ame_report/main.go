package main

import (
	"log"

	"github.com/user/binding_energy_go/internal/analysis"
	"github.com/user/binding_energy_go/internal/dataset"
	"github.com/user/binding_energy_go/internal/report"
)

const (
	datasetPath = "data/binding_energy_per_A.csv"
	reportPath  = "binding_energy_report.pdf"
)

func main() {
	records, err := dataset.ReadCSVFile(datasetPath)
	if err != nil {
		log.Fatalf("Error reading dataset: %v", err)
	}
	records = dataset.ToMeV(records)
	log.Printf("Loaded %d records from %s", len(records), datasetPath)

	sum, err := analysis.Summarize(records)
	if err != nil {
		log.Fatalf("Error summarizing dataset: %v", err)
	}
	log.Printf("Analysis complete: %d with binding energies, %d without.", sum.Measured, sum.Missing)

	// A failed chart degrades the report rather than aborting it.
	plots := make(map[string][]byte)
	if grid, err := dataset.Pivot(records); err != nil {
		log.Printf("Error pivoting dataset, skipping heatmap: %v", err)
	} else if png, err := report.CreateHeatmapPlot(grid, "Binding Energy per Nucleon (MeV)"); err != nil {
		log.Printf("Error generating heatmap: %v", err)
	} else {
		plots["heatmap"] = png
	}
	if png, err := report.CreateCurvePlot(records, sum); err != nil {
		log.Printf("Error generating curve plot: %v", err)
	} else {
		plots["curve"] = png
	}

	log.Printf("Generating PDF: %s", reportPath)
	if err := report.BuildPDFReport(reportPath, sum, datasetPath, plots); err != nil {
		log.Fatalf("Error generating PDF report: %v", err)
	}
	log.Printf("PDF report successfully generated: %s", reportPath)
}
