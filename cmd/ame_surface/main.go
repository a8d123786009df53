package main

import (
	"log"

	"github.com/user/binding_energy_go/internal/dataset"
	"github.com/user/binding_energy_go/internal/surface"
)

const datasetPath = "data/binding_energy_per_A.csv"

func main() {
	records, err := dataset.ReadCSVFile(datasetPath)
	if err != nil {
		log.Fatalf("Error reading dataset: %v", err)
	}
	log.Printf("Loaded %d records from %s", len(records), datasetPath)

	grid, err := dataset.Pivot(dataset.ToMeV(records))
	if err != nil {
		log.Fatalf("Error pivoting dataset: %v", err)
	}

	if err := surface.Show(surface.NewSurfaceChart(grid)); err != nil {
		log.Fatalf("Error displaying surface plot: %v", err)
	}
}
