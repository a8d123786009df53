package main

import (
	"log"

	"github.com/user/binding_energy_go/internal/dataset"
	"github.com/user/binding_energy_go/internal/parser"
)

// File locations are fixed: the decoder always reads the published mass
// table and always writes the dataset next to it.
const (
	massTablePath = "data/mass_1.mas20"
	datasetPath   = "data/binding_energy_per_A.csv"
)

func main() {
	log.Printf("Parsing: %s", massTablePath)
	table, err := parser.ParseMassTable(massTablePath)
	if err != nil {
		log.Fatalf("Error parsing mass table: %v", err)
	}
	log.Printf("Decoded %d nuclides (%d with binding energy values).", len(table.Records), table.MeasuredCount())

	if err := dataset.WriteCSVFile(datasetPath, table.Records); err != nil {
		log.Fatalf("Error writing dataset: %v", err)
	}
	log.Printf("Dataset written: %s", datasetPath)
}
