package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/born-ml/densenet/internal/matrix"
)

// truthTables holds the built-in two-input logic datasets. Each row is
// {a, b, a op b}.
var truthTables = map[string][4][3]float64{
	"and":  {{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}},
	"or":   {{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	"nand": {{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
	"xor":  {{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
}

// datasetNames returns the built-in dataset names in sorted order.
func datasetNames() []string {
	names := make([]string, 0, len(truthTables))
	for name := range truthTables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func isDataset(name string) bool {
	_, ok := truthTables[name]
	return ok
}

// truthTable returns the 4×2 inputs and 4×1 targets of a built-in dataset.
func truthTable(name string) (inputs, targets *matrix.Matrix, err error) {
	table, ok := truthTables[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown dataset %q", name)
	}

	inputs = matrix.Zeros(len(table), 2)
	targets = matrix.Zeros(len(table), 1)
	for r, row := range table {
		inputs.Set(r, 0, row[0])
		inputs.Set(r, 1, row[1])
		targets.Set(r, 0, row[2])
	}
	return inputs, targets, nil
}

// loadData returns the dataset selected by cfg.
func loadData(cfg *config) (inputs, targets *matrix.Matrix, err error) {
	if cfg.csvPath != "" {
		return LoadCSV(cfg.csvPath, cfg.targets)
	}
	return truthTable(cfg.dataset)
}

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	x0,x1,...,y0
//	0,0.5,...,1
//	1,0.25,...,0
//
// The first row is a header and is skipped. Every row must have the same
// number of numeric columns; the last numTargets columns are targets and
// the rest are inputs.
//
// Returns:
//   - inputs with shape [rows, columns-numTargets]
//   - targets with shape [rows, numTargets]
func LoadCSV(filename string, numTargets int) (inputs, targets *matrix.Matrix, err error) {
	//nolint:gosec // G304: dataset path comes from the command line
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or missing header")
	}

	// Skip header row
	records = records[1:]

	columns := len(records[0])
	numInputs := columns - numTargets
	if numTargets <= 0 || numInputs <= 0 {
		return nil, nil, fmt.Errorf("need at least one input and one target column, got %d columns with %d targets", columns, numTargets)
	}

	inputs = matrix.Zeros(len(records), numInputs)
	targets = matrix.Zeros(len(records), numTargets)

	for i, record := range records {
		if len(record) != columns {
			return nil, nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), columns)
		}

		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid value at row %d, column %d: %w", i+1, j+1, err)
			}
			if j < numInputs {
				inputs.Set(i, j, v)
			} else {
				targets.Set(i, j-numInputs, v)
			}
		}
	}

	return inputs, targets, nil
}
