// Package cli implements the roi subcommands: schema inspection, row
// validation and register import/export.
package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"opendora/internal/schema"
)

// ReadRows loads candidate rows from a CSV file (first record is the
// header) or a JSON file holding an object or an array of objects.
func ReadRows(path string) ([]schema.Row, error) {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return readRowsCSV(path)
	case strings.HasSuffix(path, ".json"):
		return readRowsJSON(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .json)", path)
	}
}

func readRowsCSV(path string) ([]schema.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty, expected a header record", path)
	}

	header := records[0]
	rows := make([]schema.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := schema.Row{}
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readRowsJSON(path string) ([]schema.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var rows []schema.Row
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to parse JSON rows: %w", err)
		}
		return rows, nil
	}

	var row schema.Row
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to parse JSON row: %w", err)
	}
	return []schema.Row{row}, nil
}

func printViolations(res schema.ValidationResult) {
	for _, v := range res.Violations {
		switch v.Kind {
		case schema.KindDanglingReference:
			fmt.Printf("  %s: %s (references %s)\n", v.Column, v.Message, v.RefTable)
		default:
			fmt.Printf("  %s: %s\n", v.Column, v.Message)
		}
	}
}
