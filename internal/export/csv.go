// Package export writes the cleaned table to its output formats.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/camclean/camclean/internal/table"
)

// WriteCSV writes the table comma-delimited with a header row and no
// index column, overwriting any existing file. Missing cells are
// empty, numbers use their shortest decimal form and booleans are
// True/False.
func WriteCSV(t *table.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		for j, v := range t.Row(i) {
			record[j] = cellString(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func cellString(v table.Value) string {
	switch v.Kind {
	case table.KindString:
		return v.Str
	case table.KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case table.KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}
