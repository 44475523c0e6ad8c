package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/camclean/camclean/internal/dataset"
)

// WriteParquet writes the cleaned records as a typed Parquet file.
func WriteParquet(recs []dataset.CleanRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[dataset.CleanRecord](file)
	if _, err := writer.Write(recs); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
