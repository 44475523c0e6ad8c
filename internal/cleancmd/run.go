// Package cleancmd wires the cleaning pipeline into the CLI.
package cleancmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/camclean/camclean/internal/clean"
	"github.com/camclean/camclean/internal/dataset"
	"github.com/camclean/camclean/internal/export"
	"github.com/camclean/camclean/internal/report"
	"github.com/camclean/camclean/internal/storage"
)

const (
	defaultInput  = "camera_data.json"
	defaultOutput = "camera_data_clean3.csv"
)

type cleanOptions struct {
	input   string
	output  string
	xlsx    string
	parquet string
	db      string
	summary string
}

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean a camera spec dataset and derive composite scores",
		Long: `Clean a JSON array of camera specification records into a tabular CSV.

String fields (weight, ISO, shutter speeds, aperture, exposure compensation,
screen, focus ranges, dimensions, video resolution) are normalized to numbers
in fixed units; three composite 0-100 scores (portability, low-light, video)
are derived via percentile ranking over the loaded batch.

Scores are batch-relative: a record's percentile rank depends on every other
record loaded in the same run, so cleaning a different subset changes scores.
Malformed or absent fields never fail the run; they come through as empty
cells. The only fatal errors are a missing input file and input that is not
a JSON array.`,
		Example: `  # Clean ./camera_data.json into ./camera_data_clean3.csv
  camclean clean

  # Keep typed copies alongside the CSV
  camclean clean --parquet cameras.parquet --db cameras.db

  # Write a per-column coverage and score summary
  camclean clean --summary run_summary.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeClean(opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Path to the input JSON array of camera records (default \"camera_data.json\")")
	cmd.Flags().StringVar(&opts.output, "output", "", "Path to the output CSV file, overwritten if present (default \"camera_data_clean3.csv\")")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write the cleaned table to this XLSX file")
	cmd.Flags().StringVar(&opts.parquet, "parquet", "", "Also write the cleaned records to this Parquet file")
	cmd.Flags().StringVar(&opts.db, "db", "", "Also store the cleaned records in this sqlite database")
	cmd.Flags().StringVar(&opts.summary, "summary", "", "Write a YAML run summary to this file")

	return cmd
}

func executeClean(opts cleanOptions) error {
	// Env defaults are resolved here so a .env file loaded by the root
	// command is honored.
	if opts.input == "" {
		opts.input = envOr("CAMCLEAN_INPUT", defaultInput)
	}
	if opts.output == "" {
		opts.output = envOr("CAMCLEAN_OUTPUT", defaultOutput)
	}

	slog.Info("Starting cleaning run", "input", opts.input, "output", opts.output)

	loader := dataset.NewLoader(opts.input)
	t, err := loader.Load()
	if err != nil {
		return err
	}

	slog.Info("Input loaded", "records", t.Len(), "columns", len(t.Columns()))

	clean.Apply(t)

	if err := export.WriteCSV(t, opts.output); err != nil {
		return err
	}
	slog.Info("CSV written", "path", opts.output, "rows", t.Len())

	if opts.xlsx != "" {
		if err := export.WriteXLSX(t, opts.xlsx); err != nil {
			return fmt.Errorf("failed to write XLSX: %w", err)
		}
		slog.Info("XLSX written", "path", opts.xlsx)
	}

	if opts.parquet != "" || opts.db != "" {
		recs := dataset.RecordsFromTable(t)

		if opts.parquet != "" {
			if err := export.WriteParquet(recs, opts.parquet); err != nil {
				return err
			}
			slog.Info("Parquet written", "path", opts.parquet)
		}

		if opts.db != "" {
			db, err := storage.Open(opts.db)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
			if err := db.ReplaceCameras(recs); err != nil {
				return fmt.Errorf("failed to store records: %w", err)
			}
			slog.Info("Records stored", "path", opts.db, "rows", len(recs))
		}
	}

	if opts.summary != "" {
		if err := report.Build(opts.input, t).Save(opts.summary); err != nil {
			return err
		}
		slog.Info("Summary written", "path", opts.summary)
	}

	fmt.Printf("Cleaned %d records into %s\n", t.Len(), opts.output)

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
