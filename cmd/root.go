package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/camclean/camclean/internal/cleancmd"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "camclean",
		Short: "Camera spec dataset cleaner with derived recommendation scores",
		Long: `Camclean turns a flat JSON collection of camera specification records into
a cleaned tabular dataset.

Loosely-formatted string fields are normalized to numbers in fixed units and
three composite 0-100 scores (portability, low-light, video) are derived by
percentile-ranking each record against the whole loaded batch.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(cleancmd.NewCleanCmd())
	cmd.AddCommand(cleancmd.NewInspectCmd())

	return cmd
}
