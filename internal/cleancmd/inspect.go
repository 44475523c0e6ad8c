package cleancmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camclean/camclean/internal/dataset"
	"github.com/camclean/camclean/internal/table"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	var input string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect per-column coverage of an input file",
		Long: `Inspect the columns of a raw camera dataset before cleaning it.

Reports, per column: how many rows carry a value, how many are null or
absent, what share of the values already looks numeric, and a couple of
sample values. Useful for spotting columns the normalizers will mostly
turn into empty cells.`,
		Example: `  # Profile the default input
  camclean inspect

  # Profile the first 50 records of another file
  camclean inspect --input cameras_raw.json --limit 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = envOr("CAMCLEAN_INPUT", defaultInput)
			}
			return executeInspect(input, limit)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the input JSON array of camera records (default \"camera_data.json\")")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of records to read (0 for all)")

	return cmd
}

func executeInspect(input string, limit int) error {
	loader := dataset.NewLoader(input)

	var t *table.Table
	var err error
	if limit > 0 {
		t, err = loader.LoadSample(limit)
	} else {
		t, err = loader.Load()
	}
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d records from %s\n", t.Len(), input)
	fmt.Println(strings.Repeat("=", 96))
	fmt.Printf("%-28s %8s %8s %9s  %s\n", "column", "present", "missing", "numeric", "samples")
	fmt.Println(strings.Repeat("-", 96))

	for _, col := range t.Columns() {
		p := profileColumn(t.Column(col))
		fmt.Printf("%-28s %8d %8d %8.0f%%  %s\n",
			col, p.present, p.missing, p.numericRatio()*100, strings.Join(p.samples, ", "))
	}

	return nil
}

// columnProfile summarizes one column of the raw table: coverage
// counts plus the first few distinct values as examples.
type columnProfile struct {
	present int
	missing int
	numeric int
	samples []string
}

const maxSamples = 2

func profileColumn(vals []table.Value) columnProfile {
	var p columnProfile
	for _, v := range vals {
		if v.IsMissing() {
			p.missing++
			continue
		}
		p.present++
		if looksNumeric(v) {
			p.numeric++
		}
		if len(p.samples) < maxSamples {
			if s, ok := v.Text(); ok && !slices.Contains(p.samples, s) {
				p.samples = append(p.samples, s)
			}
		}
	}
	return p
}

func (p columnProfile) numericRatio() float64 {
	if p.present == 0 {
		return 0
	}
	return float64(p.numeric) / float64(p.present)
}

func looksNumeric(v table.Value) bool {
	switch v.Kind {
	case table.KindNumber:
		return true
	case table.KindString:
		_, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return err == nil
	default:
		return false
	}
}
