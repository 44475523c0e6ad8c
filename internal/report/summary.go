// Package report builds a YAML summary of one cleaning run: how well
// each cleaned column was covered and how the derived scores are
// distributed. Because scores are percentile-ranked within the loaded
// batch, the statistics here describe this batch only.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/camclean/camclean/internal/dataset"
	"github.com/camclean/camclean/internal/table"
)

// ColumnCoverage counts extracted versus missing cells for one
// cleaned column.
type ColumnCoverage struct {
	Column  string `yaml:"column"`
	Present int    `yaml:"present"`
	Missing int    `yaml:"missing"`
}

// ScoreStats summarizes one derived score over the batch.
type ScoreStats struct {
	Min  float64 `yaml:"min"`
	Mean float64 `yaml:"mean"`
	Max  float64 `yaml:"max"`
}

// Summary is the full run summary.
type Summary struct {
	Input       string           `yaml:"input"`
	Records     int              `yaml:"records"`
	Timestamp   string           `yaml:"timestamp"`
	Coverage    []ColumnCoverage `yaml:"coverage"`
	Portability ScoreStats       `yaml:"portability_score"`
	LowLight    ScoreStats       `yaml:"lowlight_score"`
	Video       ScoreStats       `yaml:"video_score"`
}

// summarized lists the cleaned numeric columns coverage is reported
// for, in output order.
var summarized = []string{
	dataset.ColWeightG,
	dataset.ColMaxISO,
	dataset.ColMinShutterSec,
	dataset.ColMaxShutterSec,
	dataset.ColMaxExposure,
	dataset.ColScreenDots,
	dataset.ColScreenInches,
	dataset.ColNormalFocusCm,
	dataset.ColMacroFocusCm,
	dataset.ColMinApertureF,
	dataset.ColDimL,
	dataset.ColDimW,
	dataset.ColDimH,
	dataset.ColCropFactor,
}

// Build computes the summary for a cleaned table.
func Build(input string, t *table.Table) Summary {
	s := Summary{
		Input:     input,
		Records:   t.Len(),
		Timestamp: time.Now().Format("2006-01-02_15-04-05"),
	}

	for _, col := range summarized {
		cov := ColumnCoverage{Column: col}
		for _, v := range t.Column(col) {
			if v.IsMissing() {
				cov.Missing++
			} else {
				cov.Present++
			}
		}
		s.Coverage = append(s.Coverage, cov)
	}

	s.Portability = scoreStats(t.Column(dataset.ColPortability))
	s.LowLight = scoreStats(t.Column(dataset.ColLowLight))
	s.Video = scoreStats(t.Column(dataset.ColVideo))

	return s
}

// Save writes the summary to a YAML file.
func (s Summary) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func scoreStats(vals []table.Value) ScoreStats {
	var stats ScoreStats
	count := 0
	sum := 0.0
	for _, v := range vals {
		f, ok := v.Float()
		if !ok {
			continue
		}
		if count == 0 || f < stats.Min {
			stats.Min = f
		}
		if count == 0 || f > stats.Max {
			stats.Max = f
		}
		sum += f
		count++
	}
	if count > 0 {
		stats.Mean = sum / float64(count)
	}
	return stats
}
