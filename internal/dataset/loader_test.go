package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/camclean/camclean/internal/table"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camera_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestLoadPreservesColumnOrder(t *testing.T) {
	path := writeInput(t, `[
		{"Model": "A", "Weight": "300 g", "ISO": "80-1600"},
		{"Model": "B", "ISO": "100-3200", "Dimensions": "120 x 80 x 45"}
	]`)

	tab, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tab.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", tab.Len())
	}
	want := []string{"Model", "Weight", "ISO", "Dimensions"}
	if got := tab.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	if v := tab.Cell(1, "Weight"); !v.IsMissing() {
		t.Fatalf("absent field should load as missing, got %v", v)
	}
}

func TestLoadCellTypes(t *testing.T) {
	path := writeInput(t, `[
		{"Model": "A", "Crop factor": 1.5, "Discontinued": true, "ISO": null, "Extra": [1, 2]}
	]`)

	tab, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if v := tab.Cell(0, "Model"); v.Kind != table.KindString || v.Str != "A" {
		t.Fatalf("string cell = %v", v)
	}
	if f, ok := tab.Cell(0, "Crop factor").Float(); !ok || f != 1.5 {
		t.Fatalf("number cell = %v", tab.Cell(0, "Crop factor"))
	}
	if v := tab.Cell(0, "Discontinued"); v.Kind != table.KindBool || !v.Bool {
		t.Fatalf("bool cell = %v", v)
	}
	if v := tab.Cell(0, "ISO"); !v.IsMissing() {
		t.Fatalf("null cell should be missing, got %v", v)
	}
	if v := tab.Cell(0, "Extra"); v.Kind != table.KindString || !strings.Contains(v.Str, "1") {
		t.Fatalf("nested cell should keep its JSON text, got %v", v)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load()
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error should name the missing file: %v", err)
	}
}

func TestLoadRejectsNonArray(t *testing.T) {
	path := writeInput(t, `{"Model": "A"}`)
	_, err := NewLoader(path).Load()
	if err == nil || !strings.Contains(err.Error(), "array") {
		t.Fatalf("expected a top-level array error, got %v", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeInput(t, `[{"Model": "A",]`)
	_, err := NewLoader(path).Load()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestLoadSample(t *testing.T) {
	path := writeInput(t, `[
		{"Model": "A"},
		{"Model": "B"},
		{"Model": "C"}
	]`)

	tab, err := NewLoader(path).LoadSample(2)
	if err != nil {
		t.Fatalf("LoadSample: %v", err)
	}
	if tab.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", tab.Len())
	}
}

func TestLoadEmptyArray(t *testing.T) {
	path := writeInput(t, `[]`)
	tab, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Len() != 0 {
		t.Fatalf("expected 0 records, got %d", tab.Len())
	}
}

func TestRecordsFromTable(t *testing.T) {
	tab := table.New()
	r := tab.AddRow()
	tab.SetCell(r, ColModel, table.String("A"))
	tab.SetCell(r, ColWeightG, table.Number(300))
	tab.SetCell(r, ColSupports4K, table.Boolean(true))
	tab.SetCell(r, ColPortability, table.Number(85))
	tab.SetCell(r, ColLowLight, table.Number(60))
	tab.SetCell(r, ColVideo, table.Number(72.5))

	recs := RecordsFromTable(tab)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Model != "A" {
		t.Fatalf("model = %q", rec.Model)
	}
	if rec.WeightG == nil || *rec.WeightG != 300 {
		t.Fatalf("weight = %v", rec.WeightG)
	}
	if rec.MaxISO != nil {
		t.Fatalf("missing field should map to nil, got %v", *rec.MaxISO)
	}
	if !rec.Supports4K {
		t.Fatalf("supports_4k lost")
	}
	if rec.VideoScore != 72.5 {
		t.Fatalf("video score = %v", rec.VideoScore)
	}
}
