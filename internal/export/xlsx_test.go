package export

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/camclean/camclean/internal/table"
)

func TestWriteXLSX(t *testing.T) {
	tab := table.New()
	r0 := tab.AddRow()
	tab.SetCell(r0, "Model", table.String("A"))
	tab.SetCell(r0, "Weight_g", table.Number(300))
	tab.SetCell(r0, "Supports_4K", table.Boolean(true))
	r1 := tab.AddRow()
	tab.SetCell(r1, "Model", table.String("B"))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(tab, path); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"Model", "Weight_g", "Supports_4K"}) {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "A" || rows[1][1] != "300" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[1][2] != "TRUE" {
		t.Fatalf("bool cell = %q, want TRUE", rows[1][2])
	}
	// Missing cells stay empty; excelize drops trailing blanks.
	if rows[2][0] != "B" {
		t.Fatalf("row 2 = %v", rows[2])
	}
	for _, cell := range rows[2][1:] {
		if cell != "" {
			t.Fatalf("missing cell rendered as %q", cell)
		}
	}
}
