package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/camclean/camclean/internal/table"
)

// WriteXLSX writes the cleaned table to a spreadsheet, header row
// first. Cells keep their native types; missing cells stay empty.
func WriteXLSX(t *table.Table, path string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range t.Columns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i := 0; i < t.Len(); i++ {
		r := i + 2
		for j, v := range t.Row(i) {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			_ = f.SetCellValue(sheet, cell, cellValue(v))
		}
	}

	return f.SaveAs(path)
}

func cellValue(v table.Value) any {
	switch v.Kind {
	case table.KindString:
		return v.Str
	case table.KindNumber:
		return v.Num
	case table.KindBool:
		return v.Bool
	default:
		return ""
	}
}
