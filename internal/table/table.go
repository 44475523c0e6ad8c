// Package table holds the in-memory tabular form of a camera batch:
// an ordered list of named columns over rows of loosely-typed cells.
// Column order is significant and follows first-encounter order in the
// input, so the output file keeps the shape of the source data.
package table

import (
	"strconv"
)

// Kind discriminates the cell types a column can hold.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a single cell. Missing is the sentinel every failed field
// normalization collapses to; it is never an error.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

func Missing() Value { return Value{Kind: KindMissing} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Text returns the cell rendered as raw field text for the extractors:
// strings verbatim, numbers in shortest decimal form, booleans as
// True/False. Missing cells have no text.
func (v Value) Text() (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case KindBool:
		if v.Bool {
			return "True", true
		}
		return "False", true
	default:
		return "", false
	}
}

// Float returns the numeric value of a number cell.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Table is an ordered set of columns over rows. Cells for columns a row
// never saw are Missing.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]Value
}

func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AddColumn appends a column if it does not exist yet and returns its
// position. Existing rows gain a Missing cell for it.
func (t *Table) AddColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.cols)
	t.cols = append(t.cols, name)
	t.index[name] = i
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], Missing())
	}
	return i
}

// AddRow appends an empty (all-Missing) row and returns its index.
func (t *Table) AddRow() int {
	row := make([]Value, len(t.cols))
	for i := range row {
		row[i] = Missing()
	}
	t.rows = append(t.rows, row)
	return len(t.rows) - 1
}

// SetCell writes one cell, creating the column on first use.
func (t *Table) SetCell(row int, col string, v Value) {
	i := t.AddColumn(col)
	t.rows[row][i] = v
}

// Cell reads one cell; unknown columns read as Missing.
func (t *Table) Cell(row int, col string) Value {
	i, ok := t.index[col]
	if !ok {
		return Missing()
	}
	return t.rows[row][i]
}

// Column returns the full column as a slice, one value per row. A
// column absent from the input reads as all-Missing, which keeps the
// per-field best-effort policy alive at the column level too.
func (t *Table) Column(name string) []Value {
	out := make([]Value, len(t.rows))
	i, ok := t.index[name]
	for r := range t.rows {
		if ok {
			out[r] = t.rows[r][i]
		} else {
			out[r] = Missing()
		}
	}
	return out
}

// SetColumn overwrites a column in place (creating it at the end when
// absent). vals must have one value per row.
func (t *Table) SetColumn(name string, vals []Value) {
	i := t.AddColumn(name)
	for r := range t.rows {
		t.rows[r][i] = vals[r]
	}
}

// Rename changes a column name, keeping its position. Renaming a
// column that does not exist creates it at the end, all-Missing.
func (t *Table) Rename(old, name string) {
	i, ok := t.index[old]
	if !ok {
		t.AddColumn(name)
		return
	}
	delete(t.index, old)
	t.cols[i] = name
	t.index[name] = i
}

// MoveAfter relocates column name to the position immediately after
// anchor. Cells move with the column. A no-op when either side is
// unknown.
func (t *Table) MoveAfter(name, anchor string) {
	from, ok := t.index[name]
	if !ok {
		return
	}
	anchorIdx, ok := t.index[anchor]
	if !ok || name == anchor {
		return
	}

	to := anchorIdx + 1
	if from < anchorIdx {
		to = anchorIdx
	}
	if from == to {
		return
	}

	col := t.cols[from]
	t.cols = append(t.cols[:from], t.cols[from+1:]...)
	t.cols = append(t.cols[:to], append([]string{col}, t.cols[to:]...)...)
	for r := range t.rows {
		cell := t.rows[r][from]
		t.rows[r] = append(t.rows[r][:from], t.rows[r][from+1:]...)
		t.rows[r] = append(t.rows[r][:to], append([]Value{cell}, t.rows[r][to:]...)...)
	}
	for i, c := range t.cols {
		t.index[c] = i
	}
}

// Row returns the cells of one row in column order.
func (t *Table) Row(i int) []Value {
	out := make([]Value, len(t.cols))
	copy(out, t.rows[i])
	return out
}
