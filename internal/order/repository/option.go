package repository

import "strings"

// Table is a raw tabular dataset: a header row plus data rows. Cells hold
// what the backend produced (string, float64, bool or nil); rows may be
// shorter than the header.
type Table struct {
	Header []string
	Rows   [][]interface{}
}

// IsEmpty reports whether the table has neither a header nor rows.
func (t Table) IsEmpty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// ColumnIndex returns the index of the column named name, comparing trimmed
// identifiers without regard to case. It returns -1 when absent.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Cell returns the cell at row r, column c, or nil when the row is short.
func (t Table) Cell(r, c int) interface{} {
	if c < 0 || r < 0 || r >= len(t.Rows) || c >= len(t.Rows[r]) {
		return nil
	}
	return t.Rows[r][c]
}
