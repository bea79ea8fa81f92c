package tabular

import "strings"

// Table is a header plus data rows, all cells as text.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(header ...string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Append adds a row. Short rows are padded with empty cells when read back.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Columns maps each normalized header name to its index. Later duplicates
// do not override earlier ones.
func (t *Table) Columns() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		key := NormalizeHeader(h)
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// Cell returns the value at row/col, or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// NormalizeHeader lowercases and trims a header, mapping spaces and dashes to underscores.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}
