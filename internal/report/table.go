package report

import (
	"strings"
)

// Alignment controls how a table column pads its cells.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is a plain-text table with dynamic column widths.
// Column widths are measured in bytes, so cells must not contain escape
// sequences; decorate whole lines after Render instead.
type Table struct {
	headers []string
	rows    [][]string
	align   []Alignment
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		align:   make([]Alignment, len(headers)),
		padding: 2, // 2 spaces between columns
	}
}

// SetAlignment sets the alignment of a column. Out-of-range indices are
// ignored.
func (t *Table) SetAlignment(col int, a Alignment) {
	if col >= 0 && col < len(t.align) {
		t.align[col] = a
	}
}

// AddRow adds a row to the table, padding or truncating it to the number of
// headers.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}
	t.rows = append(t.rows, row)
}

// Lines renders the table: the header, a dashed separator, then one line per
// row in insertion order. Trailing padding is trimmed.
func (t *Table) Lines() []string {
	if len(t.headers) == 0 {
		return nil
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(t.rows)+2)
	lines = append(lines, t.formatRow(t.headers, widths), strings.Join(sep, strings.Repeat(" ", t.padding)))
	for _, row := range t.rows {
		lines = append(lines, t.formatRow(row, widths))
	}

	return lines
}

// Render returns the table as a newline-terminated string.
func (t *Table) Render() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (t *Table) formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.align[i] == AlignRight {
			parts[i] = padLeft(cell, widths[i])
		} else {
			parts[i] = padRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " ")
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft is the right-aligned counterpart of padRight.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
