package display

import (
	"fmt"
	"strings"
)

// Table renders an aligned text table. One row may be marked as active;
// it gets the accent color and a leading marker.
type Table struct {
	headers   []string
	rows      [][]string
	activeRow int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, activeRow: -1}
}

// AddRow appends a row. The number of cells should match the headers.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// SetActiveRow marks the 0-based row index to highlight. -1 clears it.
func (t *Table) SetActiveRow(idx int) {
	t.activeRow = idx
}

// Render produces the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("    " + Bold(formatCells(t.headers, widths)) + "\n")

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("    "+strings.Join(sep, "  ")) + "\n")

	for i, row := range t.rows {
		line := formatCells(row, widths)
		if i == t.activeRow {
			sb.WriteString("  " + Accent("▸ "+line) + "\n")
		} else {
			sb.WriteString("    " + line + "\n")
		}
	}

	return sb.String()
}

func formatCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
