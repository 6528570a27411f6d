package docx

import "strings"

// Table wraps a parsed body table with a non-owning back-reference to
// the owning Document.
type Table struct {
	node *tableXML
	doc  *Document
}

// StyleID returns the table's style id, empty if unstyled.
func (t *Table) StyleID() string {
	return t.node.Properties.Style.Val
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.node.Rows)
}

// ColCount returns the number of cells in the first row, 0 for an
// empty table.
func (t *Table) ColCount() int {
	if len(t.node.Rows) == 0 {
		return 0
	}
	return len(t.node.Rows[0].Cells)
}

// CellText returns the text of the cell at the given row and column,
// with the cell's paragraphs joined by newlines. Out-of-range
// coordinates yield an empty string.
func (t *Table) CellText(row, col int) string {
	if row < 0 || row >= len(t.node.Rows) {
		return ""
	}
	cells := t.node.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}

	var parts []string
	for i := range cells[col].Paragraphs {
		parts = append(parts, paragraphText(&cells[col].Paragraphs[i]))
	}
	return strings.Join(parts, "\n")
}

// Text returns a plain text rendering: cells tab-separated, rows
// newline-separated.
func (t *Table) Text() string {
	var sb strings.Builder
	for i, row := range t.node.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(t.CellText(i, j), "\n", " "))
		}
	}
	return sb.String()
}
