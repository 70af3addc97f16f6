package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columnar output with a header separator line.
// Columns listed in RightAlign are padded on the left, which keeps numeric
// columns (minutes, hours, counts) flush on their right edge.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
}

const colGap = 2

// RenderTable renders a left-aligned table. Shorthand for Table.Render
// with no right-aligned columns.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

// Render lays out the table. Widths are measured with lipgloss.Width so
// styled cells count visible characters only.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	cols := len(t.Headers)

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for i, h := range t.Headers {
		t.writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == cols-1, t.RightAlign[i])
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			t.writeCell(&b, cell, lipgloss.Width(cell), widths[i], i == cols-1, t.RightAlign[i])
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (t Table) writeCell(b *strings.Builder, cell string, visible, width int, last, right bool) {
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	if right {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(cell)
		if !last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		return
	}
	b.WriteString(cell)
	if !last {
		b.WriteString(strings.Repeat(" ", pad+colGap))
	}
}
