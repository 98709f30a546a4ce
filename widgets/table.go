package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	columnGap      = 2
	minColumnWidth = 3
)

// Table draws a header, a rule and as many rows as fit, starting at Offset.
type Table struct {
	Headers     []string
	Rows        [][]string
	Offset      int
	HeaderStyle lipgloss.Style
	RuleStyle   lipgloss.Style
}

// BodyHeight is the number of rows a table of the given height can show.
func BodyHeight(height int) int {
	return max(0, height-2)
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := t.columnWidths(width)

	lines := []string{t.HeaderStyle.Render(joinCells(t.Headers, widths))}
	if height == 1 {
		return lines[0]
	}
	ruleWidth := 0
	for _, w := range widths {
		ruleWidth += w
	}
	ruleWidth += columnGap * (len(widths) - 1)
	lines = append(lines, t.RuleStyle.Render(strings.Repeat("─", min(ruleWidth, width))))

	start := min(max(0, t.Offset), len(t.Rows))
	for _, row := range t.Rows[start:] {
		if len(lines) >= height {
			break
		}
		lines = append(lines, joinCells(row, widths))
	}
	return strings.Join(lines, "\n")
}

// columnWidths sizes each column to its widest cell, then narrows the widest
// columns until the table fits width.
func (t Table) columnWidths(width int) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}

	total := columnGap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	for total > width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "\n", " ")
		}
		cell = ansi.Truncate(cell, w, "…")
		if pad := w - ansi.StringWidth(cell); pad > 0 && i < len(widths)-1 {
			cell += strings.Repeat(" ", pad)
		}
		parts[i] = cell
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}
