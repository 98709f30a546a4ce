package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a bordered panel with an optional bracketed title.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
}

func (b Box) Render(width int) string {
	if width <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2)
	if b.Border != nil {
		style = style.BorderForeground(b.Border)
	}
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}
