package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	subtitleStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	loadingStyle = lipgloss.NewStyle().Foreground(colorInfo)

	validationStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)

	errorTextStyle = lipgloss.NewStyle().Foreground(colorError)

	promptStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusedPromptStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	inputTextStyle     = lipgloss.NewStyle().Foreground(colorText)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	tableRuleStyle   = lipgloss.NewStyle().Foreground(colorSurface1)

	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	footerStyle = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
)
