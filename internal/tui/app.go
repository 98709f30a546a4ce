package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/certbrowser/internal/browser"
	"github.com/jask/certbrowser/internal/certificates"
	"github.com/jask/certbrowser/widgets"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	fieldName = 0
	fieldType = 1
)

// Fetcher loads the certificate list once from Endpoint.
type Fetcher interface {
	Fetch(ctx context.Context) ([]certificates.Record, error)
	Endpoint() string
}

// App is the Bubble Tea model of the certificate browser.
type App struct {
	ctx      context.Context
	fetcher  Fetcher
	endpoint string

	state   browser.State
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	offset  int
	width   int
	height  int
}

// messages
type certificatesMsg struct {
	records []certificates.Record
	err     error
}

// New builds the browser around fetcher. ctx bounds the initial fetch; cancel
// it to abort a request still in flight.
func New(ctx context.Context, fetcher Fetcher) *App {
	name := textinput.New()
	name.Prompt = "Nombre: "
	name.Placeholder = "p. ej. seguridad"
	name.CharLimit = 120
	name.Width = 24

	typ := textinput.New()
	typ.Prompt = "Tipo de certificación: "
	typ.Placeholder = "p. ej. iso"
	typ.CharLimit = 120
	typ.Width = 24

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle))

	a := &App{
		ctx:      ctx,
		fetcher:  fetcher,
		endpoint: fetcher.Endpoint(),
		inputs:   []textinput.Model{name, typ},
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	a.setFocus(fieldName)
	return a
}

// State exposes the widget state for inspection.
func (a *App) State() *browser.State { return &a.state }

func (a *App) Init() tea.Cmd {
	a.state.BeginFetch()
	return tea.Batch(a.spinner.Tick, a.fetchCmd(), textinput.Blink)
}

func (a *App) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := a.fetcher.Fetch(a.ctx)
		return certificatesMsg{records: records, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.clampOffset()
		return a, nil
	case certificatesMsg:
		a.state.FinishFetch(m.records, m.err)
		a.offset = 0
		return a, nil
	case spinner.TickMsg:
		if !a.state.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a.updateFocused(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Submit):
		if a.state.Loading {
			return a, nil
		}
		a.applyFilters()
		return a, nil
	case key.Matches(m, a.keys.Reset):
		if a.state.Loading {
			return a, nil
		}
		a.resetFilters()
		return a, nil
	case key.Matches(m, a.keys.Next):
		return a, a.setFocus((a.focus + 1) % len(a.inputs))
	case key.Matches(m, a.keys.Prev):
		return a, a.setFocus((a.focus + len(a.inputs) - 1) % len(a.inputs))
	case key.Matches(m, a.keys.Up):
		a.scroll(-1)
		return a, nil
	case key.Matches(m, a.keys.Down):
		a.scroll(1)
		return a, nil
	case key.Matches(m, a.keys.PageUp):
		a.scroll(-max(1, a.bodyHeight()))
		return a, nil
	case key.Matches(m, a.keys.PageDown):
		a.scroll(max(1, a.bodyHeight()))
		return a, nil
	}
	return a.updateFocused(m)
}

func (a *App) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) applyFilters() {
	out := a.state.ApplyFilters(a.inputs[fieldName].Value(), a.inputs[fieldType].Value())
	if out != browser.FilterApplied {
		return
	}
	a.clearInputs()
	a.offset = 0
	a.keys.Reset.SetEnabled(a.state.ResetVisible)
}

// resetFilters is inert while the reset control is hidden.
func (a *App) resetFilters() {
	if !a.state.ResetVisible {
		return
	}
	a.clearInputs()
	a.state.Reset()
	a.offset = 0
	a.keys.Reset.SetEnabled(a.state.ResetVisible)
}

func (a *App) clearInputs() {
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
}

func (a *App) setFocus(idx int) tea.Cmd {
	var cmd tea.Cmd
	for i := range a.inputs {
		if i == idx {
			cmd = a.inputs[i].Focus()
			a.inputs[i].PromptStyle = focusedPromptStyle
		} else {
			a.inputs[i].Blur()
			a.inputs[i].PromptStyle = promptStyle
		}
		a.inputs[i].TextStyle = inputTextStyle
	}
	a.focus = idx
	return cmd
}

func (a *App) scroll(delta int) {
	a.offset += delta
	a.clampOffset()
}

func (a *App) clampOffset() {
	limit := max(0, len(a.state.Rows())-a.bodyHeight())
	a.offset = min(max(0, a.offset), limit)
}

func (a *App) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// tableHeight is what remains for the table once the header and footer are laid out.
func (a *App) tableHeight() int {
	_, h := a.size()
	return max(0, h-lipgloss.Height(a.headerView())-lipgloss.Height(a.footerView())-1)
}

func (a *App) bodyHeight() int {
	return widgets.BodyHeight(a.tableHeight())
}

func (a *App) View() string {
	parts := []string{a.headerView()}
	if rows := a.state.Rows(); len(rows) > 0 {
		parts = append(parts, a.tableView(rows))
	}
	parts = append(parts, a.footerView())
	return strings.Join(parts, "\n")
}

func (a *App) headerView() string {
	w, _ := a.size()
	lines := []string{
		titleStyle.Render("Áreas de certificación") + "  " + subtitleStyle.Render(a.endpoint),
		"",
		a.inputs[fieldName].View(),
		a.inputs[fieldType].View(),
	}
	if a.state.ValidationVisible {
		lines = append(lines, validationStyle.Render(browser.MsgNeedFilter))
	}
	if a.state.Loading {
		lines = append(lines, a.spinner.View()+" "+loadingStyle.Render("Cargando certificaciones..."))
	}
	if a.state.ErrorVisible {
		lines = append(lines, widgets.Box{
			Title:   "Error",
			Content: errorTextStyle.Render(a.state.ErrorText),
			Border:  colorError,
		}.Render(w))
	}
	return strings.Join(lines, "\n")
}

func (a *App) tableView(rows []browser.Row) string {
	w, _ := a.size()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{strconv.Itoa(r.ID), r.Name, r.Type})
	}
	tbl := widgets.Table{
		Headers:     []string{"ID", "Nombre", "Tipo de certificación"},
		Rows:        cells,
		Offset:      a.offset,
		HeaderStyle: tableHeaderStyle,
		RuleStyle:   tableRuleStyle,
	}
	out := tbl.Render(w, a.tableHeight())
	if body := a.bodyHeight(); len(rows) > body && body > 0 {
		last := min(len(rows), a.offset+body)
		out += "\n" + scrollStyle.Render(fmt.Sprintf("%d-%d de %d", a.offset+1, last, len(rows)))
	}
	return out
}

func (a *App) footerView() string {
	return footerStyle.Render(a.help.View(a.keys))
}
