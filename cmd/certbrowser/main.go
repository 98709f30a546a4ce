package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/certbrowser/internal/browser"
	"github.com/jask/certbrowser/internal/certificates"
	"github.com/jask/certbrowser/internal/config"
	"github.com/jask/certbrowser/internal/tui"
	"github.com/jask/certbrowser/widgets"
)

func main() {
	configPath := flag.String("config", "", "Path to config.toml (default $CERTBROWSER_CONFIG or ~/.config/certbrowser/config.toml)")
	plain := flag.Bool("plain", false, "Print the table once instead of starting the interactive UI")
	name := flag.String("name", "", "Name filter for -plain")
	typ := flag.String("type", "", "Certification type filter for -plain")
	width := flag.Int("width", 120, "Output width for -plain")
	writeConfig := flag.Bool("write-config", false, "Write the effective configuration to the config path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *writeConfig {
		path, err := writeConfigFile(cfg, *configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		fmt.Println(path)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := certificates.NewClient(cfg.API.Endpoint, cfg.HTTP.Timeout)

	if *plain {
		code := runPlain(ctx, client, *name, *typ, *width)
		stop()
		os.Exit(code)
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "certbrowser")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := runTUI(ctx, cfg, client); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// writeConfigFile saves cfg to path, or to the default config path when path
// is empty, and returns where it was written.
func writeConfigFile(cfg config.Config, path string) (string, error) {
	if path == "" {
		path = config.Path()
	}
	if err := config.Save(cfg, path); err != nil {
		return "", err
	}
	return path, nil
}

// runTUI runs the interactive browser until the user quits or ctx is
// cancelled. Returning cancels the context handed to the fetch, so a request
// still in flight is aborted.
func runTUI(ctx context.Context, cfg config.Config, fetcher tui.Fetcher, extra ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, extra...)

	_, err := tea.NewProgram(tui.New(ctx, fetcher), opts...).Run()
	if err != nil && ctx.Err() != nil {
		// interrupted
		return nil
	}
	return err
}

// runPlain drives the same widget state without a terminal UI and returns
// the process exit code.
func runPlain(ctx context.Context, client *certificates.Client, name, typ string, width int) int {
	var state browser.State
	state.BeginFetch()
	records, err := client.Fetch(ctx)
	state.FinishFetch(records, err)
	if !state.Loaded() {
		fmt.Fprintln(os.Stderr, state.ErrorText)
		return 1
	}

	if name != "" || typ != "" {
		if state.ApplyFilters(name, typ) == browser.FilterRejected {
			fmt.Fprintln(os.Stderr, browser.MsgNeedFilter)
			return 2
		}
	}
	if state.ErrorVisible {
		fmt.Fprintln(os.Stderr, state.ErrorText)
		return 0
	}

	rows := state.Rows()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{strconv.Itoa(r.ID), r.Name, r.Type})
	}
	tbl := widgets.Table{
		Headers:     []string{"ID", "Nombre", "Tipo de certificación"},
		Rows:        cells,
		HeaderStyle: lipgloss.NewStyle().Bold(true),
		RuleStyle:   lipgloss.NewStyle(),
	}
	fmt.Println(tbl.Render(width, len(cells)+2))
	return 0
}
