package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"tmenu/internal/options"
	"tmenu/internal/system"
	"tmenu/internal/ui"
	"tmenu/internal/watch"
)

// ErrNothingToShow is returned by Run when there is neither a title nor any
// option, in which case no terminal mode is entered.
var ErrNothingToShow = errors.New("no title and no options")

// Config is the startup configuration built from the command line.
type Config struct {
	// Title is nil when no title was given.
	Title           *string
	Fixed           []string
	SourcePath      string
	AutoRefresh     bool
	Watch           bool
	RefreshInterval time.Duration
}

// Result is how a picker session ended.
type Result struct {
	Selection string
	Selected  bool
}

// Prepare builds the option list shown on the first frame: the fixed options
// followed by one read of the source file, if any.
func Prepare(cfg Config) (options.List, options.Source) {
	list := options.New(cfg.Fixed)
	if cfg.SourcePath == "" {
		return list, nil
	}
	src := options.FileSource{Path: cfg.SourcePath}
	next, _, err := options.Reload(list, src, 0)
	if err != nil {
		system.Logger.Warn("initial read failed", "path", cfg.SourcePath, "err", err)
		return list, src
	}
	return next, src
}

// Run prepares the options, runs the picker and writes the selected option
// followed by a newline to out.
func Run(cfg Config, out io.Writer) error {
	list, src := Prepare(cfg)
	if cfg.Title == nil && list.Len() == 0 {
		return ErrNothingToShow
	}
	res, err := Start(cfg, list, src)
	if err != nil {
		return err
	}
	if res.Selected {
		_, err = fmt.Fprintln(out, res.Selection)
	}
	return err
}

// Start runs the TUI program until the user picks an option or cancels.
// The terminal is restored on every exit path by bubbletea.
func Start(cfg Config, list options.List, src options.Source) (Result, error) {
	opts := ui.Options{Title: cfg.Title, List: list, Source: src}
	if cfg.AutoRefresh && src != nil {
		opts.RefreshInterval = cfg.RefreshInterval
	}
	if cfg.Watch && cfg.SourcePath != "" {
		w, err := watch.New(cfg.SourcePath)
		if err != nil {
			system.Logger.Warn("watch disabled", "path", cfg.SourcePath, "err", err)
		} else {
			defer w.Close()
			opts.Changes = w.Changes()
		}
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	// keep working when stdin or stdout is redirected, like curses on /dev/tty
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return Result{}, fmt.Errorf("no terminal for output: %w", err)
		}
		defer tty.Close()
		progOpts = append(progOpts, tea.WithOutput(tty))
		// style for the terminal we draw on, not the redirected stdout
		opts.Renderer = lipgloss.NewRenderer(tty)
	}

	final, err := tea.NewProgram(ui.New(opts), progOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(ui.Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model %T", final)
	}
	sel, selected := m.Selection()
	system.Logger.Debug("session ended", "outcome", m.Outcome())
	return Result{Selection: sel, Selected: selected}, nil
}
