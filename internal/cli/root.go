package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tmenu/internal/app"
	"tmenu/internal/config"
	"tmenu/internal/options"
	"tmenu/internal/system"
)

const briefUsage = "[-t <title>] [-o <option>]... [-f <file>] [-s] [-w] [-h]"

type rootFlags struct {
	title   string
	options []string
	file    string
	refresh bool
	watch   bool
	logFile string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "tmenu",
		Short: "tmenu – interactive terminal menu",
		Long: "tmenu shows a titled list of options in the terminal, lets you pick one " +
			"with the arrow keys and Enter, and prints the picked option to stderr.\n" +
			"Keys: ↑/↓ move, PgUp/PgDn page, Enter select, Esc/q quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.title, "title", "t", "", `set menu title (supports \n for newlines)`)
	fl.StringArrayVarP(&f.options, "option", "o", nil, "add menu entry (can be used multiple times)")
	fl.StringVarP(&f.file, "file", "f", "", "read menu entries from file (one per line)")
	fl.BoolVarP(&f.refresh, "refresh", "s", false, "auto-refresh entries from file (every 400ms by default)")
	fl.BoolVarP(&f.watch, "watch", "w", false, "refresh entries when the file changes")
	fl.StringVar(&f.logFile, "log-file", "", "append debug logs to this file")
	// usage, help and the selection all go to stderr; stdout belongs to the menu
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, f rootFlags) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	logPath := settings.LogFile
	if f.logFile != "" {
		logPath = f.logFile
	}
	if logPath != "" {
		c, err := system.SetupLogFile(logPath, settings.LogLevel)
		if err != nil {
			return err
		}
		defer c.Close()
	}

	cfg := app.Config{
		Fixed:           f.options,
		SourcePath:      f.file,
		AutoRefresh:     f.refresh,
		Watch:           f.watch,
		RefreshInterval: settings.RefreshInterval,
	}
	if cmd.Flags().Changed("title") {
		t := ExpandTitle(f.title)
		cfg.Title = &t
	}

	err = app.Run(cfg, cmd.ErrOrStderr())
	if errors.Is(err, app.ErrNothingToShow) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s %s\n", cmd.Name(), briefUsage)
		return nil
	}
	return err
}

// ExpandTitle turns literal \n sequences into newlines and tabs into spaces.
func ExpandTitle(s string) string {
	return options.Sanitize(strings.ReplaceAll(s, `\n`, "\n"))
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
