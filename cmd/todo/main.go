package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }

	cfg, args, err := config.Load(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail(os.Stderr, err.Error())
		return 2
	}

	ui.SetColorMode(cfg.Color)
	ui.SetTheme(cfg.Theme)

	// With no subcommand, a terminal gets the interactive UI.
	if len(args) == 0 && ui.IsTerminal(os.Stdout) && ui.IsTerminal(os.Stdin) {
		args = []string{"ui"}
	}

	// The TUI owns the screen, so logs go to a file or nowhere.
	var logOut io.Writer = os.Stderr
	if len(args) > 0 && args[0] == "ui" {
		logOut = io.Discard
	}
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			ui.Fail(os.Stderr, err.Error())
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.LogOptions())
	if cfg.ConfigFile != "" {
		logger.Debug("config loaded", "file", cfg.ConfigFile)
	}

	code := cli.Run(args, cli.Options{
		Seed:       cfg.Seed,
		Group:      cfg.Group,
		DateFormat: cfg.DateFormat,
		Logger:     logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
