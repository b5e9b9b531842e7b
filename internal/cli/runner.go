package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune output behavior from root flags and config.
type Options struct {
	Seed       bool
	Group      bool // print lists grouped by pending/done
	DateFormat string
	Logger     *log.Logger
	Now        func() time.Time

	In       io.Reader
	Out, Err io.Writer

	// Interactive starts the TUI; replaced in tests.
	Interactive func(*session.Session, tui.Options) error
}

func (o *Options) defaults() {
	if o.DateFormat == "" {
		o.DateFormat = "2006-01-02"
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Interactive == nil {
		o.Interactive = tui.Run
	}
}

func (o Options) newSession() *session.Session {
	return session.New(session.Options{Seed: o.Seed, Now: o.Now, Logger: o.Logger})
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Err, "usage: todo ui")
			return 2
		}
		return doInteractive(opt)

	case "ls":
		return doList(opt, strings.Join(a, " "))

	case "shell":
		if len(a) != 0 {
			ui.Fail(opt.Err, "usage: todo shell")
			return 2
		}
		return doShell(opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - an in-memory todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ui                 Interactive terminal UI
  ls [term...]       Print the list, optionally filtered by a search term
  shell              Read commands from stdin (type "help" inside)

Flags:
  -config <path>     TOML config file
  -theme <name>      classic, neon or mono
  -color <mode>      auto, always or never
  -log-level <lvl>   debug, info, warn or error
  -log-file <path>   write logs to a file
  -no-seed           start with an empty list
  -group             group printed lists by pending/done

The list lives in memory only; it starts from the sample items each run.

Examples:
  todo ui
  todo ls 노래
  printf 'add Buy milk\ndone 1\nls\n' | todo shell
`)
}

func doInteractive(opt Options) int {
	sess := opt.newSession()
	err := opt.Interactive(sess, tui.Options{
		DateFormat: opt.DateFormat,
		Theme:      ui.Current(),
		Logger:     opt.Logger,
	})
	if err != nil {
		opt.Logger.Error("interactive session failed", "err", err)
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	return 0
}

func doList(opt Options, term string) int {
	sess := opt.newSession()
	sess.Search(term)
	renderList(opt.Out, sess, opt)
	return 0
}

// renderList prints counts, progress and the visible items in a panel.
func renderList(w io.Writer, sess *session.Session, opt Options) {
	lines := ui.SummaryLines(sess.Summary())
	lines = append(lines, "")
	if term := sess.SearchTerm(); term != "" {
		lines = append(lines, ui.C(ui.Current().Accent, fmt.Sprintf("Search: %q", term)))
	}
	if opt.Group {
		lines = append(lines, ui.GroupLines(sess.Visible(), opt.DateFormat)...)
	} else {
		lines = append(lines, ui.ItemLines(sess.Visible(), opt.DateFormat)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: `todo shell` to add, toggle and delete"))
	ui.Panel(w, lines)
}
