package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

const shellHelp = `Commands:
  add <content...>   Add a new item at the top
  done <id>          Toggle done for item <id>
  rm <id>            Remove item <id>
  find [term...]     Set the search term (empty clears it) and list
  ls                 List items matching the search term
  stats              Print total / done / not done
  help               Show this help
  quit               Leave the shell
`

// doShell reads one command per line until EOF or quit.
func doShell(opt Options) int {
	sess := opt.newSession()
	prompt := false
	if f, ok := opt.In.(*os.File); ok && ui.IsTerminal(f) {
		prompt = true
	}

	sc := bufio.NewScanner(opt.In)
	for {
		if prompt {
			fmt.Fprint(opt.Out, ui.C(ui.Current().Accent, "tada> "))
		}
		if !sc.Scan() {
			break
		}
		if quit := shellLine(opt, sess, sc.Text()); quit {
			return 0
		}
	}
	if err := sc.Err(); err != nil {
		opt.Logger.Error("reading shell input", "err", err)
		ui.Fail(opt.Err, "read: "+err.Error())
		return 1
	}
	return 0
}

// shellLine runs a single command and reports whether the shell should stop.
func shellLine(opt Options, sess *session.Session, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true

	case "help":
		fmt.Fprint(opt.Out, shellHelp)

	case "add":
		it, err := sess.Create(strings.Join(rest, " "))
		if errors.Is(err, session.ErrEmptyContent) {
			ui.Fail(opt.Err, "add: "+err.Error())
			return false
		}
		ui.OK(opt.Out, fmt.Sprintf("added #%d", it.ID))

	case "done", "rm":
		id, ok := parseID(opt.Err, cmd, rest)
		if !ok {
			return false
		}
		apply, verb := sess.Toggle, "toggled"
		if cmd == "rm" {
			apply, verb = sess.Delete, "removed"
		}
		if !apply(id) {
			fmt.Fprintln(opt.Out, ui.C(ui.Current().Muted, fmt.Sprintf("no item #%d", id)))
			return false
		}
		ui.OK(opt.Out, fmt.Sprintf("%s #%d", verb, id))

	case "find":
		sess.Search(strings.Join(rest, " "))
		renderList(opt.Out, sess, opt)

	case "ls":
		renderList(opt.Out, sess, opt)

	case "stats":
		s := sess.Summary()
		fmt.Fprintf(opt.Out, "total %d  done %d  not done %d\n", s.Total, s.Done, s.NotDone)

	default:
		ui.Fail(opt.Err, "unknown command: "+cmd+` (try "help")`)
	}
	return false
}

func parseID(w io.Writer, cmd string, args []string) (int, bool) {
	if len(args) != 1 {
		ui.Fail(w, fmt.Sprintf("usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		ui.Fail(w, cmd+": not a number: "+args[0])
		return 0, false
	}
	return id, true
}
