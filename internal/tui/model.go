// Package tui is the interactive Bubble Tea front end.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeSearch
)

// Options configure the interactive UI.
type Options struct {
	DateFormat string
	Theme      ui.Theme
	Logger     *log.Logger
	// Copy writes text to the clipboard; defaults to atotto/clipboard.
	Copy func(string) error
}

// row adapts a model.Item to bubbles/list.Item; rows are keyed on item id.
type row struct {
	item model.Item
}

func (r row) FilterValue() string { return r.item.Content }

// delegate renders one row per line: cursor, checkbox, content, date.
type delegate struct {
	st         *styles
	dateFormat string
}

func (d delegate) Height() int                         { return 1 }
func (d delegate) Spacing() int                        { return 0 }
func (d delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d delegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	date := r.item.CreatedAt.Format(d.dateFormat)
	avail := m.Width() - ui.Width(date) - 8
	text := ui.Truncate(r.item.Content, max(avail, 4))

	box := d.st.muted.Render(d.st.boxUnchecked)
	if r.item.IsDone {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	if pad := avail - ui.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, d.st.muted.Render(date))
}

// Model is the Bubble Tea model. Every mutation goes through the session.
type Model struct {
	sess   *session.Session
	logger *log.Logger
	copy   func(string) error

	list   list.Model
	editor textinput.Model
	search textinput.Model
	keys   keyMap
	st     *styles

	mode   mode
	addErr string
	status string

	width, height int

	shownVersion uint64
	shownTerm    string
	shownOK      bool
}

// New builds the model around sess.
func New(sess *session.Session, opts Options) Model {
	if opts.DateFormat == "" {
		opts.DateFormat = "2006-01-02"
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.Current()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	st := newStyles(opts.Theme)
	keys := defaultKeyMap()

	l := list.New(nil, delegate{st: &st, dateFormat: opts.DateFormat}, 0, 0)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.AdditionalShortHelpKeys = keys.browseHelp
	l.AdditionalFullHelpKeys = keys.browseHelp

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "New todo..."
	editor.CharLimit = 200

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search..."
	search.CharLimit = 100

	m := Model{
		sess:   sess,
		logger: opts.Logger,
		copy:   opts.Copy,
		list:   l,
		editor: editor,
		search: search,
		keys:   keys,
		st:     &st,
		width:  80,
		height: 24,
	}
	m.refresh()
	m.resize()
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

// refresh rebuilds list rows when the visible snapshot moved.
func (m *Model) refresh() tea.Cmd {
	v, term := m.sess.Version(), m.sess.SearchTerm()
	if m.shownOK && v == m.shownVersion && term == m.shownTerm {
		return nil
	}
	visible := m.sess.Visible()
	rows := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		rows = append(rows, row{item: it})
	}
	cmd := m.list.SetItems(rows)
	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.shownVersion, m.shownTerm, m.shownOK = v, term, true
	return cmd
}

func (m *Model) resize() {
	listHeight := m.height - 6
	if m.mode != modeBrowse {
		listHeight -= 3
	}
	m.list.SetSize(max(m.width-4, 10), max(listHeight, 3))
	m.editor.Width = max(m.width-10, 10)
	m.search.Width = max(m.width-10, 10)
}

// selected returns the item under the cursor.
func (m Model) selected() (model.Item, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return model.Item{}, false
	}
	return r.item, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeSearch:
		return m.updateSearch(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			it, err := m.sess.Create(m.editor.Value())
			if errors.Is(err, session.ErrEmptyContent) {
				// Keep the editor focused, like refusing to submit.
				m.addErr = "content cannot be empty"
				return m, nil
			}
			m.editor.Reset()
			m.editor.Blur()
			m.addErr = ""
			m.mode = modeBrowse
			m.status = fmt.Sprintf("added #%d", it.ID)
			m.resize()
			cmd := m.refresh()
			m.list.Select(0)
			return m, cmd
		case key.Matches(k, m.keys.Cancel):
			m.editor.Reset()
			m.editor.Blur()
			m.addErr = ""
			m.mode = modeBrowse
			m.resize()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			m.search.Blur()
			m.mode = modeBrowse
			m.resize()
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			m.search.Reset()
			m.search.Blur()
			m.sess.Search("")
			m.mode = modeBrowse
			m.resize()
			cmd := m.refresh()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.sess.Search(m.search.Value())
	refresh := m.refresh()
	return m, tea.Batch(cmd, refresh)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Add):
		m.mode = modeAdd
		m.status = ""
		m.resize()
		cmd := m.editor.Focus()
		return m, cmd

	case key.Matches(k, m.keys.Search):
		m.mode = modeSearch
		m.status = ""
		m.resize()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(k, m.keys.Toggle):
		if it, ok := m.selected(); ok && m.sess.Toggle(it.ID) {
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil

	case key.Matches(k, m.keys.Delete):
		if it, ok := m.selected(); ok && m.sess.Delete(it.ID) {
			m.status = fmt.Sprintf("deleted #%d", it.ID)
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil

	case key.Matches(k, m.keys.Copy):
		if it, ok := m.selected(); ok {
			if err := m.copy(it.Content); err != nil {
				m.logger.Warn("clipboard write failed", "err", err)
				m.status = "copy failed"
			} else {
				m.status = fmt.Sprintf("copied #%d", it.ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	s := m.sess.Summary()
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render(m.st.symDone), s.Done,
		m.st.pending.Render(m.st.symPending), s.NotDone,
		m.st.accent.Render("Total"), s.Total,
	)
	bar := m.st.muted.Render(ui.ProgressBar(s.Done, s.Total, 28))

	parts := []string{header, bar}

	switch m.mode {
	case modeAdd:
		title := "New todo"
		if m.addErr != "" {
			title += " · " + m.st.errorMsg.Render(m.addErr)
		}
		parts = append(parts, m.st.inputBox.Render(title+"\n"+m.editor.View()))
	case modeSearch:
		parts = append(parts, m.st.inputBox.Render("Search\n"+m.search.View()))
	default:
		if term := m.sess.SearchTerm(); term != "" {
			parts = append(parts, m.st.muted.Render(fmt.Sprintf("filter: %q (/ to change)", term)))
		}
	}

	parts = append(parts, m.list.View())
	if m.status != "" {
		parts = append(parts, m.st.muted.Render(m.status))
	}
	return m.st.frame.Render(strings.Join(parts, "\n"))
}
