package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

func newTestModel(t *testing.T) (Model, *session.Session, *[]string) {
	t.Helper()
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	sess := session.New(session.Options{Seed: true, Now: func() time.Time { return at }})
	var copied []string
	m := New(sess, Options{
		Theme: ui.Current(),
		Copy: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})
	return m, sess, &copied
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func shownIDs(m Model) []int {
	var ids []int
	for _, li := range m.list.Items() {
		ids = append(ids, li.(row).item.ID)
	}
	return ids
}

func TestModelShowsSeed(t *testing.T) {
	m, _, _ := newTestModel(t)
	if got := shownIDs(m); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("rows = %v", got)
	}
	view := m.View()
	for _, want := range []string{"Todos", "React 공부하기", "2024-03-01"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelAdd(t *testing.T) {
	m, sess, _ := newTestModel(t)

	m = send(m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add", m.mode)
	}
	m = send(m, runes("신발 사기"), enter)

	if m.mode != modeBrowse {
		t.Fatalf("mode = %v after submit", m.mode)
	}
	if got := shownIDs(m); !reflect.DeepEqual(got, []int{3, 0, 1, 2}) {
		t.Fatalf("rows = %v", got)
	}
	if it, _ := sess.Items().Lookup(3); it.Content != "신발 사기" {
		t.Fatalf("created item = %+v", it)
	}
	if m.editor.Value() != "" {
		t.Fatalf("editor not cleared: %q", m.editor.Value())
	}
}

func TestModelAddEmptyKeepsEditor(t *testing.T) {
	m, sess, _ := newTestModel(t)
	v := sess.Version()

	m = send(m, runes("a"), runes("   "), enter)

	if m.mode != modeAdd {
		t.Fatalf("mode = %v, editor should stay open", m.mode)
	}
	if m.addErr == "" || !strings.Contains(m.View(), "content cannot be empty") {
		t.Fatal("no inline error shown")
	}
	if sess.Version() != v {
		t.Fatal("empty content reached the store")
	}

	m = send(m, esc)
	if m.mode != modeBrowse || m.addErr != "" {
		t.Fatalf("esc did not cancel: mode=%v err=%q", m.mode, m.addErr)
	}
}

func TestModelToggleAndDelete(t *testing.T) {
	m, sess, _ := newTestModel(t)

	m = send(m, down, space)
	it, _ := sess.Items().Lookup(1)
	if !it.IsDone {
		t.Fatal("space did not toggle the selected item")
	}
	if r := m.list.Items()[1].(row); !r.item.IsDone {
		t.Fatal("row not refreshed after toggle")
	}

	m = send(m, runes("d"))
	if got := sess.Items().IDs(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("ids after delete = %v", got)
	}
	if got := shownIDs(m); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("rows after delete = %v", got)
	}
	if sum := sess.Summary(); sum.Total != 2 || sum.Done != 0 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestModelDeleteLastKeepsCursorInRange(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, down, down, runes("x"))
	if m.list.Index() != 1 {
		t.Fatalf("cursor = %d, want 1", m.list.Index())
	}
}

func TestModelSearch(t *testing.T) {
	m, sess, _ := newTestModel(t)

	m = send(m, runes("/"), runes("노래"))
	if sess.SearchTerm() != "노래" {
		t.Fatalf("search term = %q", sess.SearchTerm())
	}
	if got := shownIDs(m); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("rows = %v", got)
	}

	m = send(m, enter)
	if m.mode != modeBrowse || sess.SearchTerm() != "노래" {
		t.Fatal("enter should keep the filter and leave search mode")
	}
	if !strings.Contains(m.View(), "filter:") {
		t.Fatal("active filter not shown")
	}

	m = send(m, runes("/"), esc)
	if sess.SearchTerm() != "" {
		t.Fatalf("esc should clear the filter, got %q", sess.SearchTerm())
	}
	if got := shownIDs(m); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("rows = %v", got)
	}
}

func TestModelCopy(t *testing.T) {
	m, _, copied := newTestModel(t)
	m = send(m, runes("y"))
	if !reflect.DeepEqual(*copied, []string{"React 공부하기"}) {
		t.Fatalf("copied = %v", *copied)
	}
	if m.status != "copied #0" {
		t.Fatalf("status = %q", m.status)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = send(m, runes("y"))
	if m.status != "copy failed" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestModelWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.list.Width() != 96 {
		t.Fatalf("width = %d list = %d", m.width, m.list.Width())
	}
}

func TestRowFilterValue(t *testing.T) {
	r := row{item: model.Item{ID: 1, Content: "빨래 널기"}}
	if r.FilterValue() != "빨래 널기" {
		t.Fatal("FilterValue should be the content")
	}
}
