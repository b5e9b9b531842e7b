package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/view"
)

func plain(t *testing.T, theme string) {
	t.Helper()
	SetColorMode("never")
	SetTheme(theme)
	t.Cleanup(func() {
		SetColorMode("auto")
		SetTheme("classic")
	})
}

func TestWidthCountsWideRunes(t *testing.T) {
	if got := Width("노래"); got != 4 {
		t.Fatalf("Width(노래) = %d, want 4", got)
	}
	if got := Width("\x1b[32mok\x1b[0m"); got != 2 {
		t.Fatalf("Width ignores ANSI: got %d", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate kept = %q", got)
	}
	got := Truncate("노래 연습하기", 6)
	if Width(got) > 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("Truncate(노래 연습하기, 6) = %q", got)
	}
	if Truncate("x", 0) != "" {
		t.Fatal("zero width should yield empty string")
	}
}

func TestProgressBar(t *testing.T) {
	plain(t, "mono")
	got := ProgressBar(1, 2, 10)
	if got != "#####.....  50%" {
		t.Fatalf("ProgressBar = %q", got)
	}
	if got := ProgressBar(0, 0, 5); !strings.HasSuffix(got, "  0%") {
		t.Fatalf("empty ProgressBar = %q", got)
	}
}

func TestPanelPadsToWidestLine(t *testing.T) {
	plain(t, "mono")
	var buf bytes.Buffer
	Panel(&buf, []string{"노래", "abc"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("panel lines = %d: %q", len(lines), buf.String())
	}
	for _, ln := range lines {
		if Width(ln) != Width(lines[0]) {
			t.Fatalf("ragged panel: %q", buf.String())
		}
	}
	if lines[0] != "+------+" {
		t.Fatalf("top border = %q", lines[0])
	}
}

func TestItemLines(t *testing.T) {
	plain(t, "mono")
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c := model.Collection{
		{ID: 3, Content: "신발 사기", CreatedAt: at},
		{ID: 1, Content: "빨래 널기", IsDone: true, CreatedAt: at},
	}
	lines := ItemLines(c, "2006-01-02")
	if lines[0] != "  3 [ ] 신발 사기  2024-03-01" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "  1 [x] 빨래 널기  2024-03-01" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if got := ItemLines(nil, "2006-01-02"); len(got) != 1 || got[0] != "no items" {
		t.Fatalf("empty lines = %q", got)
	}
}

func TestGroupLines(t *testing.T) {
	plain(t, "mono")
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c := model.Collection{
		{ID: 3, Content: "신발 사기", CreatedAt: at},
		{ID: 1, Content: "빨래 널기", IsDone: true, CreatedAt: at},
		{ID: 2, Content: "노래 연습하기", CreatedAt: at},
	}
	want := []string{
		"Pending",
		"  3 [ ] 신발 사기  2024-03-01",
		"  2 [ ] 노래 연습하기  2024-03-01",
		"",
		"Done",
		"  1 [x] 빨래 널기  2024-03-01",
	}
	if got := GroupLines(c, "2006-01-02"); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("GroupLines = %q", got)
	}

	got := GroupLines(c[:1], "2006-01-02")
	if got[len(got)-1] != "(none)" {
		t.Fatalf("empty done group = %q", got)
	}
}

func TestHeader(t *testing.T) {
	plain(t, "mono")
	got := Header(view.Summary{Total: 3, Done: 1, NotDone: 2})
	if got != "Todos  x 1  - 2  Total 3" {
		t.Fatalf("Header = %q", got)
	}
}

func TestOKFail(t *testing.T) {
	plain(t, "classic")
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	if buf.String() != "✔ added\n✖ nope\n" {
		t.Fatalf("OK/Fail = %q", buf.String())
	}
}

func TestThemeSwitchRestoresColor(t *testing.T) {
	t.Cleanup(func() {
		SetColorMode("auto")
		SetTheme("classic")
	})
	SetColorMode("always")
	SetTheme("mono")
	if got := Dim("x"); got != "x" {
		t.Fatalf("mono theme colored output: %q", got)
	}
	SetTheme("classic")
	if got := Dim("x"); got != dim+"x"+reset {
		t.Fatalf("classic after mono lost color: %q", got)
	}

	SetColorMode("never")
	SetTheme("neon")
	if got := Dim("x"); got != "x" {
		t.Fatalf("color mode never ignored after theme switch: %q", got)
	}
}
