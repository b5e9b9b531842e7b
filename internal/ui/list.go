package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/view"
)

// MaxContentWidth caps item text in printed lists.
const MaxContentWidth = 48

// Header is the title line with live counts.
func Header(s view.Summary) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), s.Done,
		C(t.Pending, t.SymPending), s.NotDone,
		C(t.Accent, "Total"), s.Total,
	)
}

// SummaryLines renders the counts block shown above the list.
func SummaryLines(s view.Summary) []string {
	return []string{
		Header(s),
		C(Current().Muted, ProgressBar(s.Done, s.Total, 28)),
	}
}

// ItemLine renders one item: id, checkbox, content and creation date.
func ItemLine(it model.Item, dateFormat string) string {
	t := Current()
	box, color := t.BoxUnchecked, t.Muted
	content := Truncate(it.Content, MaxContentWidth)
	if it.IsDone {
		box, color = t.BoxChecked, t.Success
		content = Struck(content)
	}
	return fmt.Sprintf("%s %s %s  %s",
		Dim(fmt.Sprintf("%3d", it.ID)),
		C(color, box),
		content,
		C(t.Muted, it.CreatedAt.Format(dateFormat)),
	)
}

// ItemLines renders c, or a placeholder when it is empty.
func ItemLines(c model.Collection, dateFormat string) []string {
	if len(c) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, len(c))
	for _, it := range c {
		out = append(out, ItemLine(it, dateFormat))
	}
	return out
}

// GroupLines renders pending items, then done items, each under a heading.
// Order within a group follows c.
func GroupLines(c model.Collection, dateFormat string) []string {
	var pending, done model.Collection
	for _, it := range c {
		if it.IsDone {
			done = append(done, it)
		} else {
			pending = append(pending, it)
		}
	}
	t := Current()
	lines := []string{C(t.Accent, "Pending")}
	lines = append(lines, groupBody(pending, dateFormat)...)
	lines = append(lines, "", C(t.Accent, "Done"))
	return append(lines, groupBody(done, dateFormat)...)
}

func groupBody(c model.Collection, dateFormat string) []string {
	if len(c) == 0 {
		return []string{C(Current().Muted, "(none)")}
	}
	return ItemLines(c, dateFormat)
}
