// Package view derives read-only views (counts, search results) from a
// collection snapshot.
package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idilsaglam/tada/internal/model"
)

// Summary holds aggregate counts for a snapshot.
type Summary struct {
	Total   int
	Done    int
	NotDone int
}

// Percent is the share of done items, 0..100.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}

// Summarize counts items in c.
func Summarize(c model.Collection) Summary {
	done := 0
	for _, it := range c {
		if it.IsDone {
			done++
		}
	}
	return Summary{Total: len(c), Done: done, NotDone: len(c) - done}
}

// Filter returns the items of c whose content contains term, ignoring case.
// Both sides are lowercased, not case-folded, so "ss" does not match "ß".
// An empty term returns c as is. Order is preserved.
func Filter(c model.Collection, term string) model.Collection {
	if term == "" {
		return c
	}
	// Casers are stateful; one per call.
	lower := cases.Lower(language.Und)
	needle := lower.String(term)
	out := make(model.Collection, 0, len(c))
	for _, it := range c {
		if strings.Contains(lower.String(it.Content), needle) {
			out = append(out, it)
		}
	}
	return out
}
