package view

import "github.com/idilsaglam/tada/internal/model"

// Projector caches Summarize and Filter results for the latest snapshot.
// The caller bumps the version whenever it swaps in a new snapshot; results
// are recomputed only when the version (or the search term) moves.
type Projector struct {
	summary        Summary
	summaryVersion uint64
	summaryOK      bool

	visible        model.Collection
	visibleVersion uint64
	visibleTerm    string
	visibleOK      bool

	// Recomputes counts cache misses; tests read it.
	Recomputes int
}

// Summary returns the counts for c at version.
func (p *Projector) Summary(c model.Collection, version uint64) Summary {
	if p.summaryOK && p.summaryVersion == version {
		return p.summary
	}
	p.summary = Summarize(c)
	p.summaryVersion = version
	p.summaryOK = true
	p.Recomputes++
	return p.summary
}

// Visible returns Filter(c, term) for c at version.
func (p *Projector) Visible(c model.Collection, version uint64, term string) model.Collection {
	if p.visibleOK && p.visibleVersion == version && p.visibleTerm == term {
		return p.visible
	}
	p.visible = Filter(c, term)
	p.visibleVersion = version
	p.visibleTerm = term
	p.visibleOK = true
	p.Recomputes++
	return p.visible
}

// Reset drops cached results.
func (p *Projector) Reset() {
	*p = Projector{Recomputes: p.Recomputes}
}
