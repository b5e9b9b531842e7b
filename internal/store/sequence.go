package store

import (
	"time"

	"github.com/idilsaglam/tada/internal/model"
)

// Sequence hands out item ids. It only moves forward, so an id is never
// reused within a session even after the item is deleted.
type Sequence struct {
	next int
}

// NewSequence starts a sequence whose first id is start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns a fresh id.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the id Next would return without consuming it.
func (s *Sequence) Peek() int { return s.next }

var seedContents = []string{
	"React 공부하기",
	"빨래 널기",
	"노래 연습하기",
}

// Seed returns the sample list a fresh session starts with.
// Ids run from 0 in list order, all stamped with at.
func Seed(at time.Time) model.Collection {
	out := make(model.Collection, 0, len(seedContents))
	for i, content := range seedContents {
		out = append(out, model.Item{ID: i, Content: content, CreatedAt: at})
	}
	return out
}

// SeedSequence starts one past the highest seeded id.
func SeedSequence() *Sequence {
	return NewSequence(len(seedContents))
}
