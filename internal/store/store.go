// Package store holds the todo collection reducer.
//
// Apply is total: every (state, command) pair yields a state, and commands
// that do not match anything leave the state untouched.
package store

import (
	"time"

	"github.com/idilsaglam/tada/internal/model"
)

// Kind names a command for logging and dispatch.
type Kind string

const (
	KindCreate Kind = "create"
	KindToggle Kind = "toggle"
	KindDelete Kind = "delete"

	// KindUnknown names nil commands and commands whose Kind panics.
	KindUnknown Kind = "unknown"
)

// Command describes one intended mutation of the collection.
type Command interface {
	Kind() Kind
}

// Create prepends a new, not-done item.
// Content must already be validated by the caller; ID must be unused.
type Create struct {
	Content string
	ID      int
	At      time.Time
}

// Toggle flips IsDone on the item with ID.
type Toggle struct {
	ID int
}

// Delete removes the item with ID.
type Delete struct {
	ID int
}

func (Create) Kind() Kind { return KindCreate }
func (Toggle) Kind() Kind { return KindToggle }
func (Delete) Kind() Kind { return KindDelete }

// KindOf returns cmd.Kind(), or KindUnknown for a nil command or a nil
// pointer whose Kind method cannot run.
func KindOf(cmd Command) (k Kind) {
	if cmd == nil {
		return KindUnknown
	}
	defer func() {
		if recover() != nil {
			k = KindUnknown
		}
	}()
	return cmd.Kind()
}

// Apply returns the collection that results from running cmd against state.
// When cmd changes nothing (unknown id, unknown command) state itself is
// returned, so callers may compare headers to detect a no-op.
func Apply(state model.Collection, cmd Command) model.Collection {
	switch c := cmd.(type) {
	case Create:
		return create(state, c)
	case *Create:
		if c != nil {
			return create(state, *c)
		}
	case Toggle:
		return toggle(state, c.ID)
	case *Toggle:
		if c != nil {
			return toggle(state, c.ID)
		}
	case Delete:
		return remove(state, c.ID)
	case *Delete:
		if c != nil {
			return remove(state, c.ID)
		}
	}
	return state
}

func create(state model.Collection, c Create) model.Collection {
	out := make(model.Collection, 0, len(state)+1)
	out = append(out, model.Item{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.At,
	})
	return append(out, state...)
}

func toggle(state model.Collection, id int) model.Collection {
	i := state.Index(id)
	if i < 0 {
		return state
	}
	out := make(model.Collection, len(state))
	copy(out, state)
	out[i].IsDone = !out[i].IsDone
	return out
}

func remove(state model.Collection, id int) model.Collection {
	i := state.Index(id)
	if i < 0 {
		return state
	}
	out := make(model.Collection, 0, len(state)-1)
	out = append(out, state[:i]...)
	return append(out, state[i+1:]...)
}

// Changed reports whether next is a different snapshot than prev.
// It relies on Apply returning its input for no-ops.
func Changed(prev, next model.Collection) bool {
	if len(prev) != len(next) {
		return true
	}
	if len(prev) == 0 {
		return false
	}
	return &prev[0] != &next[0]
}
