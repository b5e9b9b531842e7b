// Package session is the caller side of the todo store: it owns the id
// sequence, the clock, the current snapshot and the search term, and
// validates input before any command reaches the reducer.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/view"
)

// ErrEmptyContent is returned by Create when the trimmed content is empty.
var ErrEmptyContent = errors.New("content cannot be empty")

// Options configure a new Session.
type Options struct {
	// Seed starts the session with the sample items.
	Seed   bool
	Now    func() time.Time
	Logger *log.Logger
}

// Session is not safe for concurrent use.
type Session struct {
	Now    func() time.Time
	logger *log.Logger

	items   model.Collection
	version uint64
	seq     *store.Sequence
	search  string
	proj    view.Projector
}

// New creates a session, optionally seeded with the sample items.
func New(opts Options) *Session {
	s := &Session{
		Now:    opts.Now,
		logger: opts.Logger,
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if opts.Seed {
		s.items = store.Seed(s.Now())
		s.seq = store.SeedSequence()
	} else {
		s.items = model.Collection{}
		s.seq = store.NewSequence(0)
	}
	return s
}

// Items returns the current snapshot.
func (s *Session) Items() model.Collection { return s.items }

// Version increases every time the snapshot changes.
func (s *Session) Version() uint64 { return s.version }

// NextID is the id the next created item will get.
func (s *Session) NextID() int { return s.seq.Peek() }

// Create trims content and prepends a new item.
func (s *Session) Create(content string) (model.Item, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		s.logger.Warn("create rejected", "reason", ErrEmptyContent)
		return model.Item{}, ErrEmptyContent
	}
	s.dispatch(store.Create{Content: content, ID: s.seq.Next(), At: s.Now()})
	return s.items[0], nil
}

// Toggle flips the done flag of id. It reports false when id is unknown.
func (s *Session) Toggle(id int) bool {
	return s.dispatch(store.Toggle{ID: id})
}

// Delete removes id. It reports false when id is unknown.
func (s *Session) Delete(id int) bool {
	return s.dispatch(store.Delete{ID: id})
}

// Dispatch applies an arbitrary command. Unknown commands are ignored.
func (s *Session) Dispatch(cmd store.Command) bool {
	return s.dispatch(cmd)
}

func (s *Session) dispatch(cmd store.Command) bool {
	next := store.Apply(s.items, cmd)
	if !store.Changed(s.items, next) {
		s.logger.Debug("command ignored", "kind", store.KindOf(cmd))
		return false
	}
	s.items = next
	s.version++
	s.logger.Debug("command applied", "kind", store.KindOf(cmd), "version", s.version, "total", len(next))
	return true
}

// Search sets the search term used by Visible.
func (s *Session) Search(term string) { s.search = term }

// SearchTerm returns the current search term.
func (s *Session) SearchTerm() string { return s.search }

// Summary returns counts for the current snapshot.
func (s *Session) Summary() view.Summary {
	return s.proj.Summary(s.items, s.version)
}

// Visible returns the current snapshot filtered by the search term.
func (s *Session) Visible() model.Collection {
	return s.proj.Visible(s.items, s.version, s.search)
}
