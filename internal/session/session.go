// Package session tracks the active keymap tree and the key sequence
// typed since the leader key.
//
// The core parser produces immutable-in-use trees; this package owns the
// one piece of shared state the host needs: which tree is current, swapped
// wholesale on reload, and what the user has typed so far.
package session

import (
	"sync"

	"github.com/dshills/leaderkey/internal/input/key"
	"github.com/dshills/leaderkey/internal/keymap"
)

// Status classifies the state of an in-progress key sequence.
type Status int

const (
	// StatusPending means the sequence is a valid prefix awaiting more keys.
	StatusPending Status = iota

	// StatusResolved means the sequence selected a command or file.
	StatusResolved

	// StatusInvalid means no binding exists for the sequence.
	StatusInvalid
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Outcome is the result of feeding one key press into the session.
type Outcome struct {
	// Status classifies the sequence so far.
	Status Status

	// Item is the resolved command or file for StatusResolved, the
	// pending group for StatusPending, and nil for StatusInvalid.
	Item keymap.Item

	// Keys is the sequence that produced this outcome.
	Keys []key.KeyPress
}

// Session holds the current keymap tree and the in-progress sequence.
// Safe for concurrent use; the tree itself is never mutated, only swapped.
type Session struct {
	mu      sync.RWMutex
	root    *keymap.Group
	strict  bool
	pending []key.KeyPress
}

// New creates a session over the given tree.
func New(root *keymap.Group) *Session {
	return &Session{root: root}
}

// SetStrict controls resolution of sequences that run past a complete
// binding: lenient mode executes the first complete match, strict mode
// treats the whole sequence as invalid.
func (s *Session) SetStrict(strict bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strict = strict
}

// Swap replaces the active tree wholesale and abandons any in-progress
// sequence; a reload invalidates what the user was in the middle of typing.
func (s *Session) Swap(root *keymap.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	s.pending = nil
}

// Root returns the active tree.
func (s *Session) Root() *keymap.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Press feeds one key press into the in-progress sequence and classifies
// the result. Resolved and invalid outcomes reset the sequence; a pending
// outcome leaves it accumulated.
func (s *Session) Press(kp key.KeyPress) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, kp)
	keys := make([]key.KeyPress, len(s.pending))
	copy(keys, s.pending)

	item := s.root.Find(s.pending, s.strict)
	switch it := item.(type) {
	case nil:
		s.pending = nil
		return Outcome{Status: StatusInvalid, Keys: keys}
	case *keymap.Group:
		return Outcome{Status: StatusPending, Item: it, Keys: keys}
	default:
		s.pending = nil
		return Outcome{Status: StatusResolved, Item: it, Keys: keys}
	}
}

// Reset abandons the in-progress sequence.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Pending returns a copy of the in-progress sequence.
func (s *Session) Pending() []key.KeyPress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]key.KeyPress, len(s.pending))
	copy(out, s.pending)
	return out
}

// Suggestions returns the display-ordered children of the group selected
// by the in-progress sequence, or nil if the sequence does not select a
// group.
func (s *Session) Suggestions() []keymap.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.root.Find(s.pending, s.strict).(*keymap.Group)
	if !ok {
		return nil
	}
	return group.Suggestions()
}

// Resolve classifies a complete sequence against the active tree without
// touching the in-progress state.
func (s *Session) Resolve(seq []key.KeyPress) keymap.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Find(seq, s.strict)
}
