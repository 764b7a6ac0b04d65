package session

import (
	"sync"
	"time"
)

// DefaultHistoryLimit bounds per-session message history.
const DefaultHistoryLimit = 5

// Context is one conversation's mutable state. Values handed out by the
// store are snapshots; only the store mutates the live copy.
type Context struct {
	ID             string
	FailedAttempts int
	LastIntent     string
	History        []string
	LastSeen       time.Time
}

// Store is the process-wide session map. All read-modify-write sequences
// run under one mutex so concurrent requests for the same session id never
// lose updates, and the background sweeper never observes a half-written
// context.
type Store struct {
	mu           sync.Mutex
	sessions     map[string]*Context
	historyLimit int
	now          func() time.Time
}

// NewStore creates an empty store. historyLimit <= 0 selects the default.
func NewStore(historyLimit int) *Store {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Store{
		sessions:     make(map[string]*Context),
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

// Get returns a snapshot of the session, creating a fresh one on first use.
func (s *Store) Get(id string) Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.locked(id))
}

// RecordMessage appends the raw message to the session history, evicting
// the oldest entry once the history limit is reached.
func (s *Store) RecordMessage(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.locked(id)
	c.History = append(c.History, message)
	if len(c.History) > s.historyLimit {
		c.History = c.History[len(c.History)-s.historyLimit:]
	}
	c.LastSeen = s.now()
}

// RecordMatch notes a successful intent match: the failure counter resets
// to zero and the intent name is remembered.
func (s *Store) RecordMatch(id, intentName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.locked(id)
	c.LastIntent = intentName
	c.FailedAttempts = 0
	c.LastSeen = s.now()
}

// RecordFailure increments the consecutive-failure counter and returns the
// new count.
func (s *Store) RecordFailure(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.locked(id)
	c.FailedAttempts++
	c.LastSeen = s.now()
	return c.FailedAttempts
}

// Delete removes the session entirely. The next message with the same id
// starts a fresh context.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep evicts sessions idle longer than the threshold and returns how
// many were removed.
func (s *Store) Sweep(now time.Time, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, c := range s.sessions {
		if now.Sub(c.LastSeen) > idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// locked returns the live context for id, creating it if absent. Callers
// must hold s.mu.
func (s *Store) locked(id string) *Context {
	c, ok := s.sessions[id]
	if !ok {
		c = &Context{ID: id, LastSeen: s.now()}
		s.sessions[id] = c
	}
	return c
}

func snapshot(c *Context) Context {
	out := *c
	out.History = append([]string(nil), c.History...)
	return out
}
