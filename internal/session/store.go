package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTTL is how long an idle session survives before eviction.
	DefaultTTL = 2 * time.Hour
	// DefaultSweepInterval is how often the sweeper scans for idle sessions.
	DefaultSweepInterval = 10 * time.Minute
)

type entry struct {
	session    Session
	lastActive time.Time
}

// Store is the process-wide session map. All access goes through the mutex,
// so each append is atomic; interleaving of concurrent appends to the same
// session remains arrival-ordered.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session under a random identifier.
func (s *Store) Create(mode Mode, summary string) Session {
	return s.CreateWithID(uuid.NewString(), mode, summary)
}

// CreateWithID registers a session under the supplied identifier. An existing
// session with the same id is overwritten.
func (s *Store) CreateWithID(id string, mode Mode, summary string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{
		session: Session{
			ID:      id,
			Mode:    mode,
			Summary: summary,
			History: make([]Message, 0, 8),
		},
		lastActive: s.now(),
	}
	s.sessions[id] = e
	return snapshot(e)
}

// Get returns a snapshot of the session and refreshes its idle timer.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	e.lastActive = s.now()
	return snapshot(e), true
}

// Append adds a message to the session history and returns the updated
// snapshot. History is append-only; there is no edit or removal path.
func (s *Store) Append(id string, role Role, content string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	e.session.History = append(e.session.History, Message{Role: role, Content: content})
	e.lastActive = s.now()
	return snapshot(e), true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle past the TTL and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs periodic eviction until the context is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go s.sweepLoop(ctx, interval)
}

func (s *Store) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				log.Printf("evicted %d idle sessions", removed)
			}
		}
	}
}

func snapshot(e *entry) Session {
	history := make([]Message, len(e.session.History))
	copy(history, e.session.History)
	out := e.session
	out.History = history
	return out
}
