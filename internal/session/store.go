package session

import (
	"sync"
	"time"
)

// Store hands out the session for a given id, creating one on first contact.
type Store interface {
	Get(id string) *Session
}

type entry struct {
	sess     *Session
	deadline time.Time
}

// MemoryStore keeps sessions in process memory. Sessions expire after the
// configured TTL of inactivity; an expired id gets a fresh, empty session on
// next access. A TTL of zero disables expiry.
//
// The lock guards only the store's own map — distinct sessions are touched
// concurrently by distinct visitors. It does not serialize access to a single
// Session; see the Session doc.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*entry),
	}
}

func (s *MemoryStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.sessions[id]
	if !ok || (s.ttl > 0 && now.After(e.deadline)) {
		e = &entry{sess: &Session{ID: id}}
		s.sessions[id] = e
	}
	if s.ttl > 0 {
		e.deadline = now.Add(s.ttl)
	}
	return e.sess
}
