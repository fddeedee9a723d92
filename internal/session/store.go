package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a session survives without activity.
const DefaultTTL = 30 * time.Minute

// janitorInterval is how often the background sweep evicts expired sessions.
const janitorInterval = 5 * time.Minute

// Store maps opaque tokens to sessions with TTL-based eviction. Expired
// sessions are also dropped on access, so a stopped janitor only delays
// reclamation, never correctness.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithTTL overrides the session time-to-live.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// withClock substitutes the time source, for tests.
func withClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a session store and starts its eviction janitor.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.janitor()
	return s
}

// Create allocates a fresh session and returns its token.
func (s *Store) Create() (string, *Session) {
	token := uuid.NewString()
	sess := newSession(s.now())

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return token, sess
}

// Get returns the session for a token, refreshing its activity timestamp.
// Unknown and expired tokens both return false; an expired session is
// evicted on the spot.
func (s *Store) Get(token string) (*Session, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if now.Sub(sess.lastActive) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	sess.lastActive = now
	return sess, true
}

// Delete tears down a session, as on logout. Unknown tokens are a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the eviction janitor.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) evictExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if now.Sub(sess.lastActive) > s.ttl {
			delete(s.sessions, token)
		}
	}
}
