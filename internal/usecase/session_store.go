package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/logger"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/timeutil"
)

// DefaultSessionIdleTTL is how long an untouched session lives.
const DefaultSessionIdleTTL = 30 * time.Minute

// storeEntry tracks a session and when it was last used.
type storeEntry struct {
	session    *Session
	lastAccess time.Time
}

// SessionStore owns the live wizard sessions. Sessions live in memory only.
type SessionStore struct {
	clock   timeutil.Clock
	idleTTL time.Duration
	log     *logger.Logger
	newID   func() string

	mu       sync.RWMutex
	sessions map[string]*storeEntry
}

// StoreOption configures a SessionStore.
type StoreOption func(*SessionStore)

// WithStoreClock sets the clock used for idle tracking.
func WithStoreClock(clock timeutil.Clock) StoreOption {
	return func(s *SessionStore) { s.clock = clock }
}

// WithIdleTTL sets the idle expiry.
func WithIdleTTL(ttl time.Duration) StoreOption {
	return func(s *SessionStore) {
		if ttl > 0 {
			s.idleTTL = ttl
		}
	}
}

// WithStoreLogger sets the logger.
func WithStoreLogger(log *logger.Logger) StoreOption {
	return func(s *SessionStore) { s.log = log }
}

// NewSessionStore creates an empty store.
func NewSessionStore(opts ...StoreOption) *SessionStore {
	s := &SessionStore{
		clock:    timeutil.NewRealClock(),
		idleTTL:  DefaultSessionIdleTTL,
		log:      logger.Nop(),
		newID:    uuid.NewString,
		sessions: make(map[string]*storeEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new session built by build from a fresh ID.
func (s *SessionStore) Create(build func(id string, now time.Time) *Session) *Session {
	now := s.clock.Now()
	session := build(s.newID(), now)

	s.mu.Lock()
	s.sessions[session.ID] = &storeEntry{session: session, lastAccess: now}
	s.mu.Unlock()

	return session
}

// Get returns a live session and marks it used.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	entry.lastAccess = s.clock.Now()
	return entry.session, nil
}

// Delete ends a session.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions idle for longer than the TTL and returns how many.
func (s *SessionStore) EvictIdle(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.sessions {
		if entry.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunSweeper evicts idle sessions every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(s.clock.Now()); n > 0 {
				s.log.Info().
					Int("evicted", n).
					Int("remaining", s.Len()).
					Msg("idle sessions evicted")
			}
		}
	}
}
