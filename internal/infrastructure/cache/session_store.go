package cache

import (
	"context"
	"sync"
	"time"

	"applyflow/internal/domain/onboarding"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "onboarding:session:"

// SessionStore keeps onboarding sessions in Redis as JSON with a TTL. When
// Redis is down it falls back to an in-process store so onboarding still
// works on a single instance.
type SessionStore struct {
	cache    *Redis
	ttl      time.Duration
	fallback *MemorySessionStore
}

func NewSessionStore(cache *Redis, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionStore{
		cache:    cache,
		ttl:      ttl,
		fallback: NewMemorySessionStore(ttl),
	}
}

func (s *SessionStore) Get(ctx context.Context, userID uuid.UUID) (*onboarding.Session, error) {
	if !s.cache.Available() {
		return s.fallback.Get(ctx, userID)
	}

	var sess onboarding.Session
	found, err := s.cache.GetJSON(ctx, sessionKey(userID), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, onboarding.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Put(ctx context.Context, sess *onboarding.Session) error {
	if !s.cache.Available() {
		return s.fallback.Put(ctx, sess)
	}
	return s.cache.SetJSON(ctx, sessionKey(sess.UserID), sess, s.ttl)
}

func (s *SessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if !s.cache.Available() {
		return s.fallback.Delete(ctx, userID)
	}
	return s.cache.Delete(ctx, sessionKey(userID))
}

func sessionKey(userID uuid.UUID) string {
	return sessionKeyPrefix + userID.String()
}

var _ onboarding.Store = (*SessionStore)(nil)

// MemorySessionStore is the in-process store used as Redis fallback and in
// tests. Expired entries are dropped lazily on access.
type MemorySessionStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	sess      *onboarding.Session
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &MemorySessionStore{ttl: ttl, m: make(map[uuid.UUID]memoryEntry)}
}

func (s *MemorySessionStore) Get(_ context.Context, userID uuid.UUID) (*onboarding.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[userID]
	if !ok {
		return nil, onboarding.ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.m, userID)
		return nil, onboarding.ErrSessionNotFound
	}
	return e.sess, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sess *onboarding.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.UserID] = memoryEntry{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
	return nil
}

var _ onboarding.Store = (*MemorySessionStore)(nil)
