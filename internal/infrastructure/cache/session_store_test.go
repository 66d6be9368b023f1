package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"applyflow/internal/domain/onboarding"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	cat := onboarding.DefaultCatalog()
	sess := onboarding.NewSession(cat, uuid.New(), "paul@example.com", time.Now().UTC())

	if _, err := store.Get(context.Background(), sess.UserID); !errors.Is(err, onboarding.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound before put", err)
	}

	if err := store.Put(context.Background(), sess); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(context.Background(), sess.UserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("got session %s, want %s", got.ID, sess.ID)
	}

	if err := store.Delete(context.Background(), sess.UserID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(context.Background(), sess.UserID); !errors.Is(err, onboarding.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound after delete", err)
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(10 * time.Millisecond)
	cat := onboarding.DefaultCatalog()
	sess := onboarding.NewSession(cat, uuid.New(), "paul@example.com", time.Now().UTC())

	if err := store.Put(context.Background(), sess); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := store.Get(context.Background(), sess.UserID); !errors.Is(err, onboarding.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound after ttl", err)
	}
}

func TestSessionStoreFallsBackWithoutRedis(t *testing.T) {
	var unavailable *Redis
	store := NewSessionStore(unavailable, time.Hour)
	cat := onboarding.DefaultCatalog()
	sess := onboarding.NewSession(cat, uuid.New(), "paul@example.com", time.Now().UTC())

	if err := store.Put(context.Background(), sess); err != nil {
		t.Fatalf("Put via fallback: %v", err)
	}
	got, err := store.Get(context.Background(), sess.UserID)
	if err != nil {
		t.Fatalf("Get via fallback: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("got session %s, want %s", got.ID, sess.ID)
	}
	if err := store.Delete(context.Background(), sess.UserID); err != nil {
		t.Fatalf("Delete via fallback: %v", err)
	}
}
