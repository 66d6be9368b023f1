package onboarding

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("onboarding session not found")

// Store keeps at most one active session per user. Sessions are discarded on
// submit or abandon and expire on their own after the configured TTL.
type Store interface {
	Get(ctx context.Context, userID uuid.UUID) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
