package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"applyflow/internal/pkg/logger"
	"applyflow/internal/repository"

	"github.com/google/uuid"
)

// Event types the n8n pipeline relays.
const (
	EventOfferScraped         = "offer_scraped"
	EventMatchScored          = "match_scored"
	EventCVGenerated          = "cv_generated"
	EventApplicationSubmitted = "application_submitted"
)

var knownEventTypes = map[string]bool{
	EventOfferScraped:         true,
	EventMatchScored:          true,
	EventCVGenerated:          true,
	EventApplicationSubmitted: true,
}

// Notifier pushes an event to the user's live connections. Implemented by the
// websocket hub.
type Notifier interface {
	NotifyUser(userID uuid.UUID, eventType string, payload map[string]any)
}

type RecordEventInput struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	EventType  string
	JobTitle   string
	Company    string
	Payload    map[string]any
	OccurredAt time.Time
}

// EventsUsecase records relayed pipeline events and serves the dashboard
// feed.
type EventsUsecase struct {
	events   repository.ApplicationEventRepository
	notifier Notifier
	logger   *logger.Logger
}

func NewEventsUsecase(events repository.ApplicationEventRepository, notifier Notifier, log *logger.Logger) *EventsUsecase {
	return &EventsUsecase{events: events, notifier: notifier, logger: log}
}

// Record persists the relayed event and notifies the candidate's live
// connections. Notification is best-effort; persistence failures are not.
func (u *EventsUsecase) Record(ctx context.Context, in RecordEventInput) error {
	if u.events == nil {
		return ErrInternal
	}
	in.EventType = strings.TrimSpace(in.EventType)
	if !knownEventTypes[in.EventType] || in.UserID == uuid.Nil {
		return ErrInvalidInput
	}
	if in.EventID == uuid.Nil {
		in.EventID = uuid.New()
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = time.Now().UTC()
	}

	var raw []byte
	if in.Payload != nil {
		b, err := json.Marshal(in.Payload)
		if err != nil {
			return ErrInvalidInput
		}
		raw = b
	}

	ev := repository.ApplicationEvent{
		ID:         in.EventID,
		UserID:     in.UserID,
		EventType:  in.EventType,
		JobTitle:   strings.TrimSpace(in.JobTitle),
		Company:    strings.TrimSpace(in.Company),
		Payload:    raw,
		OccurredAt: in.OccurredAt,
	}
	if err := u.events.Insert(ctx, ev); err != nil {
		u.logger.Error("event insert failed", "user_id", in.UserID, "event_type", in.EventType, "error", err)
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyUser(in.UserID, in.EventType, map[string]any{
			"job_title":   ev.JobTitle,
			"company":     ev.Company,
			"occurred_at": ev.OccurredAt.Format(time.RFC3339),
		})
	}

	u.logger.Info("pipeline event recorded", "user_id", in.UserID, "event_type", in.EventType)
	return nil
}

func (u *EventsUsecase) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]repository.ApplicationEvent, error) {
	if u.events == nil {
		return nil, ErrInternal
	}
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.events.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
