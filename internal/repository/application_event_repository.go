package repository

import (
	"context"
	"time"

	"applyflow/internal/database"

	"github.com/google/uuid"
)

// ApplicationEvent is one pipeline notification relayed by the n8n workflows:
// an offer scraped for the candidate, a match scored, a CV generated or an
// application submitted on their behalf.
type ApplicationEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EventType  string
	JobTitle   string
	Company    string
	Payload    []byte
	OccurredAt time.Time
	CreatedAt  time.Time
}

type ApplicationEventRepository interface {
	Insert(ctx context.Context, ev ApplicationEvent) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ApplicationEvent, error)
}

type PostgresApplicationEventRepository struct {
	db database.DB
}

func NewPostgresApplicationEventRepository(db database.DB) *PostgresApplicationEventRepository {
	return &PostgresApplicationEventRepository{db: db}
}

func (r *PostgresApplicationEventRepository) Insert(ctx context.Context, ev ApplicationEvent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO application_events (id, user_id, event_type, job_title, company, payload, occurred_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (id) DO NOTHING`,
		ev.ID, ev.UserID, ev.EventType, ev.JobTitle, ev.Company, ev.Payload, ev.OccurredAt,
	)
	return err
}

func (r *PostgresApplicationEventRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ApplicationEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, event_type, job_title, company, payload, occurred_at, created_at
		 FROM application_events
		 WHERE user_id = $1
		 ORDER BY occurred_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ApplicationEvent
	for rows.Next() {
		var ev ApplicationEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.EventType, &ev.JobTitle, &ev.Company, &ev.Payload, &ev.OccurredAt, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ApplicationEventRepository = (*PostgresApplicationEventRepository)(nil)
