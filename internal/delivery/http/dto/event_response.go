package dto

import (
	"encoding/json"
	"time"

	"applyflow/internal/repository"

	"github.com/google/uuid"
)

type ApplicationEventResponse struct {
	ID         uuid.UUID       `json:"id"`
	EventType  string          `json:"event_type"`
	JobTitle   string          `json:"job_title,omitempty"`
	Company    string          `json:"company,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewApplicationEventResponses(events []repository.ApplicationEvent) []ApplicationEventResponse {
	out := make([]ApplicationEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, ApplicationEventResponse{
			ID:         ev.ID,
			EventType:  ev.EventType,
			JobTitle:   ev.JobTitle,
			Company:    ev.Company,
			Payload:    json.RawMessage(ev.Payload),
			OccurredAt: ev.OccurredAt,
		})
	}
	return out
}
