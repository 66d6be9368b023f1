package dto

import (
	"time"

	"applyflow/internal/domain/onboarding"

	"github.com/google/uuid"
)

type QuestionView struct {
	ID          string   `json:"id"`
	Field       string   `json:"field"`
	Label       string   `json:"label"`
	Prompt      string   `json:"prompt"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Tip         string   `json:"tip,omitempty"`
	Required    bool     `json:"required"`
	Skippable   bool     `json:"skippable,omitempty"`
}

type MessageView struct {
	Role   string    `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type SessionResponse struct {
	SessionID  uuid.UUID                  `json:"session_id"`
	Phase      string                     `json:"phase"`
	Step       int                        `json:"step"`
	TotalSteps int                        `json:"total_steps"`
	Question   *QuestionView              `json:"question,omitempty"`
	Draft      onboarding.Draft           `json:"draft"`
	Transcript []MessageView              `json:"transcript"`
	Review     []onboarding.ReviewSection `json:"review,omitempty"`
	Redirect   string                     `json:"redirect,omitempty"`
}

func NewSessionResponse(cat onboarding.Catalog, sess *onboarding.Session) SessionResponse {
	out := SessionResponse{
		SessionID:  sess.ID,
		Phase:      string(sess.Phase.Kind),
		Step:       sess.Phase.Step,
		TotalSteps: cat.Len(),
		Draft:      sess.Draft,
		Transcript: make([]MessageView, 0, len(sess.Transcript)),
	}

	for _, m := range sess.Transcript {
		out.Transcript = append(out.Transcript, MessageView{
			Role:   string(m.Role),
			Text:   m.Text,
			SentAt: m.SentAt,
		})
	}

	if q, ok := sess.CurrentQuestion(cat); ok {
		out.Question = &QuestionView{
			ID:          q.ID,
			Field:       q.Field,
			Label:       q.Label,
			Prompt:      q.Prompt,
			Kind:        string(q.Kind),
			Options:     q.Options,
			Placeholder: q.Placeholder,
			Tip:         q.Tip,
			Required:    q.Required,
			Skippable:   q.Skippable,
		}
	}

	if sess.Phase.Kind == onboarding.PhaseReviewing {
		out.Review = sess.Review(cat)
	}

	return out
}
