package handler

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"applyflow/internal/config"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/pkg/logger"
	"applyflow/internal/pkg/response"
	"applyflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// WebhookHandler receives pipeline notifications from the n8n workflows.
// Calls authenticate with the shared internal token, never a user JWT.
type WebhookHandler struct {
	cfg    config.WebhookConfig
	events *usecase.EventsUsecase
	logger *logger.Logger
}

type webhookEventRequest struct {
	EventID    string         `json:"event_id"`
	EventType  string         `json:"event_type"`
	UserID     string         `json:"user_id"`
	JobTitle   string         `json:"job_title"`
	Company    string         `json:"company"`
	Payload    map[string]any `json:"payload"`
	OccurredAt string         `json:"occurred_at"`
}

func NewWebhookHandler(cfg config.WebhookConfig, events *usecase.EventsUsecase, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, events: events, logger: log}
}

func (h *WebhookHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/events", h.HandleEvent)
}

func (h *WebhookHandler) HandleEvent(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || subtle.ConstantTimeCompare([]byte(tok), []byte(h.cfg.InternalToken)) != 1 {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req webhookEventRequest
	if err := c.Bind().Body(&req); err != nil {
		h.logger.Warn("webhook bind failed", "error", err)
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.RecordEventInput{
		UserID:    userID,
		EventType: req.EventType,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Payload:   req.Payload,
	}

	if id := strings.TrimSpace(req.EventID); id != "" {
		eventID, err := uuid.Parse(id)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		in.EventID = eventID
	}

	if raw := strings.TrimSpace(req.OccurredAt); raw != "" {
		occurredAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		in.OccurredAt = occurredAt
	}

	if err := h.events.Record(c.Context(), in); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusAccepted, response.MessageOK, nil)
}
