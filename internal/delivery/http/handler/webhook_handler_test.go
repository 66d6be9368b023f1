package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"applyflow/internal/config"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/pkg/logger"
	"applyflow/internal/repository"
	"applyflow/internal/usecase"
)

const testInternalToken = "internal-token"

type fakeEventRepo struct {
	inserted []repository.ApplicationEvent
}

func (f *fakeEventRepo) Insert(_ context.Context, ev repository.ApplicationEvent) error {
	f.inserted = append(f.inserted, ev)
	return nil
}

func (f *fakeEventRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]repository.ApplicationEvent, error) {
	return nil, nil
}

func newWebhookApp(repo repository.ApplicationEventRepository) *fiber.App {
	log := logger.NewNop()
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log).Middleware())

	events := usecase.NewEventsUsecase(repo, nil, log)
	h := NewWebhookHandler(config.WebhookConfig{InternalToken: testInternalToken}, events, log)
	h.RegisterRoutes(app.Group("/api/v1/webhooks"))
	return app
}

func postEvent(t *testing.T, app *fiber.App, token string, body map[string]any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/events", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Internal-Token", token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestWebhookRecordsEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	app := newWebhookApp(repo)

	userID := uuid.New()
	resp := postEvent(t, app, testInternalToken, map[string]any{
		"event_type":  "offer_scraped",
		"user_id":     userID.String(),
		"job_title":   "Développeur web",
		"company":     "Acme",
		"occurred_at": "2026-03-14T09:30:00Z",
	})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d events, want 1", len(repo.inserted))
	}
	if repo.inserted[0].UserID != userID {
		t.Errorf("user id = %s, want %s", repo.inserted[0].UserID, userID)
	}
}

func TestWebhookRejectsBadToken(t *testing.T) {
	repo := &fakeEventRepo{}
	app := newWebhookApp(repo)

	for _, token := range []string{"", "wrong"} {
		resp := postEvent(t, app, token, map[string]any{
			"event_type": "offer_scraped",
			"user_id":    uuid.New().String(),
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want 401", token, resp.StatusCode)
		}
	}
	if len(repo.inserted) != 0 {
		t.Errorf("unauthorized calls must not record events")
	}
}

func TestWebhookRejectsBadInput(t *testing.T) {
	app := newWebhookApp(&fakeEventRepo{})

	cases := []map[string]any{
		{"event_type": "offer_scraped", "user_id": "not-a-uuid"},
		{"event_type": "unknown_type", "user_id": uuid.New().String()},
		{"event_type": "offer_scraped", "user_id": uuid.New().String(), "occurred_at": "yesterday"},
	}
	for i, body := range cases {
		resp := postEvent(t, app, testInternalToken, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, resp.StatusCode)
		}
	}
}
