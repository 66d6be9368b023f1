package handler

import (
	"strconv"

	"applyflow/internal/delivery/http/dto"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/pkg/response"
	"applyflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EventsHandler struct {
	uc *usecase.EventsUsecase
}

func NewEventsHandler(uc *usecase.EventsUsecase) *EventsHandler {
	return &EventsHandler{uc: uc}
}

func (h *EventsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/events", h.List)
}

func (h *EventsHandler) List(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := h.uc.ListForUser(c.Context(), ident.UserID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationEventResponses(events))
}
