package handler

import (
	"applyflow/internal/delivery/http/dto"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/pkg/response"
	"applyflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileStatusHandler struct {
	gate *usecase.GateUsecase
}

func NewProfileStatusHandler(gate *usecase.GateUsecase) *ProfileStatusHandler {
	return &ProfileStatusHandler{gate: gate}
}

func (h *ProfileStatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/status", h.Status)
}

// Status runs the profile-check gate. Fetch failures are not surfaced as
// errors: the contract is fail-closed, the caller just gets routed to
// onboarding.
func (h *ProfileStatusHandler) Status(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	autoRedirect := c.Query("redirect") == "true"
	result := h.gate.Check(c.Context(), ident, usecase.CheckOptions{AutoRedirect: autoRedirect})

	res := dto.ProfileStatusResponse{
		HasProfile:    result.HasProfile,
		MissingFields: result.MissingFields,
		Redirect:      result.Redirect,
	}
	if res.MissingFields == nil {
		res.MissingFields = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
