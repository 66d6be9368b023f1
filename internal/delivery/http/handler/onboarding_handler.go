package handler

import (
	"errors"

	"applyflow/internal/delivery/http/dto"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/domain/onboarding"
	"applyflow/internal/pkg/response"
	"applyflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OnboardingHandler struct {
	uc *usecase.OnboardingUsecase
}

type answerRequest struct {
	Value   string   `json:"value"`
	Choices []string `json:"choices"`
}

type editRequest struct {
	Field string `json:"field"`
}

func NewOnboardingHandler(uc *usecase.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/start", h.Start)
	r.Get("/", h.Current)
	r.Post("/answers", h.Answer)
	r.Post("/edit", h.Edit)
	r.Post("/back", h.Back)
	r.Post("/submit", h.Submit)
	r.Delete("/", h.Abandon)
}

func (h *OnboardingHandler) Start(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.uc.Start(c.Context(), ident)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewSessionResponse(h.uc.Catalog(), sess))
}

func (h *OnboardingHandler) Current(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.uc.Current(c.Context(), ident)
	if err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(h.uc.Catalog(), sess))
}

func (h *OnboardingHandler) Answer(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req answerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sess, err := h.uc.Answer(c.Context(), ident, onboarding.Answer{Text: req.Value, Choices: req.Choices})
	if err != nil {
		var verr *onboarding.ValidationError
		if errors.As(err, &verr) {
			return middleware.NewAppError(
				fiber.StatusUnprocessableEntity,
				verr.Message,
				fiber.Map{"field": verr.Field, "kind": string(verr.Kind)},
				verr,
			)
		}
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(h.uc.Catalog(), sess))
}

func (h *OnboardingHandler) Edit(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req editRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Field == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	sess, err := h.uc.Edit(c.Context(), ident, req.Field)
	if err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(h.uc.Catalog(), sess))
}

func (h *OnboardingHandler) Back(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.uc.Back(c.Context(), ident)
	if err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(h.uc.Catalog(), sess))
}

func (h *OnboardingHandler) Submit(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	out, err := h.uc.Submit(c.Context(), ident)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmitFailed) {
			// Non-fatal: the session stays in review and the client may
			// retry, so the transcript with the failure notice goes back.
			res := dto.NewSessionResponse(h.uc.Catalog(), out.Session)
			return response.Error(c, fiber.StatusBadGateway, "Profile submission failed", res)
		}
		return h.mapError(err)
	}

	res := dto.NewSessionResponse(h.uc.Catalog(), out.Session)
	res.Redirect = out.Redirect
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *OnboardingHandler) Abandon(c fiber.Ctx) error {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.Abandon(c.Context(), ident); err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *OnboardingHandler) mapError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		return middleware.NewAppError(fiber.StatusNotFound, "No active onboarding session", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
