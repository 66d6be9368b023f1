package v1

import (
	"applyflow/internal/config"
	"applyflow/internal/delivery/http/handler"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/domain/onboarding"
	"applyflow/internal/infrastructure/profile"
	"applyflow/internal/pkg/jwt"
	"applyflow/internal/pkg/logger"
	"applyflow/internal/repository"
	"applyflow/internal/usecase"
	"applyflow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Cfg      config.Config
	JWT      jwt.Service
	Store    onboarding.Store
	Profiles profile.Client
	Events   repository.ApplicationEventRepository
	Hub      *ws.Hub
	Logger   *logger.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	cat := onboarding.DefaultCatalog()

	onboardingUC := usecase.NewOnboardingUsecase(cat, d.Store, d.Profiles, d.Logger)
	gateUC := usecase.NewGateUsecase(cat, d.Profiles, d.Logger)
	eventsUC := usecase.NewEventsUsecase(d.Events, ws.NewHubNotifier(d.Hub), d.Logger)

	webhookHandler := handler.NewWebhookHandler(d.Cfg.Webhook, eventsUC, d.Logger)
	webhookHandler.RegisterRoutes(r.Group("/webhooks"))

	authMw := middleware.NewAuthMiddleware(d.JWT)
	protected := r.Group("", authMw.Middleware())

	onboardingHandler := handler.NewOnboardingHandler(onboardingUC)
	onboardingHandler.RegisterRoutes(protected.Group("/onboarding"))

	statusHandler := handler.NewProfileStatusHandler(gateUC)
	statusHandler.RegisterRoutes(protected.Group("/profile"))

	eventsHandler := handler.NewEventsHandler(eventsUC)
	eventsHandler.RegisterRoutes(protected.Group("/applications"))
}
