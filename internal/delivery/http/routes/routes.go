package routes

import (
	"applyflow/internal/delivery/http/handler"
	v1 "applyflow/internal/delivery/http/routes/v1"
	"applyflow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs, built once in bootstrap.
type Deps = v1.Deps

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	wsHandler := ws.NewHandler(d.Hub, d.JWT, d.Logger)
	app.Get("/ws", wsHandler.HandleEventsWS)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), d)
}
