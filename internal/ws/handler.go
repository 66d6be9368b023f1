package ws

import (
	"net/http"
	"strings"

	"applyflow/internal/pkg/jwt"
	"applyflow/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *logger.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, log *logger.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, logger: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEventsWS authenticates via the token query parameter (browsers cannot
// set headers on websocket upgrades) and subscribes the connection to the
// caller's own events.
func (h *Handler) HandleEventsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", "error", err)
			return
		}

		client := NewClient(h.hub, conn, claims.UserID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
