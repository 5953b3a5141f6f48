package ws

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHandler accepts upgrades from the listed origins; an empty list allows any.
func NewHandler(hub *Hub, allowedOrigins []string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(strings.ToLower(o), "/")] = true
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowed) == 0 || origin == "" {
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return allowed[strings.ToLower(u.Scheme+"://"+u.Host)]
			},
		},
	}
}

// HandleNotifications upgrades an authenticated request; userID comes from
// the auth middleware that ran before it.
func (h *Handler) HandleNotifications(userID func(fiber.Ctx) (uuid.UUID, bool)) fiber.Handler {
	return func(c fiber.Ctx) error {
		if h == nil || h.hub == nil {
			return fiber.ErrServiceUnavailable
		}
		id, ok := userID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		upgrade := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := h.upgrader.Upgrade(w, r, nil)
			if err != nil {
				h.logger.Warn("ws upgrade failed", zap.Error(err))
				return
			}

			client := NewClient(h.hub, conn, id)
			h.hub.Register(client)
			go client.WritePump()
			go client.ReadPump()
		})
		return upgrade(c)
	}
}
