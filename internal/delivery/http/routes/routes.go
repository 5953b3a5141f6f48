package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything the registry mounts. Nil handlers are skipped.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Profiles      *handler.ProfileHandler
	Projects      *handler.ProjectHandler
	Applications  *handler.ApplicationHandler
	Coaching      *handler.CoachingHandler
	Notifications *handler.NotificationHandler
	CV            *handler.CVHandler
	Prompts       *handler.PromptHandler
	WS            *ws.Handler
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{h: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	requireAuth := r.auth.Middleware()

	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
	if r.h.Auth != nil {
		r.h.Auth.RegisterRoutes(app.Group("/auth"), requireAuth)
	}
	if r.h.Profiles != nil {
		r.h.Profiles.RegisterRoutes(app.Group("/profiles", requireAuth))
	}
	if r.h.Projects != nil {
		r.h.Projects.RegisterRoutes(app.Group("/projects"), requireAuth)
	}
	if r.h.Applications != nil {
		r.h.Applications.RegisterRoutes(app.Group("/applications", requireAuth))
	}
	if r.h.Coaching != nil {
		r.h.Coaching.RegisterRoutes(app.Group("/coaching", requireAuth))
	}
	if r.h.Notifications != nil {
		r.h.Notifications.RegisterRoutes(app.Group("/notifications", requireAuth))
	}
	if r.h.CV != nil {
		r.h.CV.RegisterRoutes(app.Group("/cv"), r.auth.Optional(), requireAuth)
	}
	if r.h.Prompts != nil {
		r.h.Prompts.RegisterRoutes(app.Group("/prompts"))
	}
	if r.h.WS != nil {
		app.Get("/ws/notifications", requireAuth, r.h.WS.HandleNotifications(middleware.UserID))
	}
}
