package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/infrastructure/storage"
	"talent-match/internal/pkg/validation"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/static"
	"go.uber.org/zap"
)

const (
	// Uploads are capped at 10MB; the extra room covers multipart framing.
	bodyLimit = 11 * 1024 * 1024

	rateLimitMax    = 300
	rateLimitWindow = time.Minute
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the Fiber app around an already wired container.
func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:         cfg.App.AppName,
		BodyLimit:       bodyLimit,
		StructValidator: validation.New(),
	})

	registerGlobalMiddleware(f, cfg.App, c.Logger)

	if local, ok := c.Store.(*storage.Local); ok {
		f.Get("/uploads/*", static.New(local.Dir()))
	}

	uc := c.Usecases
	registry := routes.NewRegistry(routes.Handlers{
		Health: handler.NewHealthHandler(c.DB, c.Redis),
		Auth: handler.NewAuthHandler(uc.Auth, handler.AuthHandlerConfig{
			FrontendURL:  cfg.App.FrontendURL,
			CookieSecure: cfg.Auth.CookieSecure,
		}, c.Logger),
		Profiles:      handler.NewProfileHandler(uc.Profiles),
		Projects:      handler.NewProjectHandler(uc.Projects),
		Applications:  handler.NewApplicationHandler(uc.Applications),
		Coaching:      handler.NewCoachingHandler(uc.Coaching),
		Notifications: handler.NewNotificationHandler(uc.Notifications),
		CV:            handler.NewCVHandler(uc.CV),
		Prompts:       handler.NewPromptHandler(uc.Prompts),
		WS:            ws.NewHandler(c.Hub, cfg.App.CORSOrigins, c.Logger),
	}, middleware.NewAuthMiddleware(uc.Auth))
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects every dependency and returns the app plus a cleanup that
// releases them.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.Wire(ctx); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.AppConfig, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderContentType, fiber.HeaderAuthorization, middleware.HeaderRequestID},
	}))
	app.Use(compress.New(compress.Config{
		Next: func(c fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/ws/") },
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimitMax,
		Expiration: rateLimitWindow,
		LimitReached: func(c fiber.Ctx) error {
			return middleware.NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		},
	}))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
