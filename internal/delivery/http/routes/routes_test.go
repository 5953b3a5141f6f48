package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyAll struct{}

func (denyAll) Authenticate(context.Context, string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestRegistry_GuardsProtectedGroups(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	NewRegistry(Handlers{
		Health:        handler.NewHealthHandler(okPinger{}, okPinger{}),
		Profiles:      handler.NewProfileHandler(nil),
		Applications:  handler.NewApplicationHandler(nil),
		Coaching:      handler.NewCoachingHandler(nil),
		Notifications: handler.NewNotificationHandler(nil),
	}, middleware.NewAuthMiddleware(denyAll{})).Register(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{
		"/profiles/00000000-0000-0000-0000-000000000001",
		"/applications/applicant/00000000-0000-0000-0000-000000000001",
		"/coaching/00000000-0000-0000-0000-000000000001/analytics",
		"/notifications/00000000-0000-0000-0000-000000000001",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
