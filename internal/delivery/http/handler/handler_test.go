package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/pkg/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// tokenAuth treats the bearer token as the user id.
type tokenAuth struct{}

func (tokenAuth) Authenticate(_ context.Context, token string) (jwt.Claims, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return jwt.Claims{}, jwt.ErrTokenInvalid
	}
	return jwt.Claims{UserID: id}, nil
}

func newTestApp() (*fiber.App, *middleware.AuthMiddleware) {
	app := fiber.New(fiber.Config{StructValidator: validation.New()})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	return app, middleware.NewAuthMiddleware(tokenAuth{})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, as uuid.UUID, body any) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewReader([]byte(b))
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+as.String())
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out), string(env.Data))
	return out
}
