package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	cases := []struct {
		name   string
		db     Pinger
		cache  Pinger
		status int
		data   string
	}{
		{"all up", up, up, http.StatusOK, `{"database":"up","redis":"up"}`},
		{"redis down is degraded", up, down, http.StatusOK, `{"database":"up","redis":"down"}`},
		{"database down", down, up, http.StatusServiceUnavailable, `{"database":"down","redis":"up"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApp()
			NewHealthHandler(tc.db, tc.cache).RegisterRoutes(app)
			resp, env := doJSON(t, app, http.MethodGet, "/health", uuid.Nil, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.JSONEq(t, tc.data, string(env.Data))
		})
	}
}
