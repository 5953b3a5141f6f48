package middleware

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxRoleKey   = "role"

	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

const msgNotAuthenticated = "Not authenticated"

// Authenticator validates an access token, including revocation.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (jwt.Claims, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Middleware accepts the session cookie or an Authorization bearer token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := AccessToken(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, msgNotAuthenticated, nil, nil)
		}

		claims, err := m.auth.Authenticate(c.Context(), token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// Optional attaches the caller when a valid token is present and lets
// anonymous requests through.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := AccessToken(c); ok {
			if claims, err := m.auth.Authenticate(c.Context(), token); err == nil {
				c.Locals(CtxUserIDKey, claims.UserID)
				c.Locals(CtxEmailKey, claims.Email)
				c.Locals(CtxRoleKey, claims.Role)
			}
		}
		return c.Next()
	}
}

// SelfOnly rejects requests whose path parameter names another user.
func SelfOnly(param string) fiber.Handler {
	return func(c fiber.Ctx) error {
		uid, ok := UserID(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, msgNotAuthenticated, nil, nil)
		}
		target, err := uuid.Parse(c.Params(param))
		if err != nil {
			return NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
		}
		if target != uid {
			return NewAppError(fiber.StatusForbidden, "Not authorized", nil, nil)
		}
		return c.Next()
	}
}

func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// AccessToken prefers the Authorization header over the session cookie.
func AccessToken(c fiber.Ctx) (string, bool) {
	if tok, ok := BearerToken(c.Get("Authorization")); ok {
		return tok, true
	}
	if tok := strings.TrimSpace(c.Cookies(AccessCookie)); tok != "" {
		return tok, true
	}
	return "", false
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
