package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"
	ucauth "talent-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	GoogleAuthURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, state, code string) (usecase.Session, error)
	Register(ctx context.Context, in ucauth.RegisterInput) (usecase.Session, error)
	Login(ctx context.Context, in ucauth.LoginInput) (usecase.Session, error)
	Refresh(ctx context.Context, refreshToken string) (usecase.Session, error)
	Logout(ctx context.Context, accessToken, refreshToken string)
	CurrentUser(ctx context.Context, id uuid.UUID) (user.User, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type AuthHandlerConfig struct {
	FrontendURL  string
	CookieSecure bool
}

type AuthHandler struct {
	uc     AuthService
	cfg    AuthHandlerConfig
	logger *zap.Logger
}

func NewAuthHandler(uc AuthService, cfg AuthHandlerConfig, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the auth routes; requireAuth guards the ones that
// read the current session.
func (h *AuthHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/google", h.Google)
	r.Get("/google/callback", h.GoogleCallback)
	r.Get("/status", requireAuth, h.Me)
	r.Get("/user", requireAuth, h.Me)
	r.Get("/logout", h.Logout)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Google(c fiber.Ctx) error {
	target, err := h.uc.GoogleAuthURL(c.Context())
	if err != nil {
		h.logger.Warn("google sign-in unavailable", zap.Error(err))
		return h.redirectFailure(c)
	}
	return c.Redirect().Status(fiber.StatusFound).To(target)
}

func (h *AuthHandler) GoogleCallback(c fiber.Ctx) error {
	if reason := c.Query("error"); reason != "" {
		h.logger.Info("google sign-in declined", zap.String("reason", reason))
		return h.redirectFailure(c)
	}

	sess, err := h.uc.GoogleCallback(c.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		h.logger.Warn("google callback failed", zap.Error(err))
		return h.redirectFailure(c)
	}

	h.setSession(c, sess)
	return c.Redirect().Status(fiber.StatusFound).To(h.cfg.FrontendURL + "/role-selection")
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	usr, err := h.uc.CurrentUser(c.Context(), id)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.OK(c, usr)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	access, _ := middleware.AccessToken(c)
	h.uc.Logout(c.Context(), access, c.Cookies(middleware.RefreshCookie))
	h.clearSession(c)
	return c.Redirect().Status(fiber.StatusFound).To("/")
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Register(c.Context(), ucauth.RegisterInput{Email: req.Email, Password: req.Password, FullName: req.FullName})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	h.setSession(c, sess)
	return response.Created(c, sessionData(sess))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	h.setSession(c, sess)
	return response.OK(c, sessionData(sess))
}

// Refresh takes the refresh cookie, then the body, then a bearer header.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Cookies(middleware.RefreshCookie))
	if tok == "" && len(c.Body()) > 0 {
		var req dto.RefreshRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}
		tok = strings.TrimSpace(req.RefreshToken)
	}
	if tok == "" {
		tok, _ = middleware.BearerToken(c.Get("Authorization"))
	}
	if tok == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not authenticated", nil, nil)
	}

	sess, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	h.setSession(c, sess)
	return response.OK(c, map[string]any{
		"access_token":  sess.AccessToken,
		"refresh_token": sess.RefreshToken,
	})
}

func (h *AuthHandler) redirectFailure(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusFound).To(h.cfg.FrontendURL + "/auth")
}

func (h *AuthHandler) setSession(c fiber.Ctx, sess usecase.Session) {
	h.setCookie(c, middleware.AccessCookie, sess.AccessToken, h.uc.AccessTTL())
	h.setCookie(c, middleware.RefreshCookie, sess.RefreshToken, h.uc.RefreshTTL())
}

func (h *AuthHandler) clearSession(c fiber.Ctx) {
	for _, name := range []string{middleware.AccessCookie, middleware.RefreshCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   h.cfg.CookieSecure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

func (h *AuthHandler) setCookie(c fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func sessionData(sess usecase.Session) map[string]any {
	return map[string]any{
		"user":          sess.User,
		"access_token":  sess.AccessToken,
		"refresh_token": sess.RefreshToken,
	}
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrTokenRevoked):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not authenticated", nil, err)
	default:
		return internalError(err)
	}
}
