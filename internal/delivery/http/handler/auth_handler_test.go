package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"
	"talent-match/internal/usecase"
	ucauth "talent-match/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	callbackErr  error
	registerErr  error
	refreshErr   error
	gotRefresh   string
	loggedOut    []string
	gotRegister  ucauth.RegisterInput
	currentUser  user.User
	currentErr   error
	googleURL    string
	googleURLErr error
}

func (s *stubAuth) session() usecase.Session {
	return usecase.Session{User: user.User{ID: uuid.New(), Email: "a@b.co"}, AccessToken: "acc", RefreshToken: "ref"}
}

func (s *stubAuth) GoogleAuthURL(context.Context) (string, error) { return s.googleURL, s.googleURLErr }
func (s *stubAuth) GoogleCallback(_ context.Context, state, code string) (usecase.Session, error) {
	if s.callbackErr != nil {
		return usecase.Session{}, s.callbackErr
	}
	return s.session(), nil
}
func (s *stubAuth) Register(_ context.Context, in ucauth.RegisterInput) (usecase.Session, error) {
	s.gotRegister = in
	if s.registerErr != nil {
		return usecase.Session{}, s.registerErr
	}
	return s.session(), nil
}
func (s *stubAuth) Login(context.Context, ucauth.LoginInput) (usecase.Session, error) {
	return usecase.Session{}, ucauth.ErrInvalidCredentials
}
func (s *stubAuth) Refresh(_ context.Context, tok string) (usecase.Session, error) {
	s.gotRefresh = tok
	if s.refreshErr != nil {
		return usecase.Session{}, s.refreshErr
	}
	return s.session(), nil
}
func (s *stubAuth) Logout(_ context.Context, access, refresh string) {
	s.loggedOut = []string{access, refresh}
}
func (s *stubAuth) CurrentUser(_ context.Context, id uuid.UUID) (user.User, error) {
	return s.currentUser, s.currentErr
}
func (s *stubAuth) AccessTTL() time.Duration  { return 15 * time.Minute }
func (s *stubAuth) RefreshTTL() time.Duration { return 7 * 24 * time.Hour }

func newAuthApp(s *stubAuth) *AuthHandler {
	return NewAuthHandler(s, AuthHandlerConfig{FrontendURL: "http://app.test/"}, nil)
}

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_GoogleRedirects(t *testing.T) {
	s := &stubAuth{googleURL: "https://accounts.example/consent?state=x"}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, s.googleURL, resp.Header.Get("Location"))

	s.googleURLErr = usecase.ErrOAuthDisabled
	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
	assert.Equal(t, "http://app.test/auth", resp.Header.Get("Location"))
}

func TestAuthHandler_Callback(t *testing.T) {
	s := &stubAuth{}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=s&code=c", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://app.test/role-selection", resp.Header.Get("Location"))

	access := cookieByName(resp, middleware.AccessCookie)
	require.NotNil(t, access)
	assert.Equal(t, "acc", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, 900, access.MaxAge)
	require.NotNil(t, cookieByName(resp, middleware.RefreshCookie))

	s.callbackErr = usecase.ErrInvalidState
	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=bad&code=c", nil))
	assert.Equal(t, "http://app.test/auth", resp.Header.Get("Location"))
	assert.Nil(t, cookieByName(resp, middleware.AccessCookie))

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil))
	assert.Equal(t, "http://app.test/auth", resp.Header.Get("Location"))
}

func TestAuthHandler_Status(t *testing.T) {
	uid := uuid.New()
	s := &stubAuth{currentUser: user.User{ID: uid, Email: "me@x.co", Role: user.RoleApplicant}}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	resp, env := doJSON(t, app, http.MethodGet, "/auth/status", uuid.Nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authenticated", env.Message)

	resp, env = doJSON(t, app, http.MethodGet, "/auth/user", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeData[user.User](t, env)
	assert.Equal(t, "me@x.co", got.Email)

	s.currentErr = usecase.ErrUnauthorized
	resp, _ = doJSON(t, app, http.MethodGet, "/auth/status", uid, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_Logout(t *testing.T) {
	s := &stubAuth{}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessCookie, Value: "a1"})
	req.AddCookie(&http.Cookie{Name: middleware.RefreshCookie, Value: "r1"})
	resp, _ := send(t, app, req)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, []string{"a1", "r1"}, s.loggedOut)
	cleared := cookieByName(resp, middleware.AccessCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestAuthHandler_Refresh(t *testing.T) {
	s := &stubAuth{}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: middleware.RefreshCookie, Value: "from-cookie"})
	resp, _ := send(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "from-cookie", s.gotRefresh)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/refresh", uuid.Nil, `{"refresh_token":"from-body"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "from-body", s.gotRefresh)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/refresh", uuid.Nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	s.refreshErr = usecase.ErrRefreshTokenExpired
	resp, env := doJSON(t, app, http.MethodPost, "/auth/refresh", uuid.Nil, `{"refresh_token":"old"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Refresh token expired", env.Message)
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	s := &stubAuth{}
	app, mw := newTestApp()
	newAuthApp(s).RegisterRoutes(app.Group("/auth"), mw.Middleware())

	resp, env := doJSON(t, app, http.MethodPost, "/auth/register", uuid.Nil, map[string]string{"email": "x", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := decodeData[map[string]string](t, env)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	resp, env = doJSON(t, app, http.MethodPost, "/auth/register", uuid.Nil, map[string]string{"email": "new@x.co", "password": "longenough", "full_name": "New User"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "New User", s.gotRegister.FullName)
	assert.True(t, strings.Contains(string(env.Data), `"access_token":"acc"`))
	assert.NotNil(t, cookieByName(resp, middleware.AccessCookie))

	s.registerErr = ucauth.ErrEmailAlreadyRegistered
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/register", uuid.Nil, map[string]string{"email": "new@x.co", "password": "longenough"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodPost, "/auth/login", uuid.Nil, map[string]string{"email": "new@x.co", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestMapAuthUsecaseError_Internal(t *testing.T) {
	err := mapAuthUsecaseError(errors.New("db down"))
	var appErr *middleware.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
}
