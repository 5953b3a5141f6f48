package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"talent-match/internal/domain/user"
	"talent-match/internal/infrastructure/oauth"
	"talent-match/internal/pkg/jwt"
	ucauth "talent-match/internal/usecase/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const oauthStateTTL = 10 * time.Minute

type StateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Session struct {
	User         user.User
	AccessToken  string
	RefreshToken string
}

type AuthUsecase struct {
	creds   *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	google  oauth.Provider
	states  StateStore
	revoker Revoker
	logger  *zap.Logger
	now     func() time.Time
}

// NewAuthUsecase accepts a nil google provider; Google sign-in then reports ErrOAuthDisabled.
func NewAuthUsecase(creds *ucauth.Service, users user.Repository, jwtSvc jwt.Service, google oauth.Provider, states StateStore, revoker Revoker, logger *zap.Logger) *AuthUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUsecase{
		creds:   creds,
		users:   users,
		jwt:     jwtSvc,
		google:  google,
		states:  states,
		revoker: revoker,
		logger:  logger,
		now:     time.Now,
	}
}

func (u *AuthUsecase) GoogleAuthURL(ctx context.Context) (string, error) {
	if u.google == nil {
		return "", ErrOAuthDisabled
	}
	state, err := randomState()
	if err != nil {
		return "", ErrInternal
	}
	if err := u.states.Put(ctx, state, oauthStateTTL); err != nil {
		return "", ErrInternal
	}
	return u.google.AuthCodeURL(state), nil
}

// GoogleCallback finds the user by Google id or email, linking or creating as needed.
func (u *AuthUsecase) GoogleCallback(ctx context.Context, state, code string) (Session, error) {
	if u.google == nil {
		return Session{}, ErrOAuthDisabled
	}
	ok, err := u.states.Consume(ctx, state)
	if err != nil || !ok {
		return Session{}, ErrInvalidState
	}
	if code == "" {
		return Session{}, ErrUnauthorized
	}

	id, err := u.google.Exchange(ctx, code)
	if err != nil {
		u.logger.Warn("google exchange failed", zap.Error(err))
		return Session{}, ErrUnauthorized
	}

	usr, err := u.users.FindByGoogleIDOrEmail(ctx, id.Subject, id.Email)
	switch {
	case err == nil:
		if usr.GoogleID == "" {
			if err := u.users.SetGoogleID(ctx, usr.ID, id.Subject); err != nil {
				return Session{}, ErrInternal
			}
			usr.GoogleID = id.Subject
		}
	case errors.Is(err, user.ErrNotFound):
		usr, err = u.users.Create(ctx, user.User{
			GoogleID:  id.Subject,
			Email:     id.Email,
			FullName:  id.Name,
			AvatarURL: id.AvatarURL,
		})
		if err != nil {
			return Session{}, ErrInternal
		}
		u.logger.Info("user created via google", zap.String("user_id", usr.ID.String()))
	default:
		return Session{}, ErrInternal
	}

	return u.issue(usr)
}

func (u *AuthUsecase) Register(ctx context.Context, in ucauth.RegisterInput) (Session, error) {
	usr, err := u.creds.Register(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(usr)
}

func (u *AuthUsecase) Login(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	usr, err := u.creds.Login(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(usr)
}

// Refresh rotates the refresh token; the presented one is revoked.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if refreshToken == "" {
		return Session{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrRefreshTokenExpired
		}
		return Session{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return Session{}, ErrInvalidRefreshToken
	}
	if u.isRevoked(ctx, claims.ID) {
		return Session{}, ErrTokenRevoked
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidRefreshToken
		}
		return Session{}, ErrInternal
	}

	u.revoke(ctx, claims)
	return u.issue(usr)
}

// Authenticate validates an access token and checks it has not been logged out.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (jwt.Claims, error) {
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, err
	}
	if u.jwt.IsRefreshToken(claims) || claims.TokenType != jwt.TokenTypeAccess {
		return jwt.Claims{}, jwt.ErrTokenInvalid
	}
	if u.isRevoked(ctx, claims.ID) {
		return jwt.Claims{}, ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes whichever of the two tokens still validate.
func (u *AuthUsecase) Logout(ctx context.Context, accessToken, refreshToken string) {
	for _, tok := range []string{accessToken, refreshToken} {
		if tok == "" {
			continue
		}
		if claims, err := u.jwt.ValidateToken(tok); err == nil {
			u.revoke(ctx, claims)
		}
	}
}

func (u *AuthUsecase) CurrentUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, err
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *AuthUsecase) AccessTTL() time.Duration  { return u.jwt.AccessTTL() }
func (u *AuthUsecase) RefreshTTL() time.Duration { return u.jwt.RefreshTTL() }

func (u *AuthUsecase) issue(usr user.User) (Session, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return Session{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return Session{}, ErrInternal
	}
	usr.PasswordHash = ""
	return Session{User: usr, AccessToken: access, RefreshToken: refresh}, nil
}

func (u *AuthUsecase) revoke(ctx context.Context, claims jwt.Claims) {
	if u.revoker == nil {
		return
	}
	ttl := claims.ExpiresAtTime().Sub(u.now())
	if err := u.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		u.logger.Warn("token revocation failed", zap.Error(err))
	}
}

func (u *AuthUsecase) isRevoked(ctx context.Context, id string) bool {
	if u.revoker == nil {
		return false
	}
	revoked, err := u.revoker.IsRevoked(ctx, id)
	if err != nil {
		u.logger.Warn("token revocation check failed", zap.Error(err))
		return false
	}
	return revoked
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
