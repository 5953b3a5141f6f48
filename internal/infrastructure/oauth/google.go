package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"talent-match/internal/config"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var ErrNotConfigured = errors.New("google oauth not configured")

// Identity is the subset of the provider profile used to find or create a user.
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (Identity, error)
}

type Google struct {
	cfg         *oauth2.Config
	userInfoURL string
}

func NewGoogle(cfg config.AuthConfig) (*Google, error) {
	if strings.TrimSpace(cfg.GoogleClientID) == "" || strings.TrimSpace(cfg.GoogleSecret) == "" {
		return nil, ErrNotConfigured
	}
	return &Google{
		cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}, nil
}

func (g *Google) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *Google) Exchange(ctx context.Context, code string) (Identity, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := g.cfg.Client(ctx, tok).Get(g.userInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, fmt.Errorf("read userinfo: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}
	return parseIdentity(body)
}

func parseIdentity(body []byte) (Identity, error) {
	if !gjson.ValidBytes(body) {
		return Identity{}, errors.New("userinfo: invalid json")
	}
	res := gjson.ParseBytes(body)
	id := Identity{
		Subject:   res.Get("sub").String(),
		Email:     strings.ToLower(strings.TrimSpace(res.Get("email").String())),
		Name:      strings.TrimSpace(res.Get("name").String()),
		AvatarURL: res.Get("picture").String(),
	}
	if id.Subject == "" {
		// v2 endpoint
		id.Subject = res.Get("id").String()
	}
	if id.Subject == "" || id.Email == "" {
		return Identity{}, errors.New("userinfo: missing subject or email")
	}
	if id.Name == "" {
		id.Name = id.Email
	}
	return id, nil
}
