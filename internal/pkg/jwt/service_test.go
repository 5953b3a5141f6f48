package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	uid := uuid.New()

	tok, err := svc.GenerateAccessToken(uid, "a@b.c", "recruiter")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != uid || claims.Role != "recruiter" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected token id")
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh")
	}
}

func TestRefreshTokenIsRecognised(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token")
	}
}

func TestExpiredToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }
	tok, err := svc.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	svc.now = time.Now

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestForeignSecretRejected(t *testing.T) {
	a := NewHMACService("one", "two", time.Hour, time.Hour)
	b := NewHMACService("three", "four", time.Hour, time.Hour)
	tok, _ := a.GenerateAccessToken(uuid.New(), "", "")
	if _, err := b.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNilUserRejected(t *testing.T) {
	svc := NewHMACService("a", "b", time.Hour, time.Hour)
	if _, err := svc.GenerateAccessToken(uuid.Nil, "", ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
