package auth

import (
	"testing"
	"time"

	"notify-dispatch/internal/config"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	m, err := NewManager(config.AuthConfig{
		JWTSecret:   "secret",
		JWTIssuer:   "issuer",
		JWTAudience: "aud",
		TokenTTL:    15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, "billing-app", "notifier")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token string")
	}

	claims, err := m.Verify(tok, now.Add(1*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "billing-app" || claims.Role != "notifier" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret", TokenTTL: time.Minute})
	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, "app", "notifier")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(tok, now.Add(time.Hour)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer, _ := NewManager(config.AuthConfig{JWTSecret: "one"})
	verifier, _ := NewManager(config.AuthConfig{JWTSecret: "two"})

	now := time.Now()
	tok, err := issuer.Issue(now, "app", "notifier")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(tok, now); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	issuer, _ := NewManager(config.AuthConfig{JWTSecret: "s", JWTAudience: "other"})
	verifier, _ := NewManager(config.AuthConfig{JWTSecret: "s", JWTAudience: "notify"})

	now := time.Now()
	tok, _ := issuer.Issue(now, "app", "notifier")
	if _, err := verifier.Verify(tok, now); err == nil {
		t.Fatalf("expected audience error")
	}
}

func TestIssueRequiresSubjectAndRole(t *testing.T) {
	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret"})
	if _, err := m.Issue(time.Now(), "", "notifier"); err == nil {
		t.Fatalf("expected subject error")
	}
	if _, err := m.Issue(time.Now(), "app", ""); err == nil {
		t.Fatalf("expected role error")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager(config.AuthConfig{}); err == nil {
		t.Fatalf("expected error")
	}
}
