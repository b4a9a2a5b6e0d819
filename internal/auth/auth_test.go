package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"casino-sim/internal/audit"
	"casino-sim/internal/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.AuthConfig{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
	}
	return New(cfg, audit.New(nil))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Register(ctx, "alice", "4321")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if profile.Name != "alice" {
		t.Errorf("unexpected name %q", profile.Name)
	}

	token, err := svc.Login(ctx, "alice", "4321")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	name, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if name != "alice" {
		t.Errorf("expected player alice, got %q", name)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "4321"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := svc.Register(ctx, "bob", "12"); err == nil {
		t.Error("expected error for short pin")
	}

	if _, err := svc.Register(ctx, "bob", "1234"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "9999"); !errors.Is(err, ErrPlayerExists) {
		t.Errorf("expected ErrPlayerExists, got %v", err)
	}
}

func TestLoginWrongPin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.Register(ctx, "carol", "1234")
	if _, err := svc.Login(ctx, "carol", "0000"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown player, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := New(&config.AuthConfig{JWTSecret: "secret-a", TokenExpiry: time.Hour}, audit.New(nil))
	issuer.Register(ctx, "dave", "1234")
	token, err := issuer.Login(ctx, "dave", "1234")
	if err != nil {
		t.Fatal(err)
	}

	verifier := New(&config.AuthConfig{JWTSecret: "secret-b", TokenExpiry: time.Hour}, audit.New(nil))
	verifier.Register(ctx, "dave", "1234")
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected rejection across secrets, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	ctx := context.Background()
	svc := New(&config.AuthConfig{JWTSecret: "s", TokenExpiry: -time.Minute}, audit.New(nil))
	svc.Register(ctx, "erin", "1234")
	token, err := svc.Login(ctx, "erin", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}
