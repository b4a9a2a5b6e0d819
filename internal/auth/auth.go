// Package auth provides player profiles and session tokens. Profiles are
// held in memory: a name plus a bcrypt-hashed PIN, with a JWT covering the
// session. The audit trail records registrations and logins.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"casino-sim/internal/audit"
	"casino-sim/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlayerExists       = errors.New("player already exists")
	ErrSessionExpired     = errors.New("session expired")
)

// Profile is a registered player.
type Profile struct {
	Name         string
	pinHash      []byte
	RegisteredAt time.Time
}

// Service provides registration, login, and token validation.
type Service struct {
	config *config.AuthConfig
	audit  *audit.Service

	mu       sync.RWMutex
	profiles map[string]*Profile
}

// New creates a new auth service.
func New(cfg *config.AuthConfig, auditSvc *audit.Service) *Service {
	return &Service{
		config:   cfg,
		audit:    auditSvc,
		profiles: make(map[string]*Profile),
	}
}

// Register creates a new player profile.
func (s *Service) Register(ctx context.Context, name, pin string) (*Profile, error) {
	if name == "" {
		return nil, errors.New("player name is required")
	}
	if len(pin) < 4 {
		return nil, errors.New("pin must be at least 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	profile := &Profile{
		Name:         name,
		pinHash:      hash,
		RegisteredAt: time.Now().UTC(),
	}

	s.mu.Lock()
	if _, exists := s.profiles[name]; exists {
		s.mu.Unlock()
		return nil, ErrPlayerExists
	}
	s.profiles[name] = profile
	s.mu.Unlock()

	s.audit.Log(ctx, audit.EventPlayerRegistered, audit.SeverityInfo, name,
		fmt.Sprintf("Player registered: %s", name), nil)

	return profile, nil
}

// Login checks the PIN and issues a session token.
func (s *Service) Login(ctx context.Context, name, pin string) (string, error) {
	s.mu.RLock()
	profile, ok := s.profiles[name]
	s.mu.RUnlock()

	if !ok {
		s.audit.Log(ctx, audit.EventLoginFailed, audit.SeverityWarning, name,
			"Login attempt for unknown player", nil)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(profile.pinHash, []byte(pin)); err != nil {
		s.audit.Log(ctx, audit.EventLoginFailed, audit.SeverityWarning, name,
			"Login attempt with wrong pin", nil)
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"player": name,
		"exp":    now.Add(s.config.TokenExpiry).Unix(),
		"iat":    now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.audit.Log(ctx, audit.EventPlayerLogin, audit.SeverityInfo, name,
		fmt.Sprintf("Player logged in: %s", name), nil)

	return tokenString, nil
}

// ValidateToken checks a session token and returns the player name.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrSessionExpired
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrSessionExpired
	}

	name, ok := claims["player"].(string)
	if !ok || name == "" {
		return "", ErrSessionExpired
	}

	s.mu.RLock()
	_, exists := s.profiles[name]
	s.mu.RUnlock()
	if !exists {
		return "", ErrSessionExpired
	}

	return name, nil
}
