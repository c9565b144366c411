// Package token mints and verifies the short-lived access tokens the
// back-office API requires on every request.
package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/me1pik/admin-backoffice/admins"
	"github.com/me1pik/admin-backoffice/internal/config"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

// Claims is the verified content of an access token.
type Claims struct {
	AdminID   string
	Email     string
	Role      admins.RoleType
	ExpiresAt time.Time
}

type Manager struct {
	secret       []byte
	issuer       string
	accessExpiry time.Duration
	nowFunc      func() time.Time
}

type ManagerOption func(*Manager)

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

// WithAccessTokenExpiry overrides the configured access token lifetime
func WithAccessTokenExpiry(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.accessExpiry = d
	}
}

func New(cfg config.AuthConfig, options ...ManagerOption) *Manager {
	m := &Manager{
		secret:       []byte(cfg.GetJWTSecret()),
		issuer:       cfg.GetIssuer(),
		accessExpiry: cfg.GetAccessTokenExpiry(),
		nowFunc:      time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Create mints a signed access token for an admin account.
func (m *Manager) Create(admin *admins.Admin) (string, error) {
	now := m.nowFunc()
	claims := jwtlib.MapClaims{
		"iss":   m.issuer,
		"sub":   admin.ID,
		"email": admin.Email,
		"role":  string(admin.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(m.accessExpiry).Unix(),
		"jti":   uuid.New().String(), // Unique token ID
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("[Manager Create] failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token, returning its claims.
// Expired tokens yield ErrTokenExpired; anything else invalid yields
// ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwtlib.Parse(tokenStr, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.secret, nil
	}, jwtlib.WithIssuer(m.issuer), jwtlib.WithTimeFunc(func() time.Time { return m.nowFunc() }))
	if err != nil {
		if errs.Is(err, jwtlib.ErrTokenExpired) {
			return nil, errs.Wrapf(errs.ErrTokenExpired, "[Manager Verify]")
		}
		return nil, errs.Wrapf(errs.ErrInvalidToken, "[Manager Verify] %v", err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errs.ErrInvalidToken
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.AdminID = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = admins.RoleType(role)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if claims.AdminID == "" {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
