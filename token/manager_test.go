package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/me1pik/admin-backoffice/admins"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/token"
)

type authConfig struct {
	secret string
	issuer string
}

func (c authConfig) GetJWTSecret() string                 { return c.secret }
func (c authConfig) GetIssuer() string                    { return c.issuer }
func (c authConfig) GetRefreshTokenLength() int           { return 32 }
func (c authConfig) GetAccessTokenExpiry() time.Duration  { return time.Hour }
func (c authConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }
func (c authConfig) GetBootstrapAdminEmail() string       { return "" }
func (c authConfig) GetBootstrapAdminPassword() string    { return "" }

func testAdmin() *admins.Admin {
	return &admins.Admin{
		ID:    "admin-1",
		Email: "admin@melpik.com",
		Role:  admins.RoleSuperAdmin,
	}
}

func TestCreateAndVerify(t *testing.T) {
	cfg := authConfig{secret: "test-secret", issuer: "com.melpik.admin"}
	manager := token.New(cfg)

	signed, err := manager.Create(testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.AdminID)
	require.Equal(t, "admin@melpik.com", claims.Email)
	require.Equal(t, admins.RoleSuperAdmin, claims.Role)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := authConfig{secret: "test-secret", issuer: "com.melpik.admin"}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	manager := token.New(cfg, token.WithNowFunc(func() time.Time { return now }))

	signed, err := manager.Create(testAdmin())
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = manager.Verify(signed)
	require.ErrorIs(t, err, errs.ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	manager := token.New(authConfig{secret: "test-secret", issuer: "com.melpik.admin"})
	other := token.New(authConfig{secret: "another-secret", issuer: "com.melpik.admin"})

	signed, err := manager.Create(testAdmin())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	manager := token.New(authConfig{secret: "test-secret", issuer: "com.other.app"})
	verifier := token.New(authConfig{secret: "test-secret", issuer: "com.melpik.admin"})

	signed, err := manager.Create(testAdmin())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	manager := token.New(authConfig{secret: "test-secret", issuer: "com.melpik.admin"})

	_, err := manager.Verify("not-a-jwt")
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestWithAccessTokenExpiry(t *testing.T) {
	cfg := authConfig{secret: "test-secret", issuer: "com.melpik.admin"}
	manager := token.New(cfg, token.WithAccessTokenExpiry(5*time.Minute))

	signed, err := manager.Create(testAdmin())
	require.NoError(t, err)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt, time.Minute)
}
