package refresh_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/token/refresh"
	fakerefreshrepo "github.com/me1pik/admin-backoffice/token/refresh/repofake"
)

type authConfig struct {
	refreshExpiry time.Duration
}

func (c authConfig) GetJWTSecret() string                { return "test-secret" }
func (c authConfig) GetIssuer() string                   { return "com.melpik.admin" }
func (c authConfig) GetRefreshTokenLength() int          { return 32 }
func (c authConfig) GetAccessTokenExpiry() time.Duration { return time.Hour }
func (c authConfig) GetRefreshTokenExpiry() time.Duration {
	if c.refreshExpiry != 0 {
		return c.refreshExpiry
	}
	return 7 * 24 * time.Hour
}
func (c authConfig) GetBootstrapAdminEmail() string    { return "" }
func (c authConfig) GetBootstrapAdminPassword() string { return "" }

func TestCreateAndVerify(t *testing.T) {
	repo := fakerefreshrepo.NewFakeRefreshTokenRepo()
	manager := refresh.NewManager(repo, authConfig{})

	tokenStr, err := manager.Create("admin-1")
	require.NoError(t, err)
	require.Len(t, tokenStr, 64) // 32 random bytes hex encoded

	stored, err := manager.Verify(tokenStr)
	require.NoError(t, err)
	require.Equal(t, "admin-1", stored.AdminID)
	require.Equal(t, tokenStr, stored.Token)
}

func TestCreateReplacesExistingToken(t *testing.T) {
	repo := fakerefreshrepo.NewFakeRefreshTokenRepo()
	manager := refresh.NewManager(repo, authConfig{})

	first, err := manager.Create("admin-1")
	require.NoError(t, err)

	second, err := manager.Create("admin-1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = manager.Verify(first)
	require.ErrorIs(t, err, errs.ErrInvalidRefreshToken)

	_, err = manager.Verify(second)
	require.NoError(t, err)
}

func TestVerifyUnknownToken(t *testing.T) {
	manager := refresh.NewManager(fakerefreshrepo.NewFakeRefreshTokenRepo(), authConfig{})

	_, err := manager.Verify("never-issued")
	require.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
}

func TestVerifyExpiredTokenIsDeleted(t *testing.T) {
	repo := fakerefreshrepo.NewFakeRefreshTokenRepo()
	manager := refresh.NewManager(repo, authConfig{refreshExpiry: time.Hour})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	refresh.NowTimeFunc = func() time.Time { return now }
	defer func() { refresh.NowTimeFunc = time.Now }()

	tokenStr, err := manager.Create("admin-1")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = manager.Verify(tokenStr)
	require.ErrorIs(t, err, errs.ErrRefreshTokenExpired)

	// An expired token is removed, so a second verify reports it as unknown.
	_, err = manager.Verify(tokenStr)
	require.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
}

func TestRevoke(t *testing.T) {
	repo := fakerefreshrepo.NewFakeRefreshTokenRepo()
	manager := refresh.NewManager(repo, authConfig{})

	tokenStr, err := manager.Create("admin-1")
	require.NoError(t, err)

	require.NoError(t, manager.Revoke(tokenStr))

	_, err = manager.Verify(tokenStr)
	require.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
}
