package refresh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/me1pik/admin-backoffice/internal/config"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Manager handles refresh token creation, validation, and revocation
type Manager struct {
	repo   Repo
	config config.AuthConfig
}

// NewManager creates a new refresh token manager
func NewManager(repo Repo, cfg config.AuthConfig) *Manager {
	return &Manager{
		repo:   repo,
		config: cfg,
	}
}

// Create generates a new refresh token for an admin and stores it. Any
// existing token for the same admin is replaced (single refresh token per
// account).
func (m *Manager) Create(adminID string) (string, error) {
	if existingToken, err := m.repo.GetByAdminID(adminID); err == nil && existingToken != nil {
		if err := m.repo.Delete(existingToken.Token); err != nil {
			return "", fmt.Errorf("failed to delete existing refresh token: %w", err)
		}
	}

	tokenBytes := make([]byte, m.config.GetRefreshTokenLength()) // Configured length (default: 32 bytes = 256 bits)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	tokenStr := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(&StoredRefreshToken{
		Token:   tokenStr,
		AdminID: adminID,
		Iat:     NowTimeFunc(),
	}); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenStr, nil
}

// Verify looks a refresh token up and checks its age. Expired tokens are
// deleted and reported as ErrRefreshTokenExpired; unknown tokens as
// ErrInvalidRefreshToken.
func (m *Manager) Verify(tokenStr string) (*StoredRefreshToken, error) {
	stored, err := m.repo.Get(tokenStr)
	if err != nil || stored == nil {
		return nil, errs.ErrInvalidRefreshToken
	}

	if NowTimeFunc().Sub(stored.Iat) > m.config.GetRefreshTokenExpiry() {
		_ = m.repo.Delete(tokenStr)
		return nil, errs.ErrRefreshTokenExpired
	}
	return stored, nil
}

// Revoke removes a refresh token from storage.
func (m *Manager) Revoke(tokenStr string) error {
	return m.repo.Delete(tokenStr)
}
