package server

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/me1pik/admin-backoffice/admins"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

// InitialiseSystem creates the bootstrap super admin account if no account
// with the configured email exists yet. The generated password is logged
// once on first creation.
func (s *Server) InitialiseSystem(ctx context.Context) error {
	email := s.config.GetBootstrapAdminEmail()

	if _, err := s.repos.Admins.GetByEmail(email); err == nil {
		return nil
	} else if !errs.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("[Server InitialiseSystem] failed to look up bootstrap admin: %w", err)
	}

	password := s.config.GetBootstrapAdminPassword()
	generated := password == ""
	if generated {
		var err error
		password, err = generatePassword()
		if err != nil {
			return fmt.Errorf("[Server InitialiseSystem] failed to generate password: %w", err)
		}
	}

	hash, err := admins.HashPassword(password)
	if err != nil {
		return fmt.Errorf("[Server InitialiseSystem] failed to hash password: %w", err)
	}

	admin := &admins.Admin{
		Email:        email,
		Name:         "Super Admin",
		Role:         admins.RoleSuperAdmin,
		Status:       admins.StatusActive,
		PasswordHash: hash,
		DateJoined:   time.Now(),
	}
	if err := s.repos.Admins.Upsert(admin); err != nil {
		return fmt.Errorf("[Server InitialiseSystem] failed to create bootstrap admin: %w", err)
	}

	if generated {
		s.log.Info().
			Str("email", email).
			Str("password", password).
			Msg("bootstrap super admin created - change the password after first login")
	} else {
		s.log.Info().Str("email", email).Msg("bootstrap super admin created")
	}
	return nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
