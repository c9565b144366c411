package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin back-office
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminBlocked       = errors.New("admin is blocked")
	ErrAdminNotFound      = errors.New("admin not found")

	// Token errors
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrMissingRefreshToken = errors.New("missing refresh token")

	// General errors
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
