package config

import "time"

type AuthConfig interface {
	GetJWTSecret() string
	GetIssuer() string
	GetRefreshTokenLength() int
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetBootstrapAdminEmail() string
	GetBootstrapAdminPassword() string
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "dev-only-secret-change-me")
}

func (Auth) GetIssuer() string {
	return GetEnv("TOKEN_ISSUER", "com.melpik.admin")
}

func (Auth) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

func (Auth) GetAccessTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (Auth) GetRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

// GetBootstrapAdminEmail returns the email of the super admin created on
// first startup when no admin accounts exist yet.
func (Auth) GetBootstrapAdminEmail() string {
	return GetEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@melpik.com")
}

// GetBootstrapAdminPassword returns the bootstrap super admin password.
// An empty value means a random password is generated and logged once.
func (Auth) GetBootstrapAdminPassword() string {
	return GetEnv("BOOTSTRAP_ADMIN_PASSWORD", "")
}
