// Package credentials abstracts where the admin client keeps its token pair.
// The browser front-end stores these in cookies; here the same contract is an
// injectable key/value store so the HTTP client never touches a concrete
// storage API directly.
package credentials

import "time"

const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"

	// AccessTokenTTL matches the cookie expiry the front-end uses.
	AccessTokenTTL = 7 * 24 * time.Hour
)

// SetOption configures how a value is stored.
type SetOption func(*entryOptions)

type entryOptions struct {
	ttl time.Duration
}

// WithTTL expires the value after d. A zero TTL means the value never expires.
func WithTTL(d time.Duration) SetOption {
	return func(o *entryOptions) {
		o.ttl = d
	}
}

// Store holds the credential pair. Implementations must treat expired
// entries as absent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, opts ...SetOption)
	Delete(key string)
	Clear()
}
