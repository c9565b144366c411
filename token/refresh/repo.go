package refresh

import (
	"time"
)

// StoredRefreshToken represents the server-side storage of refresh token
// metadata. The client only receives the Token field (a random string); the
// rest is server-side metadata used for validation.
type StoredRefreshToken struct {
	Token   string    `json:"token"`    // The actual random token string (sent to client)
	AdminID string    `json:"admin_id"` // Server-side metadata
	Iat     time.Time `json:"iat"`      // Issued at time
}

// Repo manages server-side storage of refresh token metadata, keyed by the
// opaque token string.
type Repo interface {
	Upsert(refreshToken *StoredRefreshToken) error
	Delete(token string) error
	Get(token string) (*StoredRefreshToken, error)
	GetByAdminID(adminID string) (*StoredRefreshToken, error)
}
