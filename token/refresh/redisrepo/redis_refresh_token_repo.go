// Package redisrepo stores refresh token metadata in Redis, letting the
// token's TTL expire server-side state automatically.
package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/token/refresh"
)

const (
	tokenKeyPrefix = "refresh_token:"
	adminKeyPrefix = "admin_refresh:"
)

var _ refresh.Repo = (*RefreshTokenRepo)(nil)

type RefreshTokenRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRefreshTokenRepo creates a Redis-backed refresh token repo. ttl should
// match the configured refresh token expiry so Redis garbage-collects stale
// entries on its own.
func NewRefreshTokenRepo(client *redis.Client, ttl time.Duration) *RefreshTokenRepo {
	return &RefreshTokenRepo{
		client: client,
		ttl:    ttl,
	}
}

func (rr *RefreshTokenRepo) Upsert(token *refresh.StoredRefreshToken) error {
	ctx := context.Background()

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("[RefreshTokenRepo Upsert] failed to marshal token: %w", err)
	}

	if err := rr.client.Set(ctx, tokenKeyPrefix+token.Token, data, rr.ttl).Err(); err != nil {
		return fmt.Errorf("[RefreshTokenRepo Upsert] failed to store token: %w", err)
	}

	// Secondary index so a new login can replace the account's current token
	if err := rr.client.Set(ctx, adminKeyPrefix+token.AdminID, token.Token, rr.ttl).Err(); err != nil {
		return fmt.Errorf("[RefreshTokenRepo Upsert] failed to index token: %w", err)
	}
	return nil
}

func (rr *RefreshTokenRepo) Delete(token string) error {
	ctx := context.Background()

	stored, err := rr.Get(token)
	if err != nil {
		return err
	}

	if err := rr.client.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("[RefreshTokenRepo Delete] failed to delete token: %w", err)
	}
	_ = rr.client.Del(ctx, adminKeyPrefix+stored.AdminID).Err()
	return nil
}

func (rr *RefreshTokenRepo) Get(token string) (*refresh.StoredRefreshToken, error) {
	ctx := context.Background()

	data, err := rr.client.Get(ctx, tokenKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[RefreshTokenRepo Get] failed to read token: %w", err)
	}

	var stored refresh.StoredRefreshToken
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("[RefreshTokenRepo Get] failed to unmarshal token: %w", err)
	}
	return &stored, nil
}

func (rr *RefreshTokenRepo) GetByAdminID(adminID string) (*refresh.StoredRefreshToken, error) {
	ctx := context.Background()

	token, err := rr.client.Get(ctx, adminKeyPrefix+adminID).Result()
	if err == redis.Nil {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[RefreshTokenRepo GetByAdminID] failed to read index: %w", err)
	}
	return rr.Get(token)
}
