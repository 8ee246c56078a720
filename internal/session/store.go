// Package session owns the locally cached identity of a signed-in user:
// the (role, email) pair plus the access/refresh token IDs that keep a
// login revocable. Everything lives in Redis, keyed by user ID, so the
// cache survives process restarts and is shared across instances.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	accessKeyPrefix  = "access_token:"
	refreshKeyPrefix = "refresh_token:"
	identityPrefix   = "session:identity:"
)

// RedisCmdable is the slice of the go-redis client the store needs.
// *redis.Client satisfies it; tests use an in-memory mock.
type RedisCmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

// Identity is the cached (role, email) pair of a signed-in user.
type Identity struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

type Store struct {
	client RedisCmdable
}

func NewStore(client RedisCmdable) *Store {
	return &Store{client: client}
}

func accessKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", accessKeyPrefix, userID.String(), tokenID)
}

func refreshKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", refreshKeyPrefix, userID.String(), tokenID)
}

func identityKey(userID uuid.UUID) string {
	return identityPrefix + userID.String()
}

func (s *Store) StoreAccessToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, accessKey(userID, tokenID), "valid", ttl).Err()
}

func (s *Store) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(userID, tokenID), "valid", ttl).Err()
}

func (s *Store) AccessTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, accessKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) RefreshTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) DeleteRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, refreshKey(userID, tokenID)).Err()
}

// SaveIdentity caches the (role, email) pair for userID. The TTL should
// match the refresh-token lifetime so the cache never outlives the login.
func (s *Store) SaveIdentity(ctx context.Context, userID uuid.UUID, role, email string, ttl time.Duration) error {
	payload, err := json.Marshal(Identity{Role: role, Email: email})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, identityKey(userID), string(payload), ttl).Err()
}

// Identity returns the cached identity for userID, or nil when no session
// is cached.
func (s *Store) Identity(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	raw, err := s.client.Get(ctx, identityKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// Revoke removes one access/refresh token pair and the cached identity.
// Used by logout.
func (s *Store) Revoke(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	keys := []string{identityKey(userID)}
	if accessTokenID != "" {
		keys = append(keys, accessKey(userID, accessTokenID))
	}
	if refreshTokenID != "" {
		keys = append(keys, refreshKey(userID, refreshTokenID))
	}
	return s.client.Del(ctx, keys...).Err()
}

// RevokeAll removes every token and the cached identity for userID.
func (s *Store) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	patterns := []string{
		accessKeyPrefix + userID.String() + ":*",
		refreshKeyPrefix + userID.String() + ":*",
	}

	keys := []string{identityKey(userID)}
	for _, pattern := range patterns {
		matched, err := s.client.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		keys = append(keys, matched...)
	}
	return s.client.Del(ctx, keys...).Err()
}
