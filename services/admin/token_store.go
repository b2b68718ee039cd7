// File: services/admin/token_store.go
package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// adminTokenKey is the single Redis key the active admin token lives under.
// Using one fixed key enforces the one-valid-token invariant: every login
// overwrites the previous token for all instances.
const adminTokenKey = "adminToken"

// TokenStore holds the single currently valid admin token.
type TokenStore interface {
	// Set replaces the active token. Any previously issued token becomes invalid.
	Set(ctx context.Context, token string) error
	// Get returns the active token, or "" when no login has happened yet.
	Get(ctx context.Context) (string, error)
}

// MemoryTokenStore keeps the token in process memory. Suited to single-node
// deploys and tests; the token does not survive a restart.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// RedisTokenStore keeps the token in Redis so multiple instances share one
// admin session. The token is stored without a TTL; it only rotates on login.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, adminTokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save admin token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, adminTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch admin token: %w", err)
	}
	return token, nil
}
