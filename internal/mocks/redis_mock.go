// Package mocks provides in-memory implementations of the interfaces the
// usecases depend on, so unit tests run without Postgres or Redis.
package mocks

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MockRedis implements session.RedisCmdable over a map.
type MockRedis struct {
	mu   sync.RWMutex
	data map[string]mockRedisValue

	// Error injection
	SetError    error
	GetError    error
	DelError    error
	ExistsError error
	KeysError   error
}

type mockRedisValue struct {
	value     string
	expiresAt time.Time
}

func NewMockRedis() *MockRedis {
	return &MockRedis{data: make(map[string]mockRedisValue)}
}

func (m *MockRedis) expired(v mockRedisValue) bool {
	return !v.expiresAt.IsZero() && time.Now().After(v.expiresAt)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := redis.NewStatusCmd(ctx)
	if m.SetError != nil {
		cmd.SetErr(m.SetError)
		return cmd
	}

	expiresAt := time.Time{}
	if expiration > 0 {
		expiresAt = time.Now().Add(expiration)
	}

	str, _ := value.(string)
	m.data[key] = mockRedisValue{value: str, expiresAt: expiresAt}
	cmd.SetVal("OK")
	return cmd
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd := redis.NewStringCmd(ctx)
	if m.GetError != nil {
		cmd.SetErr(m.GetError)
		return cmd
	}

	v, ok := m.data[key]
	if !ok || m.expired(v) {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v.value)
	return cmd
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := redis.NewIntCmd(ctx)
	if m.DelError != nil {
		cmd.SetErr(m.DelError)
		return cmd
	}

	var deleted int64
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			delete(m.data, key)
			deleted++
		}
	}
	cmd.SetVal(deleted)
	return cmd
}

func (m *MockRedis) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd := redis.NewIntCmd(ctx)
	if m.ExistsError != nil {
		cmd.SetErr(m.ExistsError)
		return cmd
	}

	var n int64
	for _, key := range keys {
		if v, ok := m.data[key]; ok && !m.expired(v) {
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func (m *MockRedis) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd := redis.NewStringSliceCmd(ctx)
	if m.KeysError != nil {
		cmd.SetErr(m.KeysError)
		return cmd
	}

	var matched []string
	for key, v := range m.data {
		if m.expired(v) {
			continue
		}
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	cmd.SetVal(matched)
	return cmd
}

// Len reports the number of live keys. Test helper.
func (m *MockRedis) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, v := range m.data {
		if !m.expired(v) {
			n++
		}
	}
	return n
}
