package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisLocker struct {
	lastKey string
	lastTTL time.Duration
	setOK   bool
	setErr  error
	deleted []string
}

func (m *mockRedisLocker) SetNX(ctx context.Context, key string, _ interface{}, expiration time.Duration) *redis.BoolCmd {
	m.lastKey = key
	m.lastTTL = expiration
	cmd := redis.NewBoolCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal(m.setOK)
	return cmd
}

func (m *mockRedisLocker) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.deleted = append(m.deleted, keys...)
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func TestRedisCadenceGuardAcquire(t *testing.T) {
	t.Run("nil guard fail-open", func(t *testing.T) {
		var g *redisCadenceGuard
		if !g.Acquire("u1", "digital-foundation") {
			t.Fatalf("expected fail-open for nil guard")
		}
	})

	t.Run("acquire reserves key with TTL", func(t *testing.T) {
		mock := &mockRedisLocker{setOK: true}
		g := &redisCadenceGuard{client: mock, ttl: 7 * 24 * time.Hour, prefix: "reminder:sent:"}
		if !g.Acquire("u1", "digital-foundation") {
			t.Fatalf("expected acquire to succeed")
		}
		if mock.lastKey != "reminder:sent:u1:digital-foundation" {
			t.Fatalf("unexpected key: %s", mock.lastKey)
		}
		if mock.lastTTL != 7*24*time.Hour {
			t.Fatalf("unexpected TTL: %s", mock.lastTTL)
		}
	})

	t.Run("deny when key already held", func(t *testing.T) {
		g := &redisCadenceGuard{client: &mockRedisLocker{setOK: false}, ttl: time.Hour, prefix: "reminder:sent:"}
		if g.Acquire("u1", "digital-foundation") {
			t.Fatalf("expected deny when key exists")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		g := &redisCadenceGuard{client: &mockRedisLocker{setErr: errors.New("redis down")}, ttl: time.Hour, prefix: "reminder:sent:"}
		if !g.Acquire("u1", "digital-foundation") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})

	t.Run("release deletes the key", func(t *testing.T) {
		mock := &mockRedisLocker{setOK: true}
		g := &redisCadenceGuard{client: mock, ttl: time.Hour, prefix: "reminder:sent:"}
		g.Release("u1", "digital-foundation")
		if len(mock.deleted) != 1 || mock.deleted[0] != "reminder:sent:u1:digital-foundation" {
			t.Fatalf("unexpected deletes: %v", mock.deleted)
		}
	})
}
