// Package session provides the persistent backends for the session
// pointer slot.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/orioninvest/brokerage/pkg/session"
)

// RedisStore persists the session pointer slot in Redis so it survives
// process restarts. The slot has no expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates a RedisStore from redis options.
func NewRedisStore(opt *redis.Options, prefix string, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

func (s *RedisStore) key() string {
	return s.prefix + session.Slot
}

// Set overwrites the pointer. Last write wins.
func (s *RedisStore) Set(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, s.key(), id, 0).Err(); err != nil {
		s.logger.Error("session set failed", "error", err)
		return err
	}
	return nil
}

// Get returns the pointer, ok=false when the slot is empty.
func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	val, err := s.client.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("session get failed", "error", err)
		return "", false, err
	}
	return val, true, nil
}

// Clear empties the slot.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		s.logger.Error("session clear failed", "error", err)
		return err
	}
	return nil
}
