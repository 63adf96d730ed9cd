package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AmanKumar245/crimewatch/internal/config"
	"github.com/AmanKumar245/crimewatch/internal/domain"
)

// RedisSlot stores the record as JSON under a single Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisClient opens a client for the configured session backend.
func NewRedisClient(cfg config.SessionConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisSlot creates a slot on client using cfg.Key and cfg.TTL. A zero
// TTL keeps the record until it is cleared.
func NewRedisSlot(client *redis.Client, cfg config.SessionConfig) *RedisSlot {
	return &RedisSlot{client: client, key: cfg.Key, ttl: cfg.TTL}
}

// Load returns the stored actor, or nil when the key is absent.
func (s *RedisSlot) Load(ctx context.Context) (*domain.Actor, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session.Load %s: %w", s.key, err)
	}

	var actor domain.Actor
	if err := json.Unmarshal(raw, &actor); err != nil {
		return nil, fmt.Errorf("session.Load %s decode: %w", s.key, err)
	}
	return &actor, nil
}

// Save replaces the stored actor.
func (s *RedisSlot) Save(ctx context.Context, actor *domain.Actor) error {
	raw, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("session.Save encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session.Save %s: %w", s.key, err)
	}
	return nil
}

// Clear deletes the key. Deleting an absent key is not an error.
func (s *RedisSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session.Clear %s: %w", s.key, err)
	}
	return nil
}

// Ping checks connectivity to Redis.
func (s *RedisSlot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
