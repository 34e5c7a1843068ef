package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/students-api/internal/models"
)

// ErrCacheMiss reports that no cached entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// StudentCacheRepository stores scoped read results in Redis.
type StudentCacheRepository struct {
	client *redis.Client
}

// NewStudentCacheRepository constructs a cache repository. A nil client
// turns every lookup into a miss.
func NewStudentCacheRepository(client *redis.Client) *StudentCacheRepository {
	return &StudentCacheRepository{client: client}
}

// Get returns the cached rows for key or ErrCacheMiss.
func (r *StudentCacheRepository) Get(ctx context.Context, key string) ([]models.Student, error) {
	if r.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var students []models.Student
	if err := json.Unmarshal(raw, &students); err != nil {
		return nil, fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return students, nil
}

// Set stores rows under key with the given TTL.
func (r *StudentCacheRepository) Set(ctx context.Context, key string, students []models.Student, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// DeleteByPattern removes cached entries matching pattern.
func (r *StudentCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.client == nil {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("redis delete %s: %w", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan pattern %s: %w", pattern, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *StudentCacheRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
