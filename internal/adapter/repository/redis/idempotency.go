package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/blockview/internal/usecase"
)

const processingMarker = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// Reserve claims key with a processing marker unless a value is already stored.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*usecase.IdempotentResponse, bool, error) {
	fullKey := s.prefix + key

	set, err := s.client.SetNX(ctx, fullKey, processingMarker, ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if set {
		return nil, true, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// Released between SETNX and GET; let the caller retry.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if string(existing) == processingMarker {
		return nil, false, nil
	}

	var resp usecase.IdempotentResponse
	if err := json.Unmarshal(existing, &resp); err != nil {
		return nil, false, fmt.Errorf("decode idempotent response: %w", err)
	}

	return &resp, false, nil
}

// Complete stores the final response for key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, resp usecase.IdempotentResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode idempotent response: %w", err)
	}

	return s.client.Set(ctx, s.prefix+key, data, ttl).Err()
}

// Release removes the key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
