package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/blockview/internal/domain"
)

// generationTTL keeps idle generation counters from piling up. It must be far
// longer than any snapshot TTL.
const generationTTL = 7 * 24 * time.Hour

// setIfGeneration writes the snapshot (KEYS[1]) only while the generation
// counter (KEYS[2]) still equals ARGV[1]. A missing counter reads as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// OwnershipCache implements usecase.OwnershipCache using Redis.
type OwnershipCache struct {
	client    *redis.Client
	prefix    string
	genPrefix string
}

// NewOwnershipCache creates a new OwnershipCache.
func NewOwnershipCache(client *redis.Client) *OwnershipCache {
	return &OwnershipCache{
		client:    client,
		prefix:    "ownership:",
		genPrefix: "ownership-gen:",
	}
}

// Get returns the cached snapshot for owner, or nil on a miss.
func (c *OwnershipCache) Get(ctx context.Context, ownerAccountNumber string) (*domain.AccountOwnership, error) {
	data, err := c.client.Get(ctx, c.prefix+ownerAccountNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ownership domain.AccountOwnership
	if err := json.Unmarshal(data, &ownership); err != nil {
		return nil, fmt.Errorf("decode ownership snapshot: %w", err)
	}

	return &ownership, nil
}

// Generation returns the owner's invalidation counter, 0 if never invalidated.
func (c *OwnershipCache) Generation(ctx context.Context, ownerAccountNumber string) (int64, error) {
	gen, err := c.client.Get(ctx, c.genPrefix+ownerAccountNumber).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores a snapshot with TTL unless the owner was invalidated after
// generation was read.
func (c *OwnershipCache) Set(ctx context.Context, ownerAccountNumber string, generation int64, ownership domain.AccountOwnership, ttl time.Duration) error {
	data, err := json.Marshal(ownership)
	if err != nil {
		return fmt.Errorf("encode ownership snapshot: %w", err)
	}

	ms := ttl.Milliseconds()
	if ms <= 0 {
		ms = 1
	}

	keys := []string{c.prefix + ownerAccountNumber, c.genPrefix + ownerAccountNumber}
	return setIfGeneration.Run(ctx, c.client, keys, strconv.FormatInt(generation, 10), data, ms).Err()
}

// Invalidate drops the owner's snapshot and bumps the generation so that
// in-flight reads cannot store what they loaded before the change.
func (c *OwnershipCache) Invalidate(ctx context.Context, ownerAccountNumber string) error {
	genKey := c.genPrefix + ownerAccountNumber

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, c.prefix+ownerAccountNumber)
		return nil
	})
	return err
}
