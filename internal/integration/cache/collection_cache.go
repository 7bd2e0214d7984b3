// Package cache implements the per-user collection snapshot cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vault-finance/backend/internal/application/adapter"
)

// fillScript stores a snapshot only when the version token has not moved
// since the caller read it. KEYS[1] is the version key, KEYS[2] the data key;
// ARGV[1] the expected token, ARGV[2] the payload, ARGV[3] the TTL in ms.
var fillScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == false then
  current = '0'
end
if current ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// collectionCache implements adapter.CollectionCache on Redis. Snapshots are
// stored as JSON arrays under one key per (collection, user), alongside a
// version counter that invalidates in-flight fills.
type collectionCache[T any] struct {
	client     *redis.Client
	collection string
	ttl        time.Duration
	idOf       func(T) uuid.UUID
}

// NewCollectionCache creates a snapshot cache for one entity collection.
// idOf extracts a record's ID, used by ReplaceByID.
func NewCollectionCache[T any](client *redis.Client, collection string, ttl time.Duration, idOf func(T) uuid.UUID) adapter.CollectionCache[T] {
	return &collectionCache[T]{
		client:     client,
		collection: collection,
		ttl:        ttl,
		idOf:       idOf,
	}
}

func (c *collectionCache[T]) dataKey(userID uuid.UUID) string {
	return fmt.Sprintf("vault:snapshot:%s:%s", c.collection, userID)
}

func (c *collectionCache[T]) versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("vault:snapshot:%s:%s:ver", c.collection, userID)
}

// Get returns the cached snapshot for the user, if one is present.
func (c *collectionCache[T]) Get(ctx context.Context, userID uuid.UUID) ([]T, bool, error) {
	payload, err := c.client.Get(ctx, c.dataKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return items, true, nil
}

// Token returns the user's current version token, zero when none exists yet.
func (c *collectionCache[T]) Token(ctx context.Context, userID uuid.UUID) (int64, error) {
	token, err := c.client.Get(ctx, c.versionKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read snapshot version: %w", err)
	}
	return token, nil
}

// Fill stores a snapshot unless the version token moved since it was read.
func (c *collectionCache[T]) Fill(ctx context.Context, userID uuid.UUID, items []T, token int64) (bool, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return false, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	stored, err := fillScript.Run(ctx, c.client,
		[]string{c.versionKey(userID), c.dataKey(userID)},
		strconv.FormatInt(token, 10),
		payload,
		c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to fill snapshot: %w", err)
	}
	return stored == 1, nil
}

// Prepend bumps the version and adds the record to the front of the snapshot.
// When no snapshot is cached, only the version moves and the next listing
// refetches from the store.
func (c *collectionCache[T]) Prepend(ctx context.Context, userID uuid.UUID, item T) error {
	if err := c.bump(ctx, userID); err != nil {
		return err
	}

	items, ok, err := c.Get(ctx, userID)
	if err != nil || !ok {
		return err
	}
	return c.store(ctx, userID, append([]T{item}, items...))
}

// ReplaceByID bumps the version and swaps the snapshot element with the same
// record ID, leaving the snapshot order unchanged.
func (c *collectionCache[T]) ReplaceByID(ctx context.Context, userID uuid.UUID, item T) error {
	if err := c.bump(ctx, userID); err != nil {
		return err
	}

	items, ok, err := c.Get(ctx, userID)
	if err != nil || !ok {
		return err
	}

	id := c.idOf(item)
	for i := range items {
		if c.idOf(items[i]) == id {
			items[i] = item
			return c.store(ctx, userID, items)
		}
	}
	// Record not in the snapshot; drop it so the next listing refetches.
	return c.client.Del(ctx, c.dataKey(userID)).Err()
}

// Purge bumps the version and drops the user's snapshot.
func (c *collectionCache[T]) Purge(ctx context.Context, userID uuid.UUID) error {
	if err := c.bump(ctx, userID); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.dataKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to purge snapshot: %w", err)
	}
	return nil
}

func (c *collectionCache[T]) bump(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, c.versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump snapshot version: %w", err)
	}
	return nil
}

func (c *collectionCache[T]) store(ctx context.Context, userID uuid.UUID, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.dataKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}
