// Package cache implements the per-user collection snapshot cache on Redis.
package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vault-finance/backend/internal/application/adapter"
)

// snapshotPurger implements adapter.SnapshotPurger by scanning for every
// snapshot key that belongs to the user, across all collections.
type snapshotPurger struct {
	client *redis.Client
}

// NewSnapshotPurger creates a purger over all collection snapshots.
func NewSnapshotPurger(client *redis.Client) adapter.SnapshotPurger {
	return &snapshotPurger{client: client}
}

// PurgeUser removes all of the user's snapshots across collections. Version
// keys are removed too; a fresh session starts from token zero.
func (p *snapshotPurger) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("vault:snapshot:*:%s*", userID)

	iter := p.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan snapshot keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to purge snapshots: %w", err)
	}
	return nil
}
