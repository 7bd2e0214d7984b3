// Package record holds the cached read and mutation flow shared by every
// entity collection use case.
package record

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
)

// ListThroughCache serves a collection listing from the user's snapshot when
// one is cached, otherwise fetches from the store and fills the snapshot.
//
// The version token is read before the store fetch; a fill computed against a
// stale token is discarded, so a concurrent mutation always wins over an
// in-flight listing. Cache failures degrade to plain store reads.
func ListThroughCache[T any](
	ctx context.Context,
	cache adapter.CollectionCache[T],
	collection string,
	userID uuid.UUID,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	cached, ok, err := cache.Get(ctx, userID)
	if err != nil {
		slog.Warn("snapshot read failed, falling back to store",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
	}
	if ok {
		return cached, nil
	}

	token, err := cache.Token(ctx, userID)
	if err != nil {
		slog.Warn("snapshot token read failed",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, FetchError("failed to list "+collection, err)
	}

	if _, err := cache.Fill(ctx, userID, items, token); err != nil {
		slog.Warn("snapshot fill failed",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
	}

	return items, nil
}

// CachePrepend adds a newly created record to the front of the user's
// snapshot. On cache failure the snapshot is purged so the next listing
// refetches; the mutation itself has already succeeded.
func CachePrepend[T any](ctx context.Context, cache adapter.CollectionCache[T], collection string, userID uuid.UUID, item T) {
	if err := cache.Prepend(ctx, userID, item); err != nil {
		slog.Warn("snapshot prepend failed, purging",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
		_ = cache.Purge(ctx, userID)
	}
}

// CacheReplace swaps an updated record in place in the user's snapshot. On
// cache failure the snapshot is purged so the next listing refetches.
func CacheReplace[T any](ctx context.Context, cache adapter.CollectionCache[T], collection string, userID uuid.UUID, item T) {
	if err := cache.ReplaceByID(ctx, userID, item); err != nil {
		slog.Warn("snapshot replace failed, purging",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
		_ = cache.Purge(ctx, userID)
	}
}

// CachePurge drops the user's snapshot after a deletion.
func CachePurge[T any](ctx context.Context, cache adapter.CollectionCache[T], collection string, userID uuid.UUID) {
	if err := cache.Purge(ctx, userID); err != nil {
		slog.Warn("snapshot purge failed",
			"collection", collection,
			"user_id", userID,
			"error", err,
		)
	}
}
