// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CollectionCache holds a per-user snapshot of one entity collection. It is
// the server-side equivalent of a client data hook's local collection state:
// listings read through it, and successful mutations update the snapshot in
// place instead of forcing a refetch.
//
// Every fill is guarded by a version token read before the store fetch. The
// token increases monotonically on each mutation or purge, so a fill computed
// against a stale token is discarded rather than overwriting a newer
// snapshot: last issued wins, not last completed.
type CollectionCache[T any] interface {
	// Get returns the cached snapshot for the user, if one is present.
	Get(ctx context.Context, userID uuid.UUID) ([]T, bool, error)

	// Token returns the user's current version token. Callers read the token
	// before fetching from the store and pass it back to Fill.
	Token(ctx context.Context, userID uuid.UUID) (int64, error)

	// Fill stores a snapshot only if the version token is still current.
	// It reports whether the snapshot was stored or discarded as stale.
	Fill(ctx context.Context, userID uuid.UUID, items []T, token int64) (bool, error)

	// Prepend adds a newly created record to the front of the snapshot.
	Prepend(ctx context.Context, userID uuid.UUID, item T) error

	// ReplaceByID swaps the snapshot element with the same record ID.
	ReplaceByID(ctx context.Context, userID uuid.UUID, item T) error

	// Purge drops the user's snapshot, forcing the next listing to refetch.
	Purge(ctx context.Context, userID uuid.UUID) error
}
