// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotPurger drops every cached collection snapshot belonging to one user.
// Used on logout so no collection state survives the session.
type SnapshotPurger interface {
	// PurgeUser removes all of the user's snapshots across collections.
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}
