// Package cache implements the per-user collection snapshot cache on Redis.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type record struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func setup(t *testing.T) *redis.Client {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestCollectionCache_FillAndGet(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	c := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	userID := uuid.New()

	t.Run("miss before any fill", func(t *testing.T) {
		_, ok, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected a cache miss")
		}
	})

	t.Run("fill against the current token stores the snapshot", func(t *testing.T) {
		token, err := c.Token(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items := []record{{ID: uuid.New(), Name: "first"}}
		stored, err := c.Fill(ctx, userID, items, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored {
			t.Fatal("expected fill to store the snapshot")
		}

		got, ok, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected a cache hit")
		}
		if len(got) != 1 || got[0].Name != "first" {
			t.Errorf("unexpected snapshot: %+v", got)
		}
	})
}

func TestCollectionCache_StaleFillIsDiscarded(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	c := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	userID := uuid.New()

	token, err := c.Token(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A mutation arrives between the token read and the fill.
	if err := c.Purge(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := c.Fill(ctx, userID, []record{{ID: uuid.New(), Name: "stale"}}, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored {
		t.Error("expected the stale fill to be discarded")
	}

	if _, ok, _ := c.Get(ctx, userID); ok {
		t.Error("expected no snapshot after a discarded fill")
	}
}

func TestCollectionCache_Prepend(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	c := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	userID := uuid.New()

	t.Run("prepend puts the new record first", func(t *testing.T) {
		token, _ := c.Token(ctx, userID)
		older := record{ID: uuid.New(), Name: "older"}
		if _, err := c.Fill(ctx, userID, []record{older}, token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newest := record{ID: uuid.New(), Name: "newest"}
		if err := c.Prepend(ctx, userID, newest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok, err := c.Get(ctx, userID)
		if err != nil || !ok {
			t.Fatalf("expected a cache hit, err: %v", err)
		}
		if len(got) != 2 || got[0].Name != "newest" || got[1].Name != "older" {
			t.Errorf("unexpected snapshot order: %+v", got)
		}
	})

	t.Run("prepend without a snapshot only moves the token", func(t *testing.T) {
		other := uuid.New()
		before, _ := c.Token(ctx, other)

		if err := c.Prepend(ctx, other, record{ID: uuid.New(), Name: "solo"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after, _ := c.Token(ctx, other)
		if after <= before {
			t.Errorf("expected token to move, before %d after %d", before, after)
		}
		if _, ok, _ := c.Get(ctx, other); ok {
			t.Error("expected no snapshot to appear")
		}
	})
}

func TestCollectionCache_ReplaceByID(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	c := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	userID := uuid.New()

	first := record{ID: uuid.New(), Name: "first"}
	second := record{ID: uuid.New(), Name: "second"}

	token, _ := c.Token(ctx, userID)
	if _, err := c.Fill(ctx, userID, []record{first, second}, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("replaces in place without reordering", func(t *testing.T) {
		updated := record{ID: second.ID, Name: "renamed"}
		if err := c.ReplaceByID(ctx, userID, updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok, err := c.Get(ctx, userID)
		if err != nil || !ok {
			t.Fatalf("expected a cache hit, err: %v", err)
		}
		if got[0].Name != "first" || got[1].Name != "renamed" {
			t.Errorf("unexpected snapshot: %+v", got)
		}
	})

	t.Run("unknown record drops the snapshot", func(t *testing.T) {
		if err := c.ReplaceByID(ctx, userID, record{ID: uuid.New(), Name: "stranger"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, ok, _ := c.Get(ctx, userID); ok {
			t.Error("expected the snapshot to be dropped")
		}
	})
}

func TestCollectionCache_Purge(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	c := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	userID := uuid.New()

	token, _ := c.Token(ctx, userID)
	if _, err := c.Fill(ctx, userID, []record{{ID: uuid.New(), Name: "gone"}}, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Purge(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := c.Get(ctx, userID); ok {
		t.Error("expected a cache miss after purge")
	}

	after, _ := c.Token(ctx, userID)
	if after == 0 {
		t.Error("expected the token to survive the purge")
	}
}

func TestSnapshotPurger_PurgeUser(t *testing.T) {
	ctx := context.Background()
	client := setup(t)
	userID := uuid.New()
	otherID := uuid.New()

	records := NewCollectionCache(client, "records", time.Minute, func(r record) uuid.UUID { return r.ID })
	items := NewCollectionCache(client, "items", time.Minute, func(r record) uuid.UUID { return r.ID })

	for _, c := range []struct {
		cache interface {
			Token(context.Context, uuid.UUID) (int64, error)
			Fill(context.Context, uuid.UUID, []record, int64) (bool, error)
		}
		user uuid.UUID
	}{
		{records, userID},
		{items, userID},
		{records, otherID},
	} {
		token, _ := c.cache.Token(ctx, c.user)
		if _, err := c.cache.Fill(ctx, c.user, []record{{ID: uuid.New()}}, token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	purger := NewSnapshotPurger(client)
	if err := purger.PurgeUser(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := records.Get(ctx, userID); ok {
		t.Error("expected the user's records snapshot to be gone")
	}
	if _, ok, _ := items.Get(ctx, userID); ok {
		t.Error("expected the user's items snapshot to be gone")
	}
	if _, ok, _ := records.Get(ctx, otherID); !ok {
		t.Error("expected the other user's snapshot to survive")
	}

	token, err := records.Token(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != 0 {
		t.Errorf("expected the version token to reset, got %d", token)
	}
}
