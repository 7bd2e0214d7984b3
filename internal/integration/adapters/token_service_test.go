package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeTokenRepository stores refresh tokens in memory and enforces the
// same uniqueness the database schema does on the token column.
type fakeTokenRepository struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	if _, exists := r.saved[token]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint on token")
	}
	r.saved[token] = userID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, exists := r.saved[token]
	return exists && !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range r.saved {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func TestTokenServiceGenerateTokenPair(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	email := "thandi@example.com"

	t.Run("issues a valid access and refresh token", func(t *testing.T) {
		service := NewTokenService("unit-test-secret", newFakeTokenRepository())

		pair, err := service.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("GenerateTokenPair() error = %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty token pair")
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken() error = %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("access claims user = %s, want %s", claims.UserID, userID)
		}
		if claims.Email != email {
			t.Errorf("access claims email = %s, want %s", claims.Email, email)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("ValidateRefreshToken() error = %v", err)
		}
	})

	t.Run("rejects a refresh token presented as an access token", func(t *testing.T) {
		service := NewTokenService("unit-test-secret", newFakeTokenRepository())

		pair, err := service.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("GenerateTokenPair() error = %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected error validating refresh token as access token")
		}
	})

	t.Run("back-to-back pairs within the same second stay unique", func(t *testing.T) {
		repo := newFakeTokenRepository()
		service := NewTokenService("unit-test-secret", repo)

		first, err := service.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("first GenerateTokenPair() error = %v", err)
		}
		second, err := service.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("second GenerateTokenPair() error = %v", err)
		}

		if first.RefreshToken == second.RefreshToken {
			t.Error("expected distinct refresh tokens from consecutive pairs")
		}
		if first.AccessToken == second.AccessToken {
			t.Error("expected distinct access tokens from consecutive pairs")
		}
		if len(repo.saved) != 2 {
			t.Errorf("saved refresh tokens = %d, want 2", len(repo.saved))
		}
	})

	t.Run("invalidated refresh token is no longer valid", func(t *testing.T) {
		service := NewTokenService("unit-test-secret", newFakeTokenRepository())

		pair, err := service.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("GenerateTokenPair() error = %v", err)
		}
		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("InvalidateRefreshToken() error = %v", err)
		}

		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("IsRefreshTokenValid() error = %v", err)
		}
		if valid {
			t.Error("expected invalidated token to be reported invalid")
		}
	})
}
