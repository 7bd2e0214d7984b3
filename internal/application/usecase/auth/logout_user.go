// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic. Besides revoking the refresh
// token it drops every cached collection snapshot for the user, so nothing
// from the session survives into the next one.
type LogoutUserUseCase struct {
	tokenService   adapter.TokenService
	snapshotPurger adapter.SnapshotPurger
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, snapshotPurger adapter.SnapshotPurger) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService:   tokenService,
		snapshotPurger: snapshotPurger,
	}
}

// Execute performs the user logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	if err := uc.snapshotPurger.PurgeUser(ctx, input.UserID); err != nil {
		// Snapshots expire on their own; logout still succeeds.
		slog.Warn("failed to purge collection snapshots on logout",
			"user_id", input.UserID,
			"error", err,
		)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
