// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// nationalIDEmailDomain is the synthetic domain users who sign in with an ID
// number are registered under.
const nationalIDEmailDomain = "vault.app"

// LoginUserInput represents the input for user login. Identifier is either an
// email address or a 13-digit ID number.
type LoginUserInput struct {
	Identifier string
	Password   string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := resolveIdentifier(input.Identifier)

	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Return generic error to prevent account enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid credentials",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid credentials",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// resolveIdentifier maps a 13-digit ID number onto its synthetic email
// address. Identifiers containing '@' are treated as emails as-is.
func resolveIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if nationalIDRegex.MatchString(identifier) {
		return identifier + "@" + nationalIDEmailDomain
	}
	return identifier
}
