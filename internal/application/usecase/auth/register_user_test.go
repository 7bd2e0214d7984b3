// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vault-finance/backend/internal/application/adapter"
	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing; strength check mirrors the
// production minimum length.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errors.New("password too short")
	}
	return nil
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct {
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + userID.String(),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an auth error, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepo) {
		repo := newFakeUserRepo()
		return NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService()), repo
	}

	t.Run("registers a valid user and issues tokens", func(t *testing.T) {
		uc, repo := newUseCase()

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:      "thandi@example.com",
			NationalID: "9001015009087",
			Password:   "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected tokens to be issued")
		}
		if output.User.PasswordHash != "hashed:secret123" {
			t.Errorf("expected hashed password to be stored, got %q", output.User.PasswordHash)
		}
		if _, ok := repo.byEmail["thandi@example.com"]; !ok {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "thandi@example.com"})
		if code := authCode(t, err); code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingFields, code)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:      "not-an-email",
			NationalID: "9001015009087",
			Password:   "secret123",
		})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEmail, code)
		}
	})

	t.Run("rejects an ID number that is not 13 digits", func(t *testing.T) {
		uc, _ := newUseCase()

		for _, id := range []string{"12345", "90010150090871", "90010150090a7"} {
			_, err := uc.Execute(ctx, RegisterUserInput{
				Email:      "thandi@example.com",
				NationalID: id,
				Password:   "secret123",
			})
			if code := authCode(t, err); code != domainerror.ErrCodeInvalidNationalID {
				t.Errorf("id %q: expected code %s, got %s", id, domainerror.ErrCodeInvalidNationalID, code)
			}
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:      "thandi@example.com",
			NationalID: "9001015009087",
			Password:   "short",
		})
		if code := authCode(t, err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, code)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.byEmail["thandi@example.com"] = entity.NewUser("thandi@example.com", "9001015009087", "hash")

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:      "thandi@example.com",
			NationalID: "9001015009087",
			Password:   "secret123",
		})
		if code := authCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func() (*LoginUserUseCase, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("9001015009087@vault.app", "9001015009087", "hashed:secret123")
		repo.byEmail[user.Email] = user
		return NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService()), user
	}

	t.Run("an ID number maps onto its synthetic email", func(t *testing.T) {
		uc, user := seed()

		output, err := uc.Execute(ctx, LoginUserInput{Identifier: "9001015009087", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != user.ID {
			t.Error("expected the seeded user to be logged in")
		}
	})

	t.Run("an email identifier is used as-is", func(t *testing.T) {
		uc, _ := seed()

		if _, err := uc.Execute(ctx, LoginUserInput{Identifier: "9001015009087@vault.app", Password: "secret123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user yields the generic credentials error", func(t *testing.T) {
		uc, _ := seed()

		_, err := uc.Execute(ctx, LoginUserInput{Identifier: "nobody@example.com", Password: "secret123"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("wrong password yields the same generic error", func(t *testing.T) {
		uc, _ := seed()

		_, err := uc.Execute(ctx, LoginUserInput{Identifier: "9001015009087", Password: "wrong"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ID number", "9001015009087", "9001015009087@vault.app"},
		{"email passes through", "user@example.com", "user@example.com"},
		{"whitespace is trimmed", "  9001015009087 ", "9001015009087@vault.app"},
		{"short digit run passes through", "12345", "12345"},
		{"non-digit identifier passes through", "not-an-id", "not-an-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveIdentifier(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
