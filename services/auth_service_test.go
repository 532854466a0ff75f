package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/utils"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, repositories.UserRepository) {
	t.Helper()
	utils.BcryptCost = bcrypt.MinCost
	users := repositories.NewMemoryUserRepository()
	svc := NewAuthService(users).(*authService)
	svc.now = (&fakeClock{now: t0}).Now
	return svc, users
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(ctx, RegisterInput{Username: " alice ", Name: "Alice", Email: "alice@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Username != "alice" || !user.IsActive || user.ID == "" {
		t.Errorf("registered user: got %+v", user)
	}
	if user.PasswordHash == "secret" || !utils.CheckPasswordHash("secret", user.PasswordHash) {
		t.Error("password must be stored hashed")
	}
	if !user.CreatedAt.Equal(t0) {
		t.Errorf("created_at: got %v, want %v", user.CreatedAt, t0)
	}

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{"missing password", RegisterInput{Username: "bob", Name: "Bob", Email: "bob@example.com"}, ErrRequiredFieldMissing},
		{"blank name", RegisterInput{Username: "bob", Name: "  ", Email: "bob@example.com", Password: "x"}, ErrRequiredFieldMissing},
		{"bad email", RegisterInput{Username: "bob", Name: "Bob", Email: "bob-at-example", Password: "x"}, ErrInvalidEmailFormat},
		{"taken username", RegisterInput{Username: "alice", Name: "Other", Email: "other@example.com", Password: "x"}, ErrUsernameAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestAuthService(t)

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "secret"}); err != nil {
		t.Fatalf("Register alice: %v", err)
	}
	hash, err := utils.HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	dormant := &models.User{ID: "dormant", Username: "dormant", Name: "Dormant", Email: "dormant@example.com", PasswordHash: hash, IsActive: false}
	if err := users.Create(ctx, dormant); err != nil {
		t.Fatalf("create dormant user: %v", err)
	}

	tests := []struct {
		name    string
		input   LoginInput
		wantErr error
	}{
		{"ok", LoginInput{Username: "alice", Password: "secret"}, nil},
		{"wrong password", LoginInput{Username: "alice", Password: "nope"}, ErrInvalidCredentials},
		{"unknown user", LoginInput{Username: "carol", Password: "secret"}, ErrInvalidCredentials},
		{"inactive", LoginInput{Username: "dormant", Password: "secret"}, ErrUserInactive},
		{"inactive with wrong password", LoginInput{Username: "dormant", Password: "nope"}, ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: got %v, want %v", err, tt.wantErr)
			}
			if err == nil && user.Username != tt.input.Username {
				t.Errorf("username: got %q, want %q", user.Username, tt.input.Username)
			}
		})
	}
}
