package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/utils"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	utils.BcryptCost = bcrypt.MinCost
	users := repositories.NewMemoryUserRepository()
	svc := NewUserService(users).(*userService)
	later := t0.Add(time.Hour)
	svc.now = (&fakeClock{now: later}).Now

	auth := NewAuthService(users)
	alice, err := auth.Register(ctx, RegisterInput{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "old"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name    string
		input   UpdateProfileInput
		wantErr error
	}{
		{"nothing to update", UpdateProfileInput{UserID: alice.ID, RequesterID: alice.ID}, ErrRequiredFieldMissing},
		{"someone else", UpdateProfileInput{UserID: alice.ID, RequesterID: "mallory", Name: strPtr("M")}, ErrInsufficientPermissions},
		{"unknown user", UpdateProfileInput{UserID: "ghost", RequesterID: "ghost", Name: strPtr("G")}, ErrUserNotFound},
		{"blank name", UpdateProfileInput{UserID: alice.ID, RequesterID: alice.ID, Name: strPtr(" ")}, ErrRequiredFieldMissing},
		{"bad email", UpdateProfileInput{UserID: alice.ID, RequesterID: alice.ID, Email: strPtr("nope")}, ErrInvalidEmailFormat},
		{"empty password", UpdateProfileInput{UserID: alice.ID, RequesterID: alice.ID, Password: strPtr("")}, ErrRequiredFieldMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}

	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID:      alice.ID,
		RequesterID: alice.ID,
		Name:        strPtr("Alice Liddell"),
		Password:    strPtr("new"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Alice Liddell" || updated.Email != "alice@example.com" {
		t.Errorf("profile: got %+v", updated)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Errorf("updated_at: got %v, want %v", updated.UpdatedAt, later)
	}
	if _, err := auth.Login(ctx, LoginInput{Username: "alice", Password: "new"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := auth.Login(ctx, LoginInput{Username: "alice", Password: "old"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login with old password: got %v, want %v", err, ErrInvalidCredentials)
	}
}
