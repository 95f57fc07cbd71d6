package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest() (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	service := NewAuthService(repo)
	service.hashCost = bcrypt.MinCost
	return service, repo
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	service, _ := newAuthServiceForTest()
	ctx := context.Background()

	user, err := service.Register(ctx, " Paciente@Endo.Local ", "StrongPass1", "StrongPass1", " Maria ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "paciente@endo.local" || user.Name != "Maria" {
		t.Fatalf("unexpected registered user: %#v", user)
	}

	if _, err := service.Register(ctx, "PACIENTE@endo.local", "StrongPass1", "StrongPass1", ""); !errors.Is(err, ErrAuthEmailExists) {
		t.Fatalf("expected ErrAuthEmailExists, got %v", err)
	}

	authenticated, err := service.Authenticate(ctx, "paciente@endo.local", "StrongPass1")
	if err != nil || authenticated.ID != user.ID {
		t.Fatalf("expected authentication to succeed, got %#v err=%v", authenticated, err)
	}

	if _, err := service.Authenticate(ctx, "paciente@endo.local", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := service.Authenticate(ctx, "nobody@endo.local", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for unknown email, got %v", err)
	}
}

func TestAuthServiceRegisterWrapsStoreFailure(t *testing.T) {
	service, repo := newAuthServiceForTest()
	repo.createErr = errStubStore

	_, err := service.Register(context.Background(), "a@endo.local", "StrongPass1", "StrongPass1", "")
	if !errors.Is(err, ErrRegisterFailed) {
		t.Fatalf("expected ErrRegisterFailed, got %v", err)
	}
}

func TestAuthServiceChangePassword(t *testing.T) {
	service, repo := newAuthServiceForTest()
	ctx := context.Background()

	user, err := service.Register(ctx, "a@endo.local", "StrongPass1", "StrongPass1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := service.ChangePassword(ctx, user.ID, "StrongPass1", "NewerPass2", "NewerPass2"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := service.Authenticate(ctx, "a@endo.local", "NewerPass2"); err != nil {
		t.Fatalf("expected new password to authenticate: %v", err)
	}
	if repo.users[user.ID].MustChangePassword {
		t.Fatal("expected must_change_password to be cleared")
	}

	if err := service.ChangePassword(ctx, user.ID, "StrongPass1", "Another3Pass", "Another3Pass"); !errors.Is(err, ErrInvalidCurrentPassword) {
		t.Fatalf("expected ErrInvalidCurrentPassword, got %v", err)
	}
}

func TestAuthServiceResetPassword(t *testing.T) {
	service, repo := newAuthServiceForTest()
	ctx := context.Background()

	user, err := service.Register(ctx, "a@endo.local", "StrongPass1", "StrongPass1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	temporary, err := service.ResetPassword(ctx, "A@Endo.Local")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if err := ValidatePasswordStrength(temporary); err != nil {
		t.Fatalf("expected temporary password to satisfy policy, got %v", err)
	}
	if !repo.users[user.ID].MustChangePassword {
		t.Fatal("expected must_change_password to be set")
	}
	if _, err := service.Authenticate(ctx, "a@endo.local", temporary); err != nil {
		t.Fatalf("expected temporary password to authenticate: %v", err)
	}

	if _, err := service.ResetPassword(ctx, "missing@endo.local"); !errors.Is(err, ErrAuthUserNotFound) {
		t.Fatalf("expected ErrAuthUserNotFound, got %v", err)
	}
}

func TestAuthServiceUpsertOIDCUser(t *testing.T) {
	service, _ := newAuthServiceForTest()
	ctx := context.Background()

	existing, err := service.Register(ctx, "a@endo.local", "StrongPass1", "StrongPass1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	linked, err := service.UpsertOIDCUser(ctx, "sub-1", "A@endo.local", true, "Ana")
	if err != nil {
		t.Fatalf("link existing account: %v", err)
	}
	if linked.ID != existing.ID || linked.OIDCSubject == nil || *linked.OIDCSubject != "sub-1" {
		t.Fatalf("expected existing account to be linked, got %#v", linked)
	}

	again, err := service.UpsertOIDCUser(ctx, "sub-1", "", false, "")
	if err != nil || again.ID != existing.ID {
		t.Fatalf("expected known subject to resolve without email, got %#v err=%v", again, err)
	}

	created, err := service.UpsertOIDCUser(ctx, "sub-2", "b@endo.local", true, "Bia")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if created.ID == existing.ID || created.Email != "b@endo.local" {
		t.Fatalf("expected a new account, got %#v", created)
	}

	if _, err := service.UpsertOIDCUser(ctx, "sub-3", "c@endo.local", false, ""); !errors.Is(err, ErrOIDCIdentityInvalid) {
		t.Fatalf("expected unverified email to be rejected, got %v", err)
	}
}
