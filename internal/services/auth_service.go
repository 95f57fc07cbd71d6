package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/endotrack/internal/models"
	"github.com/terraincognita07/endotrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAuthEmailExists      = errors.New("auth email exists")
	ErrAuthUserNotFound     = errors.New("auth user not found")
	ErrRegisterFailed       = errors.New("register failed")
	ErrPasswordUpdateFailed = errors.New("password update failed")
	ErrOIDCIdentityInvalid  = errors.New("oidc identity invalid")
	ErrOIDCLinkFailed       = errors.New("oidc link failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
	FindByOIDCSubject(ctx context.Context, subject string) (models.User, error)
	FindByID(ctx context.Context, userID uint) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string, mustChangePassword bool) error
	LinkOIDCSubject(ctx context.Context, userID uint, subject string) error
}

type AuthService struct {
	users    AuthUserRepository
	hashCost int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, hashCost: bcrypt.DefaultCost}
}

func (service *AuthService) FindByID(ctx context.Context, userID uint) (models.User, error) {
	user, err := service.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrAuthUserNotFound
	}
	return user, err
}

func (service *AuthService) Register(ctx context.Context, emailRaw string, password string, confirmPassword string, name string) (models.User, error) {
	email, err := ValidateRegistrationInput(emailRaw, password, confirmPassword)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	if exists {
		return models.User{}, ErrAuthEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), service.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	return service.users.FindByID(ctx, user.ID)
}

// Authenticate returns ErrAuthCredentialsInvalid for both an unknown email
// and a wrong password.
func (service *AuthService) Authenticate(ctx context.Context, emailRaw string, password string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword string, newPassword string, confirmPassword string) error {
	user, err := service.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := ValidatePasswordChange(user.PasswordHash, currentPassword, newPassword, confirmPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(newPassword)), service.hashCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	if err := service.users.UpdatePassword(ctx, userID, string(hash), false); err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	return nil
}

// ResetPassword replaces the password of the account with a temporary one the
// user has to change on next sign-in.
func (service *AuthService) ResetPassword(ctx context.Context, emailRaw string) (string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrAuthUserNotFound
	}
	if err != nil {
		return "", err
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), service.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	if err := service.users.UpdatePassword(ctx, user.ID, string(hash), true); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	return temporaryPassword, nil
}

// UpsertOIDCUser resolves the account of an identity provider subject. A
// known subject signs in directly, a verified email links an existing
// account, and anything else creates a new account with an unusable random
// password.
func (service *AuthService) UpsertOIDCUser(ctx context.Context, subject string, emailRaw string, emailVerified bool, name string) (models.User, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return models.User{}, ErrOIDCIdentityInvalid
	}

	user, err := service.users.FindByOIDCSubject(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
	}

	email := NormalizeAuthEmail(emailRaw)
	if email == "" || !emailVerified {
		return models.User{}, ErrOIDCIdentityInvalid
	}

	existing, err := service.users.FindByNormalizedEmail(ctx, email)
	switch {
	case err == nil:
		if existing.OIDCSubject != nil && *existing.OIDCSubject != subject {
			return models.User{}, ErrOIDCIdentityInvalid
		}
		if err := service.users.LinkOIDCSubject(ctx, existing.ID, subject); err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
		}
		return service.users.FindByID(ctx, existing.ID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
	}

	randomPassword, err := security.TemporaryPassword(32)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(randomPassword), service.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
	}

	created := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		OIDCSubject:  &subject,
	}
	if err := service.users.Create(ctx, &created); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrOIDCLinkFailed, err)
	}
	return service.users.FindByID(ctx, created.ID)
}
