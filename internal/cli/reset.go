package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/services"
)

// RunResetPasswordCommand replaces the password of the account with email by
// a temporary one and prints it. The user must change it on next sign-in.
func RunResetPasswordCommand(ctx context.Context, config db.Config, email string, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if normalizedEmail == "" {
		return fmt.Errorf("invalid email address: %q", email)
	}

	database, err := db.Open(config)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	repos := db.NewRepositories(database)
	temporaryPassword, err := services.NewAuthService(repos.Users).ResetPassword(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, services.ErrAuthUserNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}
