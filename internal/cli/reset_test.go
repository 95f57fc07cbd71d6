package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestRunResetPasswordCommand(t *testing.T) {
	config := db.Config{Driver: db.DriverSQLite, DSN: filepath.Join(t.TempDir(), "endotrack-cli.db")}
	ctx := context.Background()

	database, err := db.Open(config)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repos := db.NewRepositories(database)
	if _, err := services.NewAuthService(repos.Users).Register(ctx, "Reset@Endo.Local", "StrongPass1", "StrongPass1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	sqlDB, _ := database.DB()
	_ = sqlDB.Close()

	var output bytes.Buffer
	if err := RunResetPasswordCommand(ctx, config, " reset@endo.local ", &output); err != nil {
		t.Fatalf("reset command: %v", err)
	}

	var temporary string
	for _, line := range strings.Split(output.String(), "\n") {
		if value, found := strings.CutPrefix(line, "Temporary password: "); found {
			temporary = value
		}
	}
	if len(temporary) != 12 {
		t.Fatalf("expected a 12 character temporary password in output, got %q", output.String())
	}

	database, err = db.Open(config)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer func() {
		sqlDB, _ := database.DB()
		_ = sqlDB.Close()
	}()
	user, err := db.NewRepositories(database).Users.FindByNormalizedEmail(ctx, "reset@endo.local")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !user.MustChangePassword {
		t.Fatal("expected must_change_password after reset")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(temporary)) != nil {
		t.Fatal("expected stored hash to match the printed temporary password")
	}
}

func TestRunResetPasswordCommandRejectsBadInput(t *testing.T) {
	config := db.Config{Driver: db.DriverSQLite, DSN: filepath.Join(t.TempDir(), "endotrack-cli.db")}

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "empty", email: "  ", want: "email is required"},
		{name: "malformed", email: "not-an-email", want: "invalid email address"},
		{name: "unknown", email: "ghost@endo.local", want: "not found"},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := RunResetPasswordCommand(context.Background(), config, testCase.email, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), testCase.want) {
				t.Fatalf("expected error containing %q, got %v", testCase.want, err)
			}
		})
	}
}
