package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "  Paciente@Endo.Local ", want: "paciente@endo.local"},
		{raw: "not-an-email", want: ""},
		{raw: "   ", want: ""},
	}
	for _, testCase := range tests {
		if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
			t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestValidateRegistrationInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "valid", email: "a@endo.local", password: "StrongPass1", confirm: "StrongPass1"},
		{name: "missing email", email: "", password: "StrongPass1", confirm: "StrongPass1", wantErr: ErrAuthCredentialsInvalid},
		{name: "mismatch", email: "a@endo.local", password: "StrongPass1", confirm: "StrongPass2", wantErr: ErrAuthPasswordMismatch},
		{name: "weak", email: "a@endo.local", password: "weakpass", confirm: "weakpass", wantErr: ErrWeakPassword},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			email, err := ValidateRegistrationInput(testCase.email, testCase.password, testCase.confirm)
			if testCase.wantErr == nil {
				if err != nil || email != "a@endo.local" {
					t.Fatalf("expected valid input, got email=%q err=%v", email, err)
				}
				return
			}
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}
