package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidatePasswordStrength_RejectsWeakPasswords(t *testing.T) {
	testCases := []string{
		"Short1",
		"alllowercase1",
		"ALLUPPERCASE1",
		"NoDigitsHere",
	}

	for _, password := range testCases {
		if err := ValidatePasswordStrength(password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_AcceptsStrongPassword(t *testing.T) {
	if err := ValidatePasswordStrength("StrongPass1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidatePasswordChange(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("CurrentPass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
	}{
		{name: "valid", current: "CurrentPass1", next: "BrandNewPass2", confirm: "BrandNewPass2"},
		{name: "empty field", current: "CurrentPass1", next: "", confirm: "", wantErr: ErrPasswordChangeInvalidInput},
		{name: "mismatch", current: "CurrentPass1", next: "BrandNewPass2", confirm: "BrandNewPass3", wantErr: ErrPasswordChangeMismatch},
		{name: "wrong current", current: "WrongPass1", next: "BrandNewPass2", confirm: "BrandNewPass2", wantErr: ErrInvalidCurrentPassword},
		{name: "same password", current: "CurrentPass1", next: "CurrentPass1", confirm: "CurrentPass1", wantErr: ErrNewPasswordMustDiffer},
		{name: "weak", current: "CurrentPass1", next: "weakpass", confirm: "weakpass", wantErr: ErrWeakPassword},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidatePasswordChange(string(hash), testCase.current, testCase.next, testCase.confirm)
			if testCase.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}
