package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrAuthPasswordMismatch   = errors.New("auth password mismatch")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// ValidateRegistrationInput checks the sign-up form before any lookup.
func ValidateRegistrationInput(emailRaw string, password string, confirmPassword string) (string, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return "", err
	}
	if password != strings.TrimSpace(confirmPassword) {
		return "", ErrAuthPasswordMismatch
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}
	return email, nil
}
