package security

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

const (
	passwordUpper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	passwordLower  = "abcdefghijkmnopqrstuvwxyz"
	passwordDigits = "23456789"

	passwordAlphabet           = passwordUpper + passwordLower + passwordDigits
	minTemporaryPasswordLength = 8
)

// TemporaryPassword returns a random password of at least 8 characters that
// contains an upper-case letter, a lower-case letter and a digit. Look-alike
// characters are left out so it can be read aloud or copied by hand.
func TemporaryPassword(length int) (string, error) {
	return temporaryPasswordFrom(rand.Reader, length)
}

func temporaryPasswordFrom(source io.Reader, length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}

	for {
		candidate, err := samplePasswordCharacters(source, length)
		if err != nil {
			return "", err
		}
		if hasEveryPasswordClass(candidate) {
			return candidate, nil
		}
	}
}

// samplePasswordCharacters draws each character uniformly from the password
// alphabet. rand.Int rejects out-of-range draws, so no index is favoured.
func samplePasswordCharacters(source io.Reader, length int) (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(source, limit)
		if err != nil {
			return "", err
		}
		value[index] = passwordAlphabet[position.Int64()]
	}
	return string(value), nil
}

func hasEveryPasswordClass(candidate string) bool {
	return strings.ContainsAny(candidate, passwordUpper) &&
		strings.ContainsAny(candidate, passwordLower) &&
		strings.ContainsAny(candidate, passwordDigits)
}
