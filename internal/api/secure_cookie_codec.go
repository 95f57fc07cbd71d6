package api

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	secureCookieVersion = "v1"
	secureCookieLabel   = "endotrack.secure-cookie.v1"
)

var errInvalidSecureCookieValue = errors.New("invalid secure cookie value")

// secureCookieCodec seals short-lived JSON payloads into cookie values with
// AES-GCM. The purpose is bound as additional data, so a value sealed for one
// cookie cannot be replayed into another.
type secureCookieCodec struct {
	aead cipher.AEAD
}

func newSecureCookieCodec(secretKey []byte) (*secureCookieCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("secure cookie secret key is required")
	}

	material := append([]byte(secureCookieLabel), secretKey...)
	derivedKey := sha256.Sum256(material)
	block, err := aes.NewCipher(derivedKey[:])
	if err != nil {
		return nil, fmt.Errorf("init secure cookie cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init secure cookie aead: %w", err)
	}
	return &secureCookieCodec{aead: aead}, nil
}

func (codec *secureCookieCodec) sealJSON(purpose string, value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode secure cookie payload: %w", err)
	}

	nonce := make([]byte, codec.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate secure cookie nonce: %w", err)
	}

	sealed := codec.aead.Seal(nonce, nonce, plaintext, []byte(purpose))
	return secureCookieVersion + "." + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (codec *secureCookieCodec) openJSON(purpose string, rawValue string, target any) error {
	version, encoded, found := strings.Cut(strings.TrimSpace(rawValue), ".")
	if !found || version != secureCookieVersion || encoded == "" {
		return errInvalidSecureCookieValue
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return errInvalidSecureCookieValue
	}
	nonceSize := codec.aead.NonceSize()
	if len(payload) <= nonceSize {
		return errInvalidSecureCookieValue
	}

	plaintext, err := codec.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], []byte(purpose))
	if err != nil {
		return errInvalidSecureCookieValue
	}
	if err := json.Unmarshal(plaintext, target); err != nil {
		return errInvalidSecureCookieValue
	}
	return nil
}
