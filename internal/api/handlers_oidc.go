package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	oidcStatePurpose = "oidc-state"
	oidcStateTTL     = 5 * time.Minute
)

type OIDCConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// PostLoginPath is where the browser lands after a successful sign-in.
	PostLoginPath string
}

func (config OIDCConfig) Enabled() bool {
	return strings.TrimSpace(config.Issuer) != "" && strings.TrimSpace(config.ClientID) != ""
}

type OIDCProvider struct {
	oauth2        oauth2.Config
	verifier      *oidc.IDTokenVerifier
	postLoginPath string
}

type oidcStatePayload struct {
	State     string `json:"state"`
	Nonce     string `json:"nonce"`
	ExpiresAt int64  `json:"exp"`
}

type oidcClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// NewOIDCProvider runs discovery against the issuer. It needs network access
// to the identity provider at startup.
func NewOIDCProvider(ctx context.Context, config OIDCConfig) (*OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, strings.TrimSpace(config.Issuer))
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	postLoginPath := strings.TrimSpace(config.PostLoginPath)
	if postLoginPath == "" || !strings.HasPrefix(postLoginPath, "/") || strings.HasPrefix(postLoginPath, "//") {
		postLoginPath = "/"
	}

	return &OIDCProvider{
		oauth2: oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier:      provider.Verifier(&oidc.Config{ClientID: config.ClientID}),
		postLoginPath: postLoginPath,
	}, nil
}

func (handler *Handler) OIDCLogin(c *fiber.Ctx) error {
	if handler.oidc == nil {
		return apiError(c, fiber.StatusNotFound, "sso disabled")
	}

	payload := oidcStatePayload{
		State:     uuid.NewString(),
		Nonce:     uuid.NewString(),
		ExpiresAt: time.Now().Add(oidcStateTTL).Unix(),
	}
	sealed, err := handler.cookieCodec.sealJSON(oidcStatePurpose, payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start sign-in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     oidcStateCookieName,
		Value:    sealed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		MaxAge:   int(oidcStateTTL.Seconds()),
	})
	return c.Redirect(handler.oidc.oauth2.AuthCodeURL(payload.State, oidc.Nonce(payload.Nonce)), fiber.StatusFound)
}

func (handler *Handler) OIDCCallback(c *fiber.Ctx) error {
	if handler.oidc == nil {
		return apiError(c, fiber.StatusNotFound, "sso disabled")
	}

	payload := oidcStatePayload{}
	if err := handler.cookieCodec.openJSON(oidcStatePurpose, c.Cookies(oidcStateCookieName), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid state")
	}
	handler.clearOIDCStateCookie(c)
	if payload.State == "" || c.Query("state") != payload.State || time.Now().Unix() > payload.ExpiresAt {
		return apiError(c, fiber.StatusBadRequest, "invalid state")
	}

	claims, err := handler.exchangeOIDCCode(c.UserContext(), c.Query("code"), payload.Nonce)
	if err != nil {
		log.Printf("api: oidc callback: %v", err)
		return apiError(c, fiber.StatusUnauthorized, "sign-in failed")
	}

	user, err := handler.auth.UpsertOIDCUser(c.UserContext(), claims.Subject, claims.Email, claims.EmailVerified, claims.Name)
	if err != nil {
		return respondError(c, err, "sign-in failed")
	}
	if _, err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Redirect(handler.oidc.postLoginPath, fiber.StatusFound)
}

func (handler *Handler) exchangeOIDCCode(ctx context.Context, code string, nonce string) (oidcClaims, error) {
	if strings.TrimSpace(code) == "" {
		return oidcClaims{}, errors.New("missing code")
	}

	token, err := handler.oidc.oauth2.Exchange(ctx, code)
	if err != nil {
		return oidcClaims{}, fmt.Errorf("exchange code: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return oidcClaims{}, errors.New("no id_token in token response")
	}

	idToken, err := handler.oidc.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return oidcClaims{}, fmt.Errorf("verify id_token: %w", err)
	}
	if idToken.Nonce != nonce {
		return oidcClaims{}, errors.New("nonce mismatch")
	}

	claims := oidcClaims{}
	if err := idToken.Claims(&claims); err != nil {
		return oidcClaims{}, fmt.Errorf("parse claims: %w", err)
	}
	return claims, nil
}

func (handler *Handler) clearOIDCStateCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     oidcStateCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
