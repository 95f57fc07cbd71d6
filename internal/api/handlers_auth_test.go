package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{"/api/dashboard", "/api/symptoms", "/api/profile", "/api/export/csv", "/api/articles"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			response := doJSON(t, app, http.MethodGet, path, nil, "")
			expectStatus(t, response, http.StatusUnauthorized)
			if message := readAPIError(t, response); message != "unauthorized" {
				t.Fatalf("expected unauthorized error, got %q", message)
			}
		})
	}

	response := doJSON(t, app, http.MethodGet, "/api/dashboard", nil, "not-a-token")
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestRegisterSetsSessionCookieAndRejectsDuplicates(t *testing.T) {
	app, _ := newTestApp(t)

	body := map[string]any{
		"email":            "Nova@Endo.Local",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	}
	response := doJSON(t, app, http.MethodPost, "/api/auth/register", body, "")
	expectStatus(t, response, http.StatusCreated)

	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("expected httpOnly auth cookie, got %#v", cookie)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.AddCookie(&http.Cookie{Name: authCookieName, Value: cookie.Value})
	me, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer me.Body.Close()
	expectStatus(t, me, http.StatusOK)

	user := struct {
		Email string `json:"email"`
	}{}
	decodeJSON(t, me, &user)
	if user.Email != "nova@endo.local" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	duplicate := doJSON(t, app, http.MethodPost, "/api/auth/register", body, "")
	expectStatus(t, duplicate, http.StatusConflict)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			name:    "weak password",
			body:    map[string]any{"email": "a@endo.local", "password": "weak", "confirm_password": "weak"},
			message: "weak password",
		},
		{
			name:    "mismatch",
			body:    map[string]any{"email": "a@endo.local", "password": "StrongPass1", "confirm_password": "StrongPass2"},
			message: "passwords do not match",
		},
		{
			name:    "bad email",
			body:    map[string]any{"email": "not-an-email", "password": "StrongPass1", "confirm_password": "StrongPass1"},
			message: "invalid credentials",
		},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := doJSON(t, app, http.MethodPost, "/api/auth/register", testCase.body, "")
			if response.StatusCode < 400 || response.StatusCode >= 500 {
				t.Fatalf("expected client error, got %d", response.StatusCode)
			}
			if message := readAPIError(t, response); message != testCase.message {
				t.Fatalf("expected %q, got %q", testCase.message, message)
			}
		})
	}
}

func TestLoginRateLimitsRepeatedFailures(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "limite@endo.local")

	wrong := map[string]any{"email": "limite@endo.local", "password": "WrongPass1"}
	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		response := doJSON(t, app, http.MethodPost, "/api/auth/login", wrong, "")
		expectStatus(t, response, http.StatusUnauthorized)
	}

	right := map[string]any{"email": "limite@endo.local", "password": "StrongPass1"}
	response := doJSON(t, app, http.MethodPost, "/api/auth/login", right, "")
	expectStatus(t, response, http.StatusTooManyRequests)
}

func TestChangePasswordFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "troca@endo.local")

	wrongCurrent := doJSON(t, app, http.MethodPost, "/api/auth/change-password", map[string]any{
		"current_password": "WrongPass1",
		"new_password":     "NewStrong2",
		"confirm_password": "NewStrong2",
	}, token)
	expectStatus(t, wrongCurrent, http.StatusUnauthorized)

	changed := doJSON(t, app, http.MethodPost, "/api/auth/change-password", map[string]any{
		"current_password": "StrongPass1",
		"new_password":     "NewStrong2",
		"confirm_password": "NewStrong2",
	}, token)
	expectStatus(t, changed, http.StatusOK)

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{"email": "troca@endo.local", "password": "NewStrong2"}, "")
	expectStatus(t, login, http.StatusOK)
}

func TestAuthConfigAndDisabledOIDC(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/auth/config", nil, "")
	expectStatus(t, response, http.StatusOK)
	config := struct {
		OIDCEnabled bool `json:"oidc_enabled"`
	}{}
	decodeJSON(t, response, &config)
	if config.OIDCEnabled {
		t.Fatal("expected oidc to be disabled without configuration")
	}

	login := doJSON(t, app, http.MethodGet, "/api/auth/oidc/login", nil, "")
	expectStatus(t, login, http.StatusNotFound)
	callback := doJSON(t, app, http.MethodGet, "/api/auth/oidc/callback?state=x&code=y", nil, "")
	expectStatus(t, callback, http.StatusNotFound)
}

func TestDeleteAccountInvalidatesSession(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "remover@endo.local")

	response := doJSON(t, app, http.MethodDelete, "/api/profile", nil, token)
	expectStatus(t, response, http.StatusOK)

	after := doJSON(t, app, http.MethodGet, "/api/profile", nil, token)
	expectStatus(t, after, http.StatusUnauthorized)
}
