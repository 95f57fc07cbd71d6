package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/models"
	"github.com/terraincognita07/endotrack/internal/services"
)

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Name            string `json:"name" form:"name"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Register(c.UserContext(), input.Email, input.Password, input.ConfirmPassword, input.Name)
	if err != nil {
		return respondError(c, err, "failed to create account")
	}
	return handler.respondSession(c, &user, true, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := handler.now()
	limiterKey := loginLimiterKey(c, input.Email)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.auth.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.fail(limiterKey, now)
		}
		return respondError(c, err, "failed to sign in")
	}
	handler.loginLimiter.reset(limiterKey)

	return handler.respondSession(c, &user, input.RememberMe, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.auth.ChangePassword(c.UserContext(), user.ID, input.CurrentPassword, input.NewPassword, input.ConfirmPassword); err != nil {
		return respondError(c, err, "failed to update password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AuthConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"oidc_enabled":  handler.oidc != nil,
		"password_auth": true,
	})
}

// respondSession issues the session cookie and echoes the token for clients
// that prefer bearer auth.
func (handler *Handler) respondSession(c *fiber.Ctx, user *models.User, rememberMe bool, status int) error {
	token, err := handler.setAuthCookie(c, user, rememberMe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":                   true,
		"token":                token,
		"user":                 user,
		"must_change_password": user.MustChangePassword,
	})
}
