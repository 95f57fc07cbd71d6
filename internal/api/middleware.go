package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/models"
)

const (
	authCookieName      = "endotrack_auth"
	oidcStateCookieName = "endotrack_oidc_state"
	contextUserKey      = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}
