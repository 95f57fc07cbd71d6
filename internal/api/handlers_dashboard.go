package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dashboard, err := handler.dashboard.Build(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return respondError(c, err, "failed to load dashboard")
	}
	return c.JSON(dashboard)
}

// GetActivity returns the full merged history inside the optional range.
func (handler *Handler) GetActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := services.ParseOptionalDayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err, "failed to load activity")
	}
	items, err := handler.activity.Feed(c.UserContext(), user.ID, from, to, 0)
	if err != nil {
		return respondError(c, err, "failed to load activity")
	}
	return c.JSON(items)
}
