package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	list, err := handler.notifications.List(c.UserContext(), user.ID, queryBool(c, "unread"))
	if err != nil {
		return respondError(c, err, "failed to load notifications")
	}
	return c.JSON(list)
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to update notification")
	}
	if err := handler.notifications.MarkRead(c.UserContext(), user.ID, id); err != nil {
		return respondError(c, err, "failed to update notification")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	updated, err := handler.notifications.MarkAllRead(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err, "failed to update notifications")
	}
	return c.JSON(fiber.Map{"ok": true, "updated": updated})
}
