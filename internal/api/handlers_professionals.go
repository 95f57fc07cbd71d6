package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfessionals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	professionals, err := handler.professionals.List(c.UserContext(), user.ID, c.Query("specialty"), c.Query("q"), queryBool(c, "favorites"))
	if err != nil {
		return respondError(c, err, "failed to load professionals")
	}
	return c.JSON(professionals)
}

func (handler *Handler) GetProfessional(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to load professional")
	}
	professional, err := handler.professionals.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to load professional")
	}
	return c.JSON(professional)
}

func (handler *Handler) ToggleFavoriteProfessional(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to update favorites")
	}
	favorite, err := handler.professionals.ToggleFavorite(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to update favorites")
	}
	return c.JSON(fiber.Map{"favorite": favorite})
}

func (handler *Handler) GetAppointmentSlots(c *fiber.Ctx) error {
	return c.JSON(handler.professionals.Slots())
}
