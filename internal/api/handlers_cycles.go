package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	options, err := parseListOptions(c)
	if err != nil {
		return respondError(c, err, "failed to load cycles")
	}
	cycles, err := handler.cycles.List(c.UserContext(), user.ID, options)
	if err != nil {
		return respondError(c, err, "failed to load cycles")
	}
	return c.JSON(cycles)
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.CycleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.cycles.Log(c.UserContext(), user.ID, input, handler.now())
	if err != nil {
		return respondError(c, err, "failed to save cycle entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to delete cycle entry")
	}
	if err := handler.cycles.Delete(c.UserContext(), user.ID, id); err != nil {
		return respondError(c, err, "failed to delete cycle entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetCycleStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.cycles.Overview(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return respondError(c, err, "failed to load cycle stats")
	}
	return c.JSON(overview)
}
