package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	options, err := parseListOptions(c)
	if err != nil {
		return respondError(c, err, "failed to load symptoms")
	}
	symptoms, err := handler.symptoms.List(c.UserContext(), user.ID, options)
	if err != nil {
		return respondError(c, err, "failed to load symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) CreateSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.SymptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	created, err := handler.symptoms.Log(c.UserContext(), user.ID, input, handler.now())
	if err != nil {
		return respondError(c, err, "failed to save symptoms")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to delete symptom")
	}
	if err := handler.symptoms.Delete(c.UserContext(), user.ID, id); err != nil {
		return respondError(c, err, "failed to delete symptom")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GetSymptomTrends summarizes the symptoms inside the optional date range.
func (handler *Handler) GetSymptomTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, _, err := services.ParseOptionalDayRange(c.Query("from"), "")
	if err != nil {
		return respondError(c, err, "failed to load trends")
	}
	summary, err := handler.symptoms.Summary(c.UserContext(), user.ID, from)
	if err != nil {
		return respondError(c, err, "failed to load trends")
	}
	return c.JSON(summary)
}

func (handler *Handler) GetCommonSymptoms(c *fiber.Ctx) error {
	return c.JSON(handler.symptoms.CommonSymptoms())
}
