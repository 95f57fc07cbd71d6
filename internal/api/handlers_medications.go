package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

func (handler *Handler) GetMedications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medications, err := handler.medications.List(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return respondError(c, err, "failed to load medications")
	}
	return c.JSON(medications)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	medication, err := handler.medications.Create(c.UserContext(), user.ID, input)
	if err != nil {
		return respondError(c, err, "failed to save medication")
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to save medication")
	}
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	medication, err := handler.medications.Update(c.UserContext(), user.ID, id, input)
	if err != nil {
		return respondError(c, err, "failed to save medication")
	}
	return c.JSON(medication)
}

func (handler *Handler) ToggleMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to update medication")
	}
	medication, err := handler.medications.ToggleActive(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to update medication")
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to delete medication")
	}
	if err := handler.medications.Delete(c.UserContext(), user.ID, id); err != nil {
		return respondError(c, err, "failed to delete medication")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MarkMedicationTaken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to log dose")
	}
	entry, err := handler.medications.MarkTaken(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to log dose")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetUpcomingDoses(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	doses, err := handler.medications.Upcoming(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return respondError(c, err, "failed to load doses")
	}
	return c.JSON(doses)
}

func (handler *Handler) GetMedicationLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	options, err := parseListOptions(c)
	if err != nil {
		return respondError(c, err, "failed to load dose history")
	}
	logs, err := handler.medications.Logs(c.UserContext(), user.ID, options)
	if err != nil {
		return respondError(c, err, "failed to load dose history")
	}
	return c.JSON(logs)
}
