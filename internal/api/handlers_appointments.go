package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

type rescheduleInput struct {
	Date string `json:"date" form:"date"`
	Time string `json:"time" form:"time"`
}

func (handler *Handler) GetAppointments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.appointments.Overview(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return respondError(c, err, "failed to load appointments")
	}
	return c.JSON(overview)
}

func (handler *Handler) BookAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.AppointmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	appointment, err := handler.appointments.Book(c.UserContext(), user.ID, input, handler.now())
	if err != nil {
		return respondError(c, err, "failed to book appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (handler *Handler) RescheduleAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to reschedule appointment")
	}
	input := rescheduleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	appointment, err := handler.appointments.Reschedule(c.UserContext(), user.ID, id, input.Date, input.Time, handler.now())
	if err != nil {
		return respondError(c, err, "failed to reschedule appointment")
	}
	return c.JSON(appointment)
}

func (handler *Handler) CancelAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to cancel appointment")
	}
	appointment, err := handler.appointments.Cancel(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to cancel appointment")
	}
	return c.JSON(appointment)
}

func (handler *Handler) CompleteAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "failed to complete appointment")
	}
	appointment, err := handler.appointments.Complete(c.UserContext(), user.ID, id)
	if err != nil {
		return respondError(c, err, "failed to complete appointment")
	}
	return c.JSON(appointment)
}
