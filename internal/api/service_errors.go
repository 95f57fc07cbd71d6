package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/services"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// knownErrors maps service sentinels to the status and stable message a
// client sees. Anything else is a store or transport failure.
var knownErrors = []errorResponse{
	{errInvalidID, fiber.StatusBadRequest, "invalid id"},
	{errInvalidLimit, fiber.StatusBadRequest, "invalid limit"},
	{services.ErrInvalidDate, fiber.StatusBadRequest, "invalid date"},
	{services.ErrInvalidDateRange, fiber.StatusBadRequest, "invalid date range"},

	{services.ErrAuthCredentialsInvalid, fiber.StatusUnauthorized, "invalid credentials"},
	{services.ErrAuthPasswordMismatch, fiber.StatusBadRequest, "passwords do not match"},
	{services.ErrWeakPassword, fiber.StatusBadRequest, "weak password"},
	{services.ErrAuthEmailExists, fiber.StatusConflict, "email already exists"},
	{services.ErrAuthUserNotFound, fiber.StatusNotFound, "user not found"},
	{services.ErrPasswordChangeInvalidInput, fiber.StatusBadRequest, "invalid input"},
	{services.ErrPasswordChangeMismatch, fiber.StatusBadRequest, "passwords do not match"},
	{services.ErrInvalidCurrentPassword, fiber.StatusUnauthorized, "invalid current password"},
	{services.ErrNewPasswordMustDiffer, fiber.StatusBadRequest, "new password must differ"},
	{services.ErrOIDCIdentityInvalid, fiber.StatusForbidden, "identity not verified"},

	{services.ErrProfileInvalidInput, fiber.StatusBadRequest, "invalid profile"},

	{services.ErrSymptomSelectionRequired, fiber.StatusBadRequest, "select at least one symptom"},
	{services.ErrInvalidSymptomName, fiber.StatusBadRequest, "invalid symptom name"},
	{services.ErrSymptomIntensityRange, fiber.StatusBadRequest, "intensity must be between 1 and 10"},
	{services.ErrSymptomNotFound, fiber.StatusNotFound, "symptom not found"},

	{services.ErrCycleDateRequired, fiber.StatusBadRequest, "date is required"},
	{services.ErrCycleDateInFuture, fiber.StatusBadRequest, "date cannot be in the future"},
	{services.ErrInvalidFlow, fiber.StatusBadRequest, "invalid flow intensity"},
	{services.ErrCycleNotFound, fiber.StatusNotFound, "cycle entry not found"},

	{services.ErrMedicationInvalidInput, fiber.StatusBadRequest, "name and dosage are required"},
	{services.ErrMedicationInvalidSchedule, fiber.StatusBadRequest, "invalid schedule"},
	{services.ErrMedicationNotFound, fiber.StatusNotFound, "medication not found"},

	{services.ErrAppointmentDateTimeRequired, fiber.StatusBadRequest, "date and time are required"},
	{services.ErrAppointmentSlotUnavailable, fiber.StatusBadRequest, "time is not available"},
	{services.ErrAppointmentDateInPast, fiber.StatusBadRequest, "date cannot be in the past"},
	{services.ErrAppointmentNotFound, fiber.StatusNotFound, "appointment not found"},
	{services.ErrAppointmentClosed, fiber.StatusConflict, "appointment already closed"},
	{services.ErrProfessionalNotFound, fiber.StatusNotFound, "professional not found"},

	{services.ErrNotificationNotFound, fiber.StatusNotFound, "notification not found"},
	{services.ErrArticleNotFound, fiber.StatusNotFound, "article not found"},
	{services.ErrInvalidReportPeriod, fiber.StatusBadRequest, "invalid report period"},
}

// respondError writes the mapped response for a known error. Unknown errors
// are logged and answered with a generic 500 carrying fallback.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	for _, known := range knownErrors {
		if errors.Is(err, known.target) {
			return apiError(c, known.status, known.message)
		}
	}
	log.Printf("api: %s %s: %v", c.Method(), c.Path(), err)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}
