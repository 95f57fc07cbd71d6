package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/models"
	"github.com/terraincognita07/endotrack/internal/services"
)

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := handler.buildReport(c, user)
	if err != nil {
		return respondError(c, err, "failed to build report")
	}
	return c.JSON(report)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := handler.buildReport(c, user)
	if err != nil {
		return respondError(c, err, "failed to build export")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, entry := range handler.exports.BuildEntries(report) {
		if err := writer.Write(entry.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", handler.exportFilename("csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := handler.buildReport(c, user)
	if err != nil {
		return respondError(c, err, "failed to build export")
	}

	setExportAttachmentHeaders(c, "application/json", handler.exportFilename("json"))
	return c.JSON(handler.exports.BuildDocument(report, handler.now()))
}

func (handler *Handler) buildReport(c *fiber.Ctx, user *models.User) (services.Report, error) {
	months, err := services.ParseReportMonths(c.Query("months"))
	if err != nil {
		return services.Report{}, err
	}
	return handler.reports.Build(c.UserContext(), user.ID, months, handler.now())
}

func (handler *Handler) exportFilename(extension string) string {
	return fmt.Sprintf("endotrack-export-%s.%s", handler.now().Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
