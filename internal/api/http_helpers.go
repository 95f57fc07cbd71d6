package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/services"
)

var (
	errInvalidID    = errors.New("invalid id")
	errInvalidLimit = errors.New("invalid limit")
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errInvalidID
	}
	return uint(value), nil
}

// parseListOptions reads the optional from, to and limit query parameters
// shared by the history listings.
func parseListOptions(c *fiber.Ctx) (db.ListOptions, error) {
	from, to, err := services.ParseOptionalDayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return db.ListOptions{}, err
	}

	options := db.ListOptions{From: from, To: to, Descending: true}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return db.ListOptions{}, errInvalidLimit
		}
		options.Limit = limit
	}
	return options, nil
}

func queryBool(c *fiber.Ctx, name string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(c.Query(name)))
	return err == nil && value
}
