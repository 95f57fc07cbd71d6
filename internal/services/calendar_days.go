package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/db"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// StorageDay maps the calendar day of value in location to UTC midnight of
// the same calendar day, the form calendar dates are persisted in.
func StorageDay(value time.Time, location *time.Location) time.Time {
	local := DateAtLocation(value, location)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreatedAtBounds converts storage-day bounds into the UTC instants of local
// midnight on those days. created_at holds real instants, so a day range
// over it has to start and end where the local day does.
func CreatedAtBounds(options db.ListOptions, location *time.Location) db.ListOptions {
	options.From = localMidnightInstant(options.From, location)
	options.To = localMidnightInstant(options.To, location)
	return options
}

func localMidnightInstant(day *time.Time, location *time.Location) *time.Time {
	if day == nil {
		return nil
	}
	if location == nil {
		location = time.UTC
	}
	year, month, date := day.UTC().Date()
	instant := time.Date(year, month, date, 0, 0, 0, 0, location).UTC()
	return &instant
}

// ParseDay parses a YYYY-MM-DD calendar date into its storage form.
func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.Parse(dayLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// ParseOptionalDayRange parses an optional [from, to] pair of calendar dates.
// The returned upper bound is exclusive: the day after to.
func ParseOptionalDayRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	var from *time.Time
	if strings.TrimSpace(rawFrom) != "" {
		parsed, err := ParseDay(rawFrom)
		if err != nil {
			return nil, nil, ErrInvalidDateRange
		}
		from = &parsed
	}

	var to *time.Time
	if strings.TrimSpace(rawTo) != "" {
		parsed, err := ParseDay(rawTo)
		if err != nil {
			return nil, nil, ErrInvalidDateRange
		}
		exclusive := parsed.AddDate(0, 0, 1)
		to = &exclusive
	}

	if from != nil && to != nil && !to.After(*from) {
		return nil, nil, ErrInvalidDateRange
	}
	return from, to, nil
}
