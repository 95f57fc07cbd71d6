package db

import (
	"time"

	"gorm.io/gorm"
)

// ListOptions narrows a per-user listing. From is inclusive, To is exclusive.
// A Limit of zero or less returns every matching row.
type ListOptions struct {
	From       *time.Time
	To         *time.Time
	Descending bool
	Limit      int
}

func (options ListOptions) apply(query *gorm.DB, dateColumn string) *gorm.DB {
	if options.From != nil {
		query = query.Where(dateColumn+" >= ?", *options.From)
	}
	if options.To != nil {
		query = query.Where(dateColumn+" < ?", *options.To)
	}

	direction := "ASC"
	if options.Descending {
		direction = "DESC"
	}
	query = query.Order(dateColumn + " " + direction).Order("id " + direction)

	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}
	return query
}
