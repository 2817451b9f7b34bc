// Package query builds the read-model pipelines as composable GORM scopes.
// Callers compose stages in a fixed order (match, join, compute, project,
// paginate) so computed fields always see joined data and projection happens
// last.
package query

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match filters by equality on a single column.
func Match(column string, value interface{}) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// OwnedBy filters rows whose owner_id equals userID.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return Match("owner_id", userID)
}

// TitleSearch applies a case-insensitive substring match on title.
func TitleSearch(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}

// SortBy orders by the given column, restricted to a known allow-list so
// request parameters never reach the SQL untrusted.
func SortBy(field, direction string) func(db *gorm.DB) *gorm.DB {
	column, ok := sortableColumns[field]
	if !ok {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " " + dir)
	}
}

var sortableColumns = map[string]string{
	"createdAt": "created_at",
	"title":     "title",
	"views":     "views",
	"duration":  "duration_seconds",
}

// Paginate applies offset/limit for an already-normalized page and limit.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
