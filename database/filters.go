package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/errs"
)

// ListFilters narrows List results. Query matches title or description
// case-insensitively; Tag requires exact membership in the record's tag list.
// Both filters combine with AND; zero values impose no constraint.
type ListFilters struct {
	Query string
	Tag   string
}

// applyListFilters builds the shared WHERE clauses used by every listing
// repository, so the OR/AND filter logic lives in one place.
func applyListFilters(tx *gorm.DB, filters ListFilters) *gorm.DB {
	if filters.Query != "" {
		pattern := "%" + strings.ToLower(filters.Query) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filters.Tag != "" {
		tx = tagContains(tx, "tags", strings.ToLower(filters.Tag))
	}
	return tx
}

// tagContains constrains column (a JSON string array) to contain value.
// Postgres can use a containment check on the jsonb column directly; the
// sqlite dialect used in tests walks the array with json_each.
func tagContains(tx *gorm.DB, column, value string) *gorm.DB {
	switch tx.Dialector.Name() {
	case "postgres":
		return tx.Where(column+" @> ?", datatypes.JSON(fmt.Sprintf("[%q]", value)))
	default:
		return tx.Where(
			fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = ?)", column),
			value,
		)
	}
}

// asStringSlice converts a stored JSON array field for DTO exposure,
// guaranteeing a non-nil slice so JSON output is always an array.
func asStringSlice(values datatypes.JSONSlice[string]) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDate converts a payload timestamp into its stored representation.
// Inputs are validated upstream; a parse failure still maps to a 400.
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewBadRequestError("invalid date")
	}
	return parsed, nil
}

