package shared

import (
	"errors"
	"strconv"
	"strings"
	"tasktracker/shared/dto"
)

const cacheKeySeparator = ":"

var errInvalidID = errors.New("invalid id")

// BuildCacheKey joins the non-empty parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// ParseID parses a positive decimal identifier taken from a URL.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
