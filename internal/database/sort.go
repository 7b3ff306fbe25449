package database

import (
	"fmt"
	"strings"

	"parcel-backoffice/internal/models"
)

// SortMap maps user-facing sort keys to SQL column expressions. Keys are
// lower case; lookups are case-insensitive. Default is used verbatim when no
// sort is requested and must not contain the ORDER BY keyword.
type SortMap struct {
	Default string
	Columns map[string]string
}

// OrderBy turns a sort query parameter into an ORDER BY clause. Accepted forms
// are "key", "key ASC", "key DESC" and "-key". The returned clause only ever
// contains text from the map.
func (m SortMap) OrderBy(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return " ORDER BY " + m.Default, nil
	}

	dir := "ASC"
	if strings.HasPrefix(raw, "-") {
		dir = "DESC"
		raw = strings.TrimSpace(raw[1:])
	}

	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
	case 2:
		if dir == "DESC" {
			return "", fmt.Errorf("%w: %q", models.ErrInvalidSort, raw)
		}
		switch strings.ToUpper(fields[1]) {
		case "ASC":
		case "DESC":
			dir = "DESC"
		default:
			return "", fmt.Errorf("%w: %q", models.ErrInvalidSort, raw)
		}
	default:
		return "", fmt.Errorf("%w: %q", models.ErrInvalidSort, raw)
	}

	column, ok := m.Columns[strings.ToLower(fields[0])]
	if !ok {
		return "", fmt.Errorf("%w: unknown key %q", models.ErrInvalidSort, fields[0])
	}
	return " ORDER BY " + column + " " + dir, nil
}
