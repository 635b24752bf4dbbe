package request

import (
	"errors"
	"strings"
	"time"

	"locaequip/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses the YYYY-MM-DD wire format used by every date field.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
