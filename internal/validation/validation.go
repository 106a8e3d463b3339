// Package validation validates incoming requests before they reach the
// service layer. Malformed dates are rejected here so the timeline
// aggregation only ever sees well-formed events.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
)

// DateLayout is the accepted calendar-date format for request fields.
const DateLayout = "2006-01-02"

// Error carries field-specific validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ParseDate parses a required calendar date.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(str))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, str)
	}
	return t.UTC(), nil
}
