package service

import (
	"fmt"
	"strings"
	"time"
	// zone database fallback for hosts without zoneinfo
	_ "time/tzdata"

	apperrors "team-planner-backend/internal/errors"

	"github.com/teambition/rrule-go"
)

// ParseRecurrenceRule parses an iCal RRULE with or without the "RRULE:" prefix
func ParseRecurrenceRule(rule string) (*rrule.RRule, error) {
	value := strings.ToUpper(strings.TrimSpace(rule))
	value = strings.TrimPrefix(value, "RRULE:")
	if value == "" {
		return nil, fmt.Errorf("empty recurrence rule")
	}
	return rrule.StrToRRule(value)
}

// ValidateRecurrenceRule accepts an empty rule and otherwise requires a parseable RRULE
func ValidateRecurrenceRule(rule string) (err error) {
	if strings.TrimSpace(rule) == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.ErrInvalidRecurrence
		}
	}()

	if _, parseErr := ParseRecurrenceRule(rule); parseErr != nil {
		return apperrors.ErrInvalidRecurrence
	}
	return nil
}

// IsKnownTimeZone reports whether id names an IANA zone, checking the system
// zoneinfo first and the embedded database second. "Local" is rejected.
func IsKnownTimeZone(id string) bool {
	if id == "" || id == "Local" {
		return false
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

// resolveTimeZone applies the default when id is empty and validates the result
func resolveTimeZone(id, fallback string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = fallback
	}
	if !IsKnownTimeZone(id) {
		return "", apperrors.ErrInvalidTimeZone
	}
	return id, nil
}
