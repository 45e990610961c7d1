package persistence

import (
	"strings"
)

// isUniqueViolation reports whether an error is a unique index violation.
// Matched by message because the postgres and sqlite drivers surface
// different error types for the same condition.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
