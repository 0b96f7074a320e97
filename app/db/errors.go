package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation detects unique-index violations across the sqlite and
// mysql backends. Neither driver surfaces a portable error type through
// gorm, so string matching is the common denominator.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

// IsCheckViolation detects check-constraint violations.
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "CHECK constraint failed") ||
		strings.Contains(msg, "Check constraint") ||
		strings.Contains(msg, "constraint 'ck_") // mysql 8 phrasing
}
