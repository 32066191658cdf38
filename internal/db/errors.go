package db

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

// PostgreSQL SQLSTATE codes surfaced through pg.Error.
const (
	CodeUniqueViolation       = "23505"
	CodeInsufficientPrivilege = "42501"
)

// SQLState extracts the SQLSTATE code from a storage error, or "" when the
// error did not come from the server.
func SQLState(err error) string {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// IsUniqueViolation reports whether err is a primary-key or unique-constraint
// violation. The blogs primary key is the authoritative backstop for the
// slug probe race, so Create relies on this to detect a lost race.
func IsUniqueViolation(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}
