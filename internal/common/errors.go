package common

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// Postgres error codes that the services translate.
const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// ReferentialError reports a foreign key that does not resolve, or a row that
// cannot be removed because another row still points at it.
type ReferentialError struct {
	Field   string
	Message string
}

func (e ReferentialError) Error() string {
	return fmt.Sprintf("referential integrity: %s %s", e.Field, e.Message)
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
// It returns the name of the violated constraint.
func ForeignKeyError(err error) (string, bool) {
	return constraintError(err, foreignKeyViolation)
}

// CheckError reports whether err is a CHECK constraint violation and which constraint failed.
func CheckError(err error) (string, bool) {
	return constraintError(err, checkViolation)
}

func constraintError(err error, code pq.ErrorCode) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == code {
		return pqErr.Constraint, true
	}

	return "", false
}

// ConstraintErrors maps the name of a violated constraint to the error callers should see.
type ConstraintErrors map[string]error

// Translate swaps a foreign key or check violation in err for the matching mapped error.
// Errors that are not constraint violations, or whose constraint is not mapped, are returned unchanged.
func (c ConstraintErrors) Translate(err error) error {
	if err == nil {
		return nil
	}

	name, ok := ForeignKeyError(err)
	if !ok {
		name, ok = CheckError(err)
	}
	if !ok {
		return err
	}

	if mapped, ok := c[name]; ok {
		return mapped
	}

	return err
}
