package postgres

import (
	"strings"

	"voterdesk/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes that the GORM dialect does not translate.
const (
	sqlStateNotNullViolation      = "23502"
	sqlStateInsufficientPrivilege = "42501"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

// isRowSecurityViolation matches inserts or updates rejected by the voters
// row-level security policy.
func isRowSecurityViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "row-level security") ||
		strings.Contains(errMsg, sqlStateInsufficientPrivilege)
}
