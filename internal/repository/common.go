package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsUniqueViolation reports whether err comes from the store rejecting a
// duplicate key. This is the only signal the API layer gets when two writers
// race on the same natural key.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	// The sqlite driver used in tests reports constraint failures as plain
	// strings.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
