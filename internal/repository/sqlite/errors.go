package sqlite

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	uniqueFailed     = "UNIQUE constraint failed: "
	foreignKeyFailed = "FOREIGN KEY constraint failed"
)

func errorCode(err error) int {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()
	}
	return 0
}

func isUniqueViolation(err error) bool {
	return errorCode(err) == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		strings.Contains(err.Error(), uniqueFailed)
}

func isForeignKeyViolation(err error) bool {
	return errorCode(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
		strings.Contains(err.Error(), foreignKeyFailed)
}
