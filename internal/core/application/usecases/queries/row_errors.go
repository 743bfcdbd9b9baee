package queries

import (
	"database/sql"
	"errors"
)

// isNoRows reports whether a raw row scan found nothing.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
