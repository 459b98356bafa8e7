// Package models contains per-entity database operations.
package models

import (
	"database/sql"
	"errors"
)

// isNoRows reports whether the error means the query matched nothing.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
