package sqlite

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/seedkit/hrseed/internal/dberr"
)

// translateError maps a sqlite3 driver error onto the loader's error
// taxonomy. SQLite reports "table X already exists" as a generic SQL error,
// so that one is matched on the message. Unrecognized errors pass through
// unchanged.
func translateError(err error, table, rowKey string) error {
	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) {
		return err
	}

	switch sqErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return &dberr.ForeignKeyViolationError{Table: table, Key: rowKey}
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &dberr.UniqueConstraintViolationError{Table: table, Key: rowKey}
	case sqlite3.ErrConstraintNotNull:
		return &dberr.NotNullViolationError{Table: table, Key: rowKey}
	}

	if sqErr.Code == sqlite3.ErrError && strings.Contains(sqErr.Error(), "already exists") {
		return &dberr.SchemaConflictError{Table: table}
	}
	return err
}
