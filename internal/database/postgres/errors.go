package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seedkit/hrseed/internal/dberr"
)

// SQLSTATE codes raised by the statements the loader executes.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeDuplicateTable      = "42P07"
)

// translateError maps a pgconn error onto the loader's error taxonomy.
// Unrecognized errors pass through unchanged.
func translateError(err error, table, rowKey string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeDuplicateTable:
		return &dberr.SchemaConflictError{Table: table}
	case codeForeignKeyViolation:
		return &dberr.ForeignKeyViolationError{Table: table, Key: rowKey}
	case codeUniqueViolation:
		return &dberr.UniqueConstraintViolationError{Table: table, Key: rowKey}
	case codeNotNullViolation:
		return &dberr.NotNullViolationError{Table: table, Column: pgErr.ColumnName, Key: rowKey}
	}
	return err
}
