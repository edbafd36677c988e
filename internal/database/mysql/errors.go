package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/seedkit/hrseed/internal/dberr"
)

// MySQL server error numbers raised by the statements the loader executes.
const (
	errTableExists     = 1050
	errDupEntry        = 1062
	errBadNull         = 1048
	errNoReferencedRow = 1216
	errRowIsReferenced = 1217
	errNoRefRow2       = 1452
)

// translateError maps a mysql driver error onto the loader's error taxonomy.
// Unrecognized errors pass through unchanged.
func translateError(err error, table, rowKey string) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}

	switch myErr.Number {
	case errTableExists:
		return &dberr.SchemaConflictError{Table: table}
	case errNoReferencedRow, errNoRefRow2, errRowIsReferenced:
		return &dberr.ForeignKeyViolationError{Table: table, Key: rowKey}
	case errDupEntry:
		return &dberr.UniqueConstraintViolationError{Table: table, Key: rowKey}
	case errBadNull:
		return &dberr.NotNullViolationError{Table: table, Key: rowKey}
	}
	return err
}
