// Package dberr defines the error taxonomy surfaced by the load pipeline.
// Every error here is terminal for the batch: nothing is persisted, the
// whole load either commits or rolls back.
package dberr

import "fmt"

// SchemaConflictError reports that a table the loader wants to create
// already exists. Whether to drop-and-recreate or abort is the caller's
// decision (load --force resets first).
type SchemaConflictError struct {
	Table string
}

func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("table %s already exists", e.Table)
}

// ForeignKeyViolationError reports a row whose referenced parent is missing.
type ForeignKeyViolationError struct {
	Table string
	Key   string // primary key of the offending row
}

func (e *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("foreign key violation in %s (%s): referenced row does not exist", e.Table, e.Key)
}

// UniqueConstraintViolationError reports a duplicate primary key or a
// duplicate value in a unique column (such as employees.email).
type UniqueConstraintViolationError struct {
	Table string
	Key   string
}

func (e *UniqueConstraintViolationError) Error() string {
	return fmt.Sprintf("unique constraint violation in %s (%s)", e.Table, e.Key)
}

// NotNullViolationError reports a missing value in a NOT NULL column.
type NotNullViolationError struct {
	Table  string
	Column string
	Key    string
}

func (e *NotNullViolationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("not-null violation in %s.%s (%s)", e.Table, e.Column, e.Key)
	}
	return fmt.Sprintf("not-null violation in %s (%s)", e.Table, e.Key)
}
