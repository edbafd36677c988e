package database

import (
	"context"

	"github.com/seedkit/hrseed/internal/database/common"
	"github.com/seedkit/hrseed/internal/schema"
)

// Adapter abstracts one database engine. Implementations translate driver
// errors into the dberr taxonomy so callers never see engine-specific error
// types.
type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	Begin(ctx context.Context) (common.Tx, error)

	// CreateTable executes the table's DDL inside tx. An existing table
	// surfaces as *dberr.SchemaConflictError.
	CreateTable(ctx context.Context, tx common.Tx, table schema.Table) error

	// InsertRow inserts one positional row inside tx. rowKey identifies the
	// row's primary key for error reporting.
	InsertRow(ctx context.Context, tx common.Tx, table schema.Table, rowKey string, values []interface{}) error

	TableExists(ctx context.Context, name string) (bool, error)
	CountRows(ctx context.Context, name string) (int, error)
	QueryRows(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error)
	DropTable(ctx context.Context, name string) error

	Dialect() schema.Dialect
}
