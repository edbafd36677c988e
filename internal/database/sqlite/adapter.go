package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/seedkit/hrseed/internal/database/common"
	"github.com/seedkit/hrseed/internal/schema"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Connect(ctx context.Context, dsn string) error {
	dbPath := ensureParams(strings.TrimPrefix(dsn, "sqlite://"))

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// a single writer keeps the load transaction serialized
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping SQLite: %w", err)
	}

	s.db = db
	return nil
}

// ensureParams forces foreign key enforcement and WAL journaling onto the
// DSN while keeping whatever parameters the caller supplied. FK enforcement
// is off by default in SQLite and the load contract depends on it.
func ensureParams(dbPath string) string {
	path, query, _ := strings.Cut(dbPath, "?")

	params, err := url.ParseQuery(query)
	if err != nil {
		params = url.Values{}
	}
	if params.Get("_foreign_keys") == "" {
		params.Set("_foreign_keys", "on")
	}
	if params.Get("_journal_mode") == "" {
		params.Set("_journal_mode", "WAL")
	}

	return path + "?" + params.Encode()
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) Dialect() schema.Dialect {
	return schema.DialectSQLite
}

func (s *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &common.SQLTx{Tx: tx}, nil
}

func (s *Adapter) CreateTable(ctx context.Context, tx common.Tx, table schema.Table) error {
	if err := tx.Exec(ctx, table.CreateSQL(schema.DialectSQLite)); err != nil {
		return translateError(err, table.Name, "")
	}
	return nil
}

func (s *Adapter) InsertRow(ctx context.Context, tx common.Tx, table schema.Table, rowKey string, values []interface{}) error {
	query, args, err := s.qb.Insert(table.Name).
		Columns(table.ColumnNames()...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
	}

	if err := tx.Exec(ctx, query, args...); err != nil {
		return translateError(err, table.Name, rowKey)
	}
	return nil
}

func (s *Adapter) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return count > 0, nil
}

func (s *Adapter) CountRows(ctx context.Context, name string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", name, err)
	}
	return count, nil
}

func (s *Adapter) QueryRows(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (s *Adapter) DropTable(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", name))
	if err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}
	return nil
}
