package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"

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

func (m *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", url)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping MySQL: %w", err)
	}

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) Dialect() schema.Dialect {
	return schema.DialectMySQL
}

func (m *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &common.SQLTx{Tx: tx}, nil
}

func (m *Adapter) CreateTable(ctx context.Context, tx common.Tx, table schema.Table) error {
	if err := tx.Exec(ctx, table.CreateSQL(schema.DialectMySQL)); err != nil {
		return translateError(err, table.Name, "")
	}
	return nil
}

func (m *Adapter) InsertRow(ctx context.Context, tx common.Tx, table schema.Table, rowKey string, values []interface{}) error {
	query, args, err := m.qb.Insert(table.Name).
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

func (m *Adapter) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?
	`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return count > 0, nil
}

func (m *Adapter) CountRows(ctx context.Context, name string) (int, error) {
	var count int
	if err := m.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", name, err)
	}
	return count, nil
}

func (m *Adapter) QueryRows(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return common.ScanRows(rows)
}

func (m *Adapter) DropTable(ctx context.Context, name string) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", name))
	if err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}
	return nil
}
