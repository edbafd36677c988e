// Package common holds types and helpers shared by the engine adapters.
package common

import (
	"context"
	"database/sql"
)

// Tx is a single load transaction. The whole pipeline, table creation and
// every seed insert, runs on one Tx so a failure anywhere leaves nothing
// behind.
type Tx interface {
	Exec(ctx context.Context, query string, args ...interface{}) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// QueryResult is a generic row set used by verify and export.
type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// ScanRows drains a database/sql row set into a QueryResult. Used by the
// mysql and sqlite adapters; pgx has its own row values API.
func ScanRows(rows *sql.Rows) (*QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			// drivers hand back []byte for text columns; normalize
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}

	return result, rows.Err()
}

// SQLTx adapts a *sql.Tx to the Tx interface for the database/sql-backed
// engines.
type SQLTx struct {
	Tx *sql.Tx
}

func (t *SQLTx) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := t.Tx.ExecContext(ctx, query, args...)
	return err
}

func (t *SQLTx) Commit(ctx context.Context) error {
	return t.Tx.Commit()
}

func (t *SQLTx) Rollback(ctx context.Context) error {
	return t.Tx.Rollback()
}
