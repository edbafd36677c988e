// Package export dumps the seeded tables to a YAML snapshot file.
package export

import (
	"context"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seedkit/hrseed/internal/database"
	"github.com/seedkit/hrseed/internal/logger"
	"github.com/seedkit/hrseed/internal/schema"
)

type Snapshot struct {
	ExportedAt string                   `yaml:"exported_at"`
	Provider   string                   `yaml:"provider"`
	Tables     map[string]TableSnapshot `yaml:"tables"`
}

type TableSnapshot struct {
	Columns []string                 `yaml:"columns"`
	Rows    []map[string]interface{} `yaml:"rows"`
}

// Export writes both HR tables to a timestamped YAML file under exportPath
// and returns the file name. Row order follows each table's primary key so
// snapshots of the same data compare equal.
func Export(ctx context.Context, adapter database.Adapter, provider, exportPath string) (string, error) {
	snapshot := Snapshot{
		ExportedAt: time.Now().Format("2006-01-02_15-04-05"),
		Provider:   provider,
		Tables:     make(map[string]TableSnapshot),
	}

	for _, table := range schema.Tables() {
		result, err := adapter.QueryRows(ctx,
			fmt.Sprintf("SELECT * FROM %s ORDER BY %s", table.Name, table.PrimaryKeyColumn()))
		if err != nil {
			return "", fmt.Errorf("failed to read table %s: %w", table.Name, err)
		}

		snapshot.Tables[table.Name] = TableSnapshot{
			Columns: result.Columns,
			Rows:    normalizeRows(result.Rows),
		}
		logger.Log().Debug().Str("table", table.Name).Int("rows", len(result.Rows)).Msg("exported table")
	}

	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := filepath.Join(exportPath, fmt.Sprintf("hrseed_%s.yaml", snapshot.ExportedAt))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	enc := yaml.NewEncoder(file)
	defer enc.Close()
	if err := enc.Encode(snapshot); err != nil {
		return "", fmt.Errorf("failed to write export data: %w", err)
	}

	return filename, nil
}

// normalizeRows flattens driver-specific value types into YAML-friendly
// scalars.
func normalizeRows(rows []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		clean := make(map[string]interface{}, len(row))
		for col, v := range row {
			switch t := v.(type) {
			case []byte:
				clean[col] = string(t)
			case time.Time:
				clean[col] = t.Format("2006-01-02")
			case driver.Valuer:
				// pgx hands back pgtype wrappers for NUMERIC columns
				if val, err := t.Value(); err == nil {
					clean[col] = val
				} else {
					clean[col] = fmt.Sprintf("%v", v)
				}
			default:
				clean[col] = v
			}
		}
		out[i] = clean
	}
	return out
}
