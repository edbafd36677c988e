// Package loader drives the load pipeline: create the HR tables, insert the
// fixed seed batch in order, and commit the whole thing as one transaction.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/database"
	"github.com/seedkit/hrseed/internal/dataset"
	"github.com/seedkit/hrseed/internal/dberr"
	"github.com/seedkit/hrseed/internal/logger"
	"github.com/seedkit/hrseed/internal/schema"
)

type Loader struct {
	cfg     *config.Config
	adapter database.Adapter
}

// New connects to the configured database and returns a ready loader.
func New(ctx context.Context, cfg *config.Config) (*Loader, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter := database.NewAdapter(cfg.Database.Provider)
	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Loader{cfg: cfg, adapter: adapter}, nil
}

// NewWithAdapter wraps an already-connected adapter.
func NewWithAdapter(cfg *config.Config, adapter database.Adapter) *Loader {
	return &Loader{cfg: cfg, adapter: adapter}
}

func (l *Loader) Close() error {
	return l.adapter.Close()
}

// Load runs the full pipeline. Statement order is fixed: CREATE TABLE
// departments, CREATE TABLE employees, seven department inserts, seven
// employee inserts, COMMIT. Any failure rolls the transaction back and is
// terminal, there is no partial state and no retry.
func (l *Loader) Load(ctx context.Context) error {
	log := logger.Log()

	for _, table := range schema.Tables() {
		exists, err := l.adapter.TableExists(ctx, table.Name)
		if err != nil {
			return fmt.Errorf("failed to check for existing table: %w", err)
		}
		if exists {
			return &dberr.SchemaConflictError{Table: table.Name}
		}
	}

	tx, err := l.adapter.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, table := range schema.Tables() {
		color.Cyan("  📐 Creating table %s...", table.Name)
		log.Debug().Str("table", table.Name).Msg("executing CREATE TABLE")
		if err := l.adapter.CreateTable(ctx, tx, table); err != nil {
			return err
		}
	}

	for _, d := range dataset.Departments {
		log.Debug().Str("row", d.Key()).Msg("inserting department")
		if err := l.adapter.InsertRow(ctx, tx, schema.Departments, d.Key(), d.Values()); err != nil {
			return err
		}
	}

	for _, e := range dataset.Employees {
		log.Debug().Str("row", e.Key()).Msg("inserting employee")
		if err := l.adapter.InsertRow(ctx, tx, schema.Employees, e.Key(), e.Values()); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}
	committed = true

	color.Green("✅ Loaded %d departments and %d employees", len(dataset.Departments), len(dataset.Employees))
	log.Info().
		Int("departments", len(dataset.Departments)).
		Int("employees", len(dataset.Employees)).
		Str("checksum", dataset.Checksum()).
		Msg("load committed")
	return nil
}

type TableStatus struct {
	Name   string
	Exists bool
	Rows   int
}

type Status struct {
	Tables          []TableStatus
	DatasetChecksum string
	Loaded          bool
}

// Status reports table presence and row counts against the expected batch.
func (l *Loader) Status(ctx context.Context) (*Status, error) {
	if err := l.adapter.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	expected := map[string]int{
		schema.Departments.Name: len(dataset.Departments),
		schema.Employees.Name:   len(dataset.Employees),
	}

	st := &Status{DatasetChecksum: dataset.Checksum(), Loaded: true}
	for _, table := range schema.Tables() {
		ts := TableStatus{Name: table.Name}

		exists, err := l.adapter.TableExists(ctx, table.Name)
		if err != nil {
			return nil, err
		}
		ts.Exists = exists

		if exists {
			count, err := l.adapter.CountRows(ctx, table.Name)
			if err != nil {
				return nil, err
			}
			ts.Rows = count
		}

		if !ts.Exists || ts.Rows != expected[table.Name] {
			st.Loaded = false
		}
		st.Tables = append(st.Tables, ts)
	}

	return st, nil
}

// Reset drops both tables, employees first because of the foreign key.
// Destructive; prompts unless force is set.
func (l *Loader) Reset(ctx context.Context, force bool) error {
	if !force && !askConfirmation("Drop the departments and employees tables?") {
		color.Yellow("Reset cancelled")
		return nil
	}

	tables := schema.Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		color.Cyan("  🗑  Dropping table %s...", tables[i].Name)
		if err := l.adapter.DropTable(ctx, tables[i].Name); err != nil {
			return err
		}
	}

	color.Green("✅ Database reset")
	return nil
}

func askConfirmation(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}
