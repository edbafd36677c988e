package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seedkit/hrseed/internal/database/common"
	"github.com/seedkit/hrseed/internal/dataset"
	"github.com/seedkit/hrseed/internal/dberr"
	"github.com/seedkit/hrseed/internal/schema"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	a := New()
	path := filepath.Join(t.TempDir(), "hr.db")
	if err := a.Connect(context.Background(), "sqlite://"+path); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func createTables(t *testing.T, a *Adapter) {
	t.Helper()

	ctx := context.Background()
	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	for _, table := range schema.Tables() {
		if err := a.CreateTable(ctx, tx, table); err != nil {
			t.Fatalf("Failed to create %s: %v", table.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

func insertRow(ctx context.Context, t *testing.T, a *Adapter, tx common.Tx, table schema.Table, key string, values []interface{}) {
	t.Helper()
	if err := a.InsertRow(ctx, tx, table, key, values); err != nil {
		t.Fatalf("Failed to insert %s: %v", key, err)
	}
}

func TestCreateAndInsertScenario(t *testing.T) {
	// department 10 followed by employee 200 (Whalen) must resolve the FK
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}

	insertRow(ctx, t, a, tx, schema.Departments, dataset.Departments[0].Key(), dataset.Departments[0].Values())

	var whalen dataset.Employee
	for _, e := range dataset.Employees {
		if e.EmployeeID == 200 {
			whalen = e
		}
	}
	insertRow(ctx, t, a, tx, schema.Employees, whalen.Key(), whalen.Values())

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	result, err := a.QueryRows(ctx, `
		SELECT d.department_name FROM employees e
		JOIN departments d ON d.department_id = e.department_id
		WHERE e.employee_id = 200
	`)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0]["department_name"] != "Administration" {
		t.Errorf("Expected employee 200 to resolve department Administration, got %+v", result.Rows)
	}
}

func TestForeignKeyViolation(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	// department 999 is not seeded
	values := []interface{}{300, "Extra", "Person", "EPERSON", nil, "2008-01-01", "IT_PROG", nil, nil, nil, 999}
	err = a.InsertRow(ctx, tx, schema.Employees, "employee_id=300", values)

	var fk *dberr.ForeignKeyViolationError
	if !errors.As(err, &fk) {
		t.Fatalf("Expected ForeignKeyViolationError, got %v", err)
	}
	if fk.Key != "employee_id=300" {
		t.Errorf("Expected offending key employee_id=300, got %s", fk.Key)
	}
}

func TestConnectKeepsForeignKeysWithUserParams(t *testing.T) {
	// a DSN that already carries query parameters must still get FK
	// enforcement added
	ctx := context.Background()

	a := New()
	path := filepath.Join(t.TempDir(), "hr.db")
	if err := a.Connect(ctx, "sqlite://"+path+"?cache=shared"); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	values := []interface{}{300, "Extra", "Person", "EPERSON", nil, "2008-01-01", "IT_PROG", nil, nil, nil, 999}
	err = a.InsertRow(ctx, tx, schema.Employees, "employee_id=300", values)

	var fk *dberr.ForeignKeyViolationError
	if !errors.As(err, &fk) {
		t.Fatalf("Expected ForeignKeyViolationError, got %v", err)
	}
}

func TestEnsureParams(t *testing.T) {
	cases := []struct {
		dsn  string
		want []string
	}{
		{"hr.db", []string{"_foreign_keys=on", "_journal_mode=WAL"}},
		{"hr.db?cache=shared", []string{"_foreign_keys=on", "_journal_mode=WAL", "cache=shared"}},
		{"hr.db?_journal_mode=DELETE", []string{"_foreign_keys=on", "_journal_mode=DELETE"}},
		{"hr.db?_foreign_keys=off", []string{"_foreign_keys=off"}},
	}

	for _, c := range cases {
		got := ensureParams(c.dsn)
		for _, want := range c.want {
			if !strings.Contains(got, want) {
				t.Errorf("ensureParams(%s): expected %q in %q", c.dsn, want, got)
			}
		}
	}
}

func TestUniqueViolation(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	d := dataset.Departments[0]
	insertRow(ctx, t, a, tx, schema.Departments, d.Key(), d.Values())

	err = a.InsertRow(ctx, tx, schema.Departments, d.Key(), d.Values())
	var unique *dberr.UniqueConstraintViolationError
	if !errors.As(err, &unique) {
		t.Fatalf("Expected UniqueConstraintViolationError for duplicate primary key, got %v", err)
	}
}

func TestDuplicateEmailViolation(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	d := dataset.Departments[0]
	insertRow(ctx, t, a, tx, schema.Departments, d.Key(), d.Values())

	values := []interface{}{300, "First", "Person", "SAME", nil, "2008-01-01", "IT_PROG", nil, nil, nil, nil}
	insertRow(ctx, t, a, tx, schema.Employees, "employee_id=300", values)

	values = []interface{}{301, "Second", "Person", "SAME", nil, "2008-01-02", "IT_PROG", nil, nil, nil, nil}
	err = a.InsertRow(ctx, tx, schema.Employees, "employee_id=301", values)

	var unique *dberr.UniqueConstraintViolationError
	if !errors.As(err, &unique) {
		t.Fatalf("Expected UniqueConstraintViolationError for duplicate email, got %v", err)
	}
	if unique.Key != "employee_id=301" {
		t.Errorf("Expected offending key employee_id=301, got %s", unique.Key)
	}
}

func TestNotNullViolation(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	// last_name is NOT NULL
	values := []interface{}{300, "Extra", nil, "EPERSON", nil, "2008-01-01", "IT_PROG", nil, nil, nil, nil}
	err = a.InsertRow(ctx, tx, schema.Employees, "employee_id=300", values)

	var notNull *dberr.NotNullViolationError
	if !errors.As(err, &notNull) {
		t.Fatalf("Expected NotNullViolationError, got %v", err)
	}
}

func TestSchemaConflict(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)
	createTables(t, a)

	tx, err := a.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	err = a.CreateTable(ctx, tx, schema.Departments)
	var conflict *dberr.SchemaConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected SchemaConflictError, got %v", err)
	}
	if conflict.Table != "departments" {
		t.Errorf("Expected conflicting table departments, got %s", conflict.Table)
	}
}

func TestTableExistsAndDrop(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	exists, err := a.TableExists(ctx, "departments")
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if exists {
		t.Error("Expected departments to be missing before create")
	}

	createTables(t, a)

	exists, err = a.TableExists(ctx, "departments")
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if !exists {
		t.Error("Expected departments to exist after create")
	}

	if err := a.DropTable(ctx, "employees"); err != nil {
		t.Fatalf("Failed to drop employees: %v", err)
	}
	if err := a.DropTable(ctx, "departments"); err != nil {
		t.Fatalf("Failed to drop departments: %v", err)
	}

	exists, _ = a.TableExists(ctx, "departments")
	if exists {
		t.Error("Expected departments to be gone after drop")
	}
}
