package loader

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/seedkit/hrseed/internal/dataset"
	"github.com/seedkit/hrseed/internal/schema"
)

// Verify checks the loaded data against the properties the seed batch
// guarantees: exact row counts, distinct employee ids and emails, and every
// non-null employee department_id resolving to a seeded department.
func (l *Loader) Verify(ctx context.Context) error {
	expected := map[string]int{
		schema.Departments.Name: len(dataset.Departments),
		schema.Employees.Name:   len(dataset.Employees),
	}
	for name, want := range expected {
		count, err := l.adapter.CountRows(ctx, name)
		if err != nil {
			return err
		}
		if count != want {
			return fmt.Errorf("%s has %d rows, expected %d", name, count, want)
		}
	}
	color.Green("  ✓ row counts match (%d departments, %d employees)",
		expected[schema.Departments.Name], expected[schema.Employees.Name])

	d := l.adapter.Dialect()

	deptRows, err := l.adapter.QueryRows(ctx,
		fmt.Sprintf("SELECT %s AS department_id FROM departments", intExpr(d, "department_id")))
	if err != nil {
		return err
	}
	seededDepts := dataset.DepartmentIDs()
	liveDepts := make(map[int]bool, len(deptRows.Rows))
	for _, row := range deptRows.Rows {
		id, err := asInt(row["department_id"])
		if err != nil {
			return fmt.Errorf("unreadable department_id: %w", err)
		}
		if !seededDepts[id] {
			return fmt.Errorf("unexpected department_id %d", id)
		}
		liveDepts[id] = true
	}
	if len(liveDepts) != len(seededDepts) {
		return fmt.Errorf("departments have %d distinct ids, expected %d", len(liveDepts), len(seededDepts))
	}
	color.Green("  ✓ department ids match the seed batch")

	empRows, err := l.adapter.QueryRows(ctx, fmt.Sprintf(
		"SELECT %s AS employee_id, email, %s AS department_id FROM employees",
		intExpr(d, "employee_id"), intExpr(d, "department_id")))
	if err != nil {
		return err
	}

	ids := make(map[int]bool)
	emails := make(map[string]bool)
	for _, row := range empRows.Rows {
		id, err := asInt(row["employee_id"])
		if err != nil {
			return fmt.Errorf("unreadable employee_id: %w", err)
		}
		if ids[id] {
			return fmt.Errorf("duplicate employee_id %d", id)
		}
		ids[id] = true

		email, _ := row["email"].(string)
		if email == "" {
			return fmt.Errorf("employee %d has an empty email", id)
		}
		if emails[email] {
			return fmt.Errorf("duplicate email %s", email)
		}
		emails[email] = true

		if row["department_id"] != nil {
			deptID, err := asInt(row["department_id"])
			if err != nil {
				return fmt.Errorf("unreadable department_id for employee %d: %w", id, err)
			}
			if !liveDepts[deptID] {
				return fmt.Errorf("employee %d references missing department %d", id, deptID)
			}
		}
	}
	color.Green("  ✓ employee ids and emails are distinct")
	color.Green("  ✓ every employee department reference resolves")

	return nil
}

// intExpr renders an integer-typed projection of a numeric column. The
// bounded NUMERIC/DECIMAL columns scan back as engine-specific types
// otherwise.
func intExpr(d schema.Dialect, column string) string {
	switch d {
	case schema.DialectMySQL:
		return fmt.Sprintf("CAST(%s AS SIGNED)", column)
	case schema.DialectSQLite:
		return column
	default:
		return fmt.Sprintf("CAST(%s AS INTEGER)", column)
	}
}

func asInt(v interface{}) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
