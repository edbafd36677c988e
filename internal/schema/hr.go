package schema

// The HR demonstration schema: two tables, created in dependency order.
// Column order matters: seed inserts are positional.

var Departments = Table{
	Name: "departments",
	Columns: []Column{
		{Name: "department_id", Kind: KindInteger, Width: 4, NotNull: true, PrimaryKey: true},
		{Name: "department_name", Kind: KindVarchar, Width: 30, NotNull: true},
		{Name: "manager_id", Kind: KindInteger, Width: 6},
		{Name: "location_id", Kind: KindInteger, Width: 4},
	},
}

var Employees = Table{
	Name: "employees",
	Columns: []Column{
		{Name: "employee_id", Kind: KindInteger, Width: 6, NotNull: true, PrimaryKey: true},
		{Name: "first_name", Kind: KindVarchar, Width: 20},
		{Name: "last_name", Kind: KindVarchar, Width: 25, NotNull: true},
		{Name: "email", Kind: KindVarchar, Width: 25, NotNull: true, Unique: true},
		{Name: "phone_number", Kind: KindVarchar, Width: 20},
		{Name: "hire_date", Kind: KindDate, NotNull: true},
		{Name: "job_id", Kind: KindVarchar, Width: 10, NotNull: true},
		{Name: "salary", Kind: KindDecimal, Precision: 8, Scale: 2},
		{Name: "commission_pct", Kind: KindDecimal, Precision: 2, Scale: 2},
		{Name: "manager_id", Kind: KindInteger, Width: 6},
		{Name: "department_id", Kind: KindInteger, Width: 4, RefTable: "departments", RefColumn: "department_id"},
	},
}

// Tables returns the schema in creation order. departments must come first
// because employees declares a foreign key against it.
func Tables() []Table {
	return []Table{Departments, Employees}
}
