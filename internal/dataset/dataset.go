// Package dataset holds the fixed HR seed rows. The values are the demo
// batch verbatim; changing them changes the dataset checksum and breaks
// status verification against already-loaded databases.
package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type Department struct {
	DepartmentID   int
	DepartmentName string
	ManagerID      *int
	LocationID     *int
}

type Employee struct {
	EmployeeID    int
	FirstName     *string
	LastName      string
	Email         string
	PhoneNumber   *string
	HireDate      string // ISO date, matches the DATE column literally
	JobID         string
	Salary        *float64
	CommissionPct *float64
	ManagerID     *int
	DepartmentID  *int
}

// Values returns the row in declared column order for positional inserts.
func (d Department) Values() []interface{} {
	return []interface{}{d.DepartmentID, d.DepartmentName, d.ManagerID, d.LocationID}
}

func (e Employee) Values() []interface{} {
	return []interface{}{
		e.EmployeeID, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
		e.HireDate, e.JobID, e.Salary, e.CommissionPct, e.ManagerID, e.DepartmentID,
	}
}

// Key renders the row's primary key for error reporting.
func (d Department) Key() string { return fmt.Sprintf("department_id=%d", d.DepartmentID) }

func (e Employee) Key() string { return fmt.Sprintf("employee_id=%d", e.EmployeeID) }

func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }
func floatp(v float64) *float64 { return &v }

// Departments is the seed batch in insertion order. Department 10 references
// manager 200 (inserted later in the employee batch) and department 110
// references manager 205 (never inserted): manager_id is unenforced and the
// source data uses forward and dangling references intentionally.
var Departments = []Department{
	{10, "Administration", intp(200), intp(1700)},
	{20, "Marketing", intp(201), intp(1800)},
	{50, "Shipping", intp(124), intp(1500)},
	{60, "IT", intp(103), intp(1400)},
	{80, "Sales", intp(145), intp(2500)},
	{90, "Executive", intp(100), intp(1700)},
	{110, "Accounting", intp(205), intp(1700)},
}

// Employees is the seed batch in insertion order. Every non-nil department_id
// must already exist in Departments when the batch is loaded.
var Employees = []Employee{
	{100, strp("Steven"), "King", "SKING", strp("515.123.4567"), "2003-06-17", "AD_PRES", floatp(24000), nil, nil, intp(90)},
	{101, strp("Neena"), "Kochhar", "NKOCHHAR", strp("515.123.4568"), "2005-09-21", "AD_VP", floatp(17000), nil, intp(100), intp(90)},
	{102, strp("Lex"), "De Haan", "LDEHAAN", strp("515.123.4569"), "2001-01-13", "AD_VP", floatp(17000), nil, intp(100), intp(90)},
	{103, strp("Alexander"), "Hunold", "AHUNOLD", strp("590.423.4567"), "2006-01-03", "IT_PROG", floatp(9000), nil, intp(102), intp(60)},
	{104, strp("Bruce"), "Ernst", "BERNST", strp("590.423.4568"), "2007-05-21", "IT_PROG", floatp(6000), nil, intp(103), intp(60)},
	{200, strp("Jennifer"), "Whalen", "JWHALEN", strp("515.123.4444"), "2003-09-17", "AD_ASST", floatp(4400), nil, intp(101), intp(10)},
	{201, strp("Michael"), "Hartstein", "MHARTSTE", strp("515.123.5555"), "2004-02-17", "MK_MAN", floatp(13000), nil, intp(100), intp(20)},
}

// DepartmentIDs returns the set of seeded department primary keys.
func DepartmentIDs() map[int]bool {
	ids := make(map[int]bool, len(Departments))
	for _, d := range Departments {
		ids[d.DepartmentID] = true
	}
	return ids
}

// Checksum is a sha256 over the canonical rendering of every seed row, in
// insertion order. status compares it against the checksum recorded at load
// time to detect drifted or foreign data.
func Checksum() string {
	var b strings.Builder
	for _, d := range Departments {
		writeRow(&b, "departments", d.Values())
	}
	for _, e := range Employees {
		writeRow(&b, "employees", e.Values())
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeRow(b *strings.Builder, table string, values []interface{}) {
	b.WriteString(table)
	for _, v := range values {
		b.WriteString("|")
		b.WriteString(renderValue(v))
	}
	b.WriteString("\n")
}

func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case *int:
		if t == nil {
			return "NULL"
		}
		return fmt.Sprintf("%d", *t)
	case *string:
		if t == nil {
			return "NULL"
		}
		return *t
	case *float64:
		if t == nil {
			return "NULL"
		}
		return fmt.Sprintf("%g", *t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
