package schema

import (
	"fmt"
	"strings"
)

// Dialect identifies the SQL flavor used when rendering DDL.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// Kind is the portable column type category.
type Kind int

const (
	KindInteger Kind = iota // bounded integer, Width = max digits
	KindVarchar             // Width = max chars
	KindDate
	KindDecimal // Precision/Scale bounded decimal
)

type Column struct {
	Name       string
	Kind       Kind
	Width      int // digits for KindInteger, chars for KindVarchar
	Precision  int // KindDecimal total digits
	Scale      int // KindDecimal digits after the point
	NotNull    bool
	PrimaryKey bool
	Unique     bool

	// RefTable/RefColumn set an enforced foreign key. The manager_id
	// columns stay plain integers on purpose: the source data carries
	// dangling and forward manager references.
	RefTable  string
	RefColumn string
}

type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the declared column order, which is also the
// positional order every insert must use.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKeyColumn returns the name of the table's primary key column.
func (t Table) PrimaryKeyColumn() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// CreateSQL renders the CREATE TABLE statement for the given dialect.
// There is deliberately no IF NOT EXISTS: creating over an existing table
// must fail so the caller can decide between reset and abort.
func (t Table) CreateSQL(d Dialect) string {
	var defs []string
	var fks []Column

	for _, c := range t.Columns {
		def := fmt.Sprintf("    %s %s", c.Name, columnType(c, d))
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		} else if c.NotNull {
			def += " NOT NULL"
		}
		if c.Unique && !c.PrimaryKey {
			def += " UNIQUE"
		}
		defs = append(defs, def)
		if c.RefTable != "" {
			fks = append(fks, c)
		}
	}

	for _, c := range fks {
		defs = append(defs, fmt.Sprintf("    CONSTRAINT fk_%s_%s FOREIGN KEY (%s) REFERENCES %s (%s)",
			t.Name, c.Name, c.Name, c.RefTable, c.RefColumn))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", t.Name, strings.Join(defs, ",\n"))
}

func columnType(c Column, d Dialect) string {
	switch c.Kind {
	case KindInteger:
		switch d {
		case DialectMySQL:
			return fmt.Sprintf("DECIMAL(%d)", c.Width)
		case DialectSQLite:
			return "INTEGER"
		default:
			return fmt.Sprintf("NUMERIC(%d)", c.Width)
		}
	case KindVarchar:
		return fmt.Sprintf("VARCHAR(%d)", c.Width)
	case KindDate:
		return "DATE"
	case KindDecimal:
		if d == DialectMySQL {
			return fmt.Sprintf("DECIMAL(%d,%d)", c.Precision, c.Scale)
		}
		return fmt.Sprintf("NUMERIC(%d,%d)", c.Precision, c.Scale)
	}
	return ""
}

// DialectFor maps a config provider name to a rendering dialect.
func DialectFor(provider string) Dialect {
	switch provider {
	case "mysql":
		return DialectMySQL
	case "sqlite", "sqlite3":
		return DialectSQLite
	default:
		return DialectPostgres
	}
}
