package database

import (
	"github.com/seedkit/hrseed/internal/database/mysql"
	"github.com/seedkit/hrseed/internal/database/postgres"
	"github.com/seedkit/hrseed/internal/database/sqlite"
)

// NewAdapter returns the adapter for a config provider name. Unknown
// providers are rejected by config validation before this is reached;
// postgres is the fallback.
func NewAdapter(provider string) Adapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return postgres.New()
	}
}
