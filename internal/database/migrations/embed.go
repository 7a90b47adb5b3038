// Package migrations holds the goose migrations for each SQL backend.
package migrations

import "embed"

// Postgres contains the PostgreSQL migrations under postgres/
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite contains the SQLite migrations under sqlite/
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Directories inside the embedded file systems
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
