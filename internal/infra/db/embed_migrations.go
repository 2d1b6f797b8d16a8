package db

import "embed"

// MigrationFS embeds the SQL migration files, used by the migrate runner
// (cmd/migrate) and the e2e test harness to prepare schemas.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
