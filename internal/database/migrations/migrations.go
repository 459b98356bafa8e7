// Package migrations registers all database schema migrations.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the registered migration set, run on connect or via
// the db command.
var Migrations = migrate.NewMigrations()
