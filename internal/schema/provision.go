// Package schema owns the shared DDL script and applies it to a live
// connection through a Dialect. The script is written once, in the
// native engine's syntax; the converted engine gets a rewritten copy.
package schema

import (
	"database/sql"
	_ "embed"
	"fmt"

	"faa-load/internal/dialect"
)

//go:embed schema.sql
var script string

// Execer is the slice of database/sql that provisioning needs.
// *sql.DB and *sql.Tx both satisfy it.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Script returns the engine-agnostic schema script.
func Script() string {
	return script
}

// Initialize applies the schema to the connection: drop-if-exists then
// create for every table. Any statement failure aborts and propagates;
// rollback discipline belongs to the caller's transaction.
func Initialize(ex Execer, d dialect.Dialect) error {
	stmts, err := d.ProvisionStatements(script)
	if err != nil {
		return fmt.Errorf("failed to prepare schema for %s: %w", d.Name(), err)
	}
	for _, stmt := range stmts {
		if _, err := ex.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
