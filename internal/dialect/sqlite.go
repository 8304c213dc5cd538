package dialect

import (
	"fmt"
	"strings"
)

// SQLiteDialect is the native engine: the schema script is written in
// its syntax and runs unmodified as one multi-statement batch.
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

func (d *SQLiteDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string, rows int) string {
	vals := multiRowValues(len(cols), rows, d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		d.QuoteIdent(table), strings.Join(quoteAll(cols, d.QuoteIdent), ", "), vals)
}

func (d *SQLiteDialect) DeleteAllQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *SQLiteDialect) MaxParams() int {
	return 32766 // SQLITE_MAX_VARIABLE_NUMBER
}

func (d *SQLiteDialect) ProvisionStatements(script string) ([]string, error) {
	// The driver executes multi-statement scripts in a single Exec.
	return []string{script}, nil
}
