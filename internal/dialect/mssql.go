package dialect

import (
	"fmt"
	"strings"
)

// MSSQLDialect is the converted engine: the schema script is rewritten
// into T-SQL and executed one statement at a time, because the driver
// does not accept multi-statement batches through Exec.
type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string {
	return "sqlserver"
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + name + "]"
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string, rows int) string {
	vals := multiRowValues(len(cols), rows, d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		d.QuoteIdent(table), strings.Join(quoteAll(cols, d.QuoteIdent), ", "), vals)
}

func (d *MSSQLDialect) DeleteAllQuery(table string) string {
	// DELETE instead of TRUNCATE: same cross-engine semantics as the
	// native side, and it participates in the ambient transaction.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) MaxParams() int {
	return 2100 // T-SQL parameter ceiling per request
}

func (d *MSSQLDialect) ProvisionStatements(script string) ([]string, error) {
	converted, err := ConvertSchema(script)
	if err != nil {
		return nil, err
	}
	var stmts []string
	for _, s := range strings.Split(converted, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts, nil
}
