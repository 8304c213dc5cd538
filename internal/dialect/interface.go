package dialect

// Dialect abstracts the differences between the two target engines:
// identifier quoting, parameter placeholders, statement generation and
// how the shared schema script is turned into executable statements.
type Dialect interface {
	Name() string

	// Identifier / parameter syntax
	QuoteIdent(name string) string
	Placeholder(index int) string // Returns ?, @p1, etc.

	// Query generation
	InsertQuery(table string, cols []string, rows int) string
	DeleteAllQuery(table string) string

	// MaxParams is the engine's ceiling on bound parameters per
	// statement; multi-row inserts are chunked to stay under it.
	MaxParams() int

	// ProvisionStatements turns the engine-agnostic schema script into
	// the ordered list of statements to execute. The native engine runs
	// the script as a single multi-statement batch; the converted
	// engine rewrites it first and runs one statement at a time.
	ProvisionStatements(script string) ([]string, error)
}
