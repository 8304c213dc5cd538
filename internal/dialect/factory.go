package dialect

import "fmt"

// GetDialect returns the Dialect implementation for an engine name.
// An unknown engine is a configuration error, not a fallback.
func GetDialect(engine string) (Dialect, error) {
	switch engine {
	case "sqlite":
		return &SQLiteDialect{}, nil
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported engine %q (expected sqlite or sqlserver)", engine)
	}
}

// Ensure interface implementation
var _ Dialect = (*SQLiteDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
