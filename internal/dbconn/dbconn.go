// Package dbconn assembles connection strings and opens the target
// database for either engine behind one config struct.
package dbconn

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config carries the connection parameters, populated from flags and
// the config file at startup.
type Config struct {
	Engine   string // "sqlite" or "sqlserver"
	Path     string // sqlite database file
	Server   string // sqlserver host[:port]
	Database string
	Username string
	Password string
	Trusted  bool // integrated auth instead of credentials
}

// DSN returns the driver name and connection string for cfg. Passwords
// go through URL escaping so special characters survive.
func DSN(cfg Config) (driver, dsn string, err error) {
	switch cfg.Engine {
	case "sqlite":
		return "sqlite", cfg.Path, nil
	case "sqlserver", "mssql":
		u := &url.URL{Scheme: "sqlserver", Host: cfg.Server}
		if !cfg.Trusted {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		}
		q := url.Values{}
		q.Set("database", cfg.Database)
		u.RawQuery = q.Encode()
		return "sqlserver", u.String(), nil
	default:
		return "", "", fmt.Errorf("unsupported engine %q", cfg.Engine)
	}
}

// Open connects and verifies the connection with a ping. For the
// sqlite engine the database file's directory is created first; the
// driver creates the file itself but not its parents.
func Open(cfg Config) (*sql.DB, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" && cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, nil
}
