package schema_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"faa-load/internal/catalog"
	"faa-load/internal/dialect"
	"faa-load/internal/schema"
)

func TestInitialize_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // in-memory databases are per-connection
	defer db.Close()

	require.NoError(t, schema.Initialize(db, &dialect.SQLiteDialect{}))

	for _, tbl := range catalog.Default() {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, tbl.Name,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", tbl.Name)
	}

	// The script carries its own DROP guards, so provisioning twice is fine.
	require.NoError(t, schema.Initialize(db, &dialect.SQLiteDialect{}))
}

func TestInitialize_SQLServerStatementByStatement(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	d := &dialect.MSSQLDialect{}
	stmts, err := d.ProvisionStatements(schema.Script())
	require.NoError(t, err)
	// One DROP guard + one CREATE per catalog table.
	require.Len(t, stmts, 2*len(catalog.Default()))

	for _, stmt := range stmts {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, schema.Initialize(db, d))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialize_AbortsOnStatementError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	d := &dialect.MSSQLDialect{}
	stmts, err := d.ProvisionStatements(schema.Script())
	require.NoError(t, err)

	mock.ExpectExec(stmts[0]).WillReturnError(errors.New("permission denied"))

	err = schema.Initialize(db, d)
	require.Error(t, err)
	require.Contains(t, err.Error(), "permission denied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScript_MatchesCatalog(t *testing.T) {
	script := schema.Script()
	for _, tbl := range catalog.Default() {
		require.Contains(t, script, `DROP TABLE IF EXISTS "`+tbl.Name+`";`)
		require.Contains(t, script, `CREATE TABLE IF NOT EXISTS "`+tbl.Name+`" (`)
		require.Contains(t, script, `"`+tbl.Key()+`"`)
	}
}
