package loader_test

import (
	"archive/zip"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"faa-load/internal/catalog"
	"faa-load/internal/dialect"
	"faa-load/internal/fake"
	"faa-load/internal/loader"
	"faa-load/internal/schema"
)

var smallCatalog = []catalog.Table{
	{Name: "ALPHA", Columns: []string{"ID", "NAME"}},
	{Name: "BETA", Columns: []string{"CODE", "VAL"}},
}

func writeZip(t *testing.T, members map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, data := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func newSmallDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // in-memory databases are per-connection
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE "ALPHA" ("ID" TEXT, "NAME" TEXT);
CREATE TABLE "BETA" ("CODE" TEXT, "VAL" TEXT);`)
	require.NoError(t, err)
	return db
}

func TestRun_FullReplace(t *testing.T) {
	db := newSmallDB(t)
	d := &dialect.SQLiteDialect{}

	// Residue from a prior run.
	_, err := db.Exec(`INSERT INTO "ALPHA" VALUES ('old1', 'stale'), ('old2', 'stale')`)
	require.NoError(t, err)

	path := writeZip(t, map[string]string{
		"ALPHA.txt": "ID,NAME\n1,Alice\n2,Bob\n1,Alice\n",
		"BETA.txt":  "CODE,VAL\nX,10\n",
	})

	var seen []string
	results, err := loader.Run(db, d, smallCatalog, path, 0, func(res loader.Result) {
		seen = append(seen, res.Table)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"ALPHA", "BETA"}, seen)

	require.Len(t, results, 2)
	require.Equal(t, "ALPHA", results[0].Table)
	require.Equal(t, 2, results[0].Inserted)
	require.Equal(t, 1, results[0].Skipped)
	require.Equal(t, "BETA", results[1].Table)
	require.Equal(t, 1, results[1].Inserted)

	// No stale rows survive.
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "ALPHA" WHERE "NAME" = 'stale'`).Scan(&n))
	require.Equal(t, 0, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "ALPHA"`).Scan(&n))
	require.Equal(t, 2, n)
}

func TestRun_MissingMemberLeavesTransactionUncommitted(t *testing.T) {
	db := newSmallDB(t)
	d := &dialect.SQLiteDialect{}

	_, err := db.Exec(`INSERT INTO "ALPHA" VALUES ('old1', 'prior')`)
	require.NoError(t, err)

	// BETA.txt is absent: the run must fail partway.
	path := writeZip(t, map[string]string{
		"ALPHA.txt": "ID,NAME\n1,Alice\n",
	})

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = loader.Run(tx, d, smallCatalog, path, 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "BETA.txt")
	require.NoError(t, tx.Rollback())

	// The pre-run snapshot is intact.
	var name string
	require.NoError(t, db.QueryRow(`SELECT "NAME" FROM "ALPHA"`).Scan(&name))
	require.Equal(t, "prior", name)
}

func TestRun_MissingArchive(t *testing.T) {
	db := newSmallDB(t)
	_, err := loader.Run(db, &dialect.SQLiteDialect{}, smallCatalog, filepath.Join(t.TempDir(), "nope.zip"), 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open archive")
}

func TestTruncateAll(t *testing.T) {
	db := newSmallDB(t)
	_, err := db.Exec(`INSERT INTO "ALPHA" VALUES ('1', 'a'); INSERT INTO "BETA" VALUES ('2', 'b');`)
	require.NoError(t, err)

	require.NoError(t, loader.TruncateAll(db, &dialect.SQLiteDialect{}, smallCatalog))

	for _, tbl := range smallCatalog {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+tbl.Name+`"`).Scan(&n))
		require.Equal(t, 0, n, "%s should be empty", tbl.Name)
	}
}

// Full pipeline: provision the real schema, generate a sample archive,
// load every catalog table through one transaction.
func TestRun_GeneratedArchiveEndToEnd(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	d := &dialect.SQLiteDialect{}
	require.NoError(t, schema.Initialize(db, d))

	tables := catalog.Default()
	path := filepath.Join(t.TempDir(), "ReleasableAircraft.zip")
	require.NoError(t, fake.BuildArchive(path, tables, 25))

	tx, err := db.Begin()
	require.NoError(t, err)

	results, err := loader.Run(tx, d, tables, path, 10, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, results, len(tables))
	for _, res := range results {
		require.Equal(t, 25, res.Inserted, "table %s", res.Table)
		require.Equal(t, 0, res.Skipped, "table %s", res.Table)

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+res.Table+`"`).Scan(&n))
		require.Equal(t, 25, n, "table %s", res.Table)
	}
}
