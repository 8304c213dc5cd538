package loader

import (
	"archive/zip"
	"fmt"
	"time"

	"faa-load/internal/catalog"
	"faa-load/internal/dialect"
)

// TruncateAll deletes every row of every catalog table. Deletes run
// before any load so the run is a full replacement, and they happen
// inside the caller's transaction like the inserts that follow.
func TruncateAll(ex Execer, d dialect.Dialect, tables []catalog.Table) error {
	for _, t := range tables {
		if _, err := ex.Exec(d.DeleteAllQuery(t.Name)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", t.Name, err)
		}
	}
	return nil
}

// Run truncates every table, opens the archive once and loads each
// table in catalog order, recording per-table timing. Any error aborts
// the sequence; committing (or not) is the caller's job.
func Run(ex Execer, d dialect.Dialect, tables []catalog.Table, archivePath string, batchSize int, onTable func(Result)) ([]Result, error) {
	if err := TruncateAll(ex, d, tables); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	var results []Result
	for _, t := range tables {
		start := time.Now()
		res, err := LoadTable(&zr.Reader, t, ex, d, batchSize)
		res.Elapsed = time.Since(start)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if onTable != nil {
			onTable(res)
		}
	}
	return results, nil
}
