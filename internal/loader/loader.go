// Package loader streams the archive's delimited members into the
// database: header-mapped CSV parsing, key-based deduplication and
// batched multi-row inserts, one table at a time.
package loader

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"faa-load/internal/catalog"
	"faa-load/internal/dialect"
)

// DefaultBatchSize is the number of rows buffered before a flush.
const DefaultBatchSize = 5000

// Execer is the slice of database/sql the loader needs. *sql.Tx and
// *sql.DB both satisfy it; the orchestrator's caller decides which.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Result reports one table's load.
type Result struct {
	Table    string
	Inserted int
	Skipped  int
	Elapsed  time.Duration
}

// LoadTable streams <NAME>.txt out of the archive into the table.
//
// Every field is trimmed; a column missing from a record becomes the
// empty string. Records whose key (first catalog column) is empty or
// already seen are counted as skipped, never inserted. Full batches
// flush immediately so memory stays bounded to one batch.
func LoadTable(fsys fs.FS, spec catalog.Table, ex Execer, d dialect.Dialect, batchSize int) (Result, error) {
	res := Result{Table: spec.Name}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	member := spec.Name + ".txt"
	f, err := fsys.Open(member)
	if err != nil {
		return res, fmt.Errorf("failed to open archive member %s: %w", member, err)
	}
	defer f.Close()

	r := csv.NewReader(skipBOM(f))
	r.FieldsPerRecord = -1 // the feed pads some records short
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return res, nil // empty member: nothing to load
	}
	if err != nil {
		return res, fmt.Errorf("failed to read header of %s: %w", member, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	keyCol := spec.Key()
	seen := make(map[string]struct{})
	batch := make([]string, 0, batchSize*len(spec.Columns))
	buffered := 0

	flush := func() error {
		n, err := insertBatch(ex, d, spec, batch, buffered)
		res.Inserted += n
		batch = batch[:0]
		buffered = 0
		return err
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("failed to parse %s: %w", member, err)
		}

		key := fieldValue(rec, index, keyCol)
		if key == "" {
			res.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		for _, col := range spec.Columns {
			batch = append(batch, fieldValue(rec, index, col))
		}
		buffered++

		if buffered >= batchSize {
			if err := flush(); err != nil {
				return res, err
			}
		}
	}

	if buffered > 0 {
		if err := flush(); err != nil {
			return res, err
		}
	}
	return res, nil
}

// fieldValue returns the trimmed value of col in rec, or "" when the
// column is absent from the header or the record is short.
func fieldValue(rec []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// insertBatch writes the buffered rows (flattened row-major into vals)
// with multi-row INSERTs, chunked so one statement never exceeds the
// dialect's parameter ceiling.
func insertBatch(ex Execer, d dialect.Dialect, spec catalog.Table, vals []string, rows int) (int, error) {
	cols := len(spec.Columns)
	maxRows := d.MaxParams() / cols
	if maxRows < 1 {
		maxRows = 1
	}

	inserted := 0
	for start := 0; start < rows; start += maxRows {
		n := min(maxRows, rows-start)
		args := make([]any, 0, n*cols)
		for _, v := range vals[start*cols : (start+n)*cols] {
			args = append(args, v)
		}
		if _, err := ex.Exec(d.InsertQuery(spec.Name, spec.Columns, n), args...); err != nil {
			return inserted, fmt.Errorf("failed to insert batch into %s: %w", spec.Name, err)
		}
		inserted += n
	}
	return inserted, nil
}

// skipBOM discards a UTF-8 byte-order mark if the feed prepends one.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
