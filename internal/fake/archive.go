// Package fake builds a structurally valid registry archive filled
// with generated data, for offline runs and demos without hitting the
// FAA's servers.
package fake

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"faa-load/internal/catalog"
)

// BuildArchive writes a ZIP at path containing one <NAME>.txt member
// per catalog table, each with a header row and rows generated rows.
// Key columns get sequential values so every row survives dedup.
func BuildArchive(path string, tables []catalog.Table, rows int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, t := range tables {
		w, err := zw.Create(t.Name + ".txt")
		if err != nil {
			return fmt.Errorf("failed to create member for %s: %w", t.Name, err)
		}
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		for i := 0; i < rows; i++ {
			rec := make([]string, len(t.Columns))
			for j, col := range t.Columns {
				if j == 0 {
					rec[j] = keyValue(col, i)
				} else {
					rec[j] = Value(col)
				}
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("failed to write member %s.txt: %w", t.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

func keyValue(col string, i int) string {
	if strings.Contains(strings.ToUpper(col), "N-NUMBER") {
		return fmt.Sprintf("N%05d", i+1)
	}
	return fmt.Sprintf("%07d", i+1)
}

// Value generates a plausible field value from the column name.
func Value(col string) string {
	c := strings.ToUpper(col)
	switch {
	case strings.HasSuffix(c, "DATE"):
		d := gofakeit.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
		return d.Format("20060102")
	case strings.Contains(c, "NAME"):
		return strings.ToUpper(gofakeit.Name())
	case strings.Contains(c, "STREET"):
		return strings.ToUpper(gofakeit.Street())
	case strings.Contains(c, "CITY"):
		return strings.ToUpper(gofakeit.City())
	case strings.Contains(c, "STATE"):
		return gofakeit.StateAbr()
	case strings.Contains(c, "ZIP"):
		return gofakeit.Zip()
	case strings.Contains(c, "COUNTRY"):
		return "US"
	case c == "NO-ENG" || c == "NO-SEATS":
		return strconv.Itoa(gofakeit.Number(1, 4))
	case strings.Contains(c, "COUNT"):
		return strconv.Itoa(gofakeit.Number(0, 5))
	case c == "SPEED" || c == "HORSEPOWER" || c == "THRUST":
		return strconv.Itoa(gofakeit.Number(0, 2000))
	case strings.Contains(c, "YEAR"):
		return strconv.Itoa(gofakeit.Number(1950, 2025))
	case strings.Contains(c, "MFR"):
		return strings.ToUpper(gofakeit.Company())
	default:
		return strings.ToUpper(gofakeit.LetterN(4))
	}
}
