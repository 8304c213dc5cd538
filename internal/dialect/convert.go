package dialect

import (
	"fmt"
	"regexp"
	"strings"
)

// Schema conversion from the engine-agnostic (SQLite-syntax) script to
// T-SQL. The input grammar is deliberately restricted: one statement
// per group of lines, double-quoted identifiers, one column per line
// with trailing commas on all but the last. This is a line-scanning
// state machine, not a SQL parser.

// typeMap holds the default conversions for the declared types.
var typeMap = map[string]string{
	"TEXT":    "NVARCHAR(MAX)",
	"INTEGER": "INT",
	"DATE":    "DATE",
}

var (
	dropRe   = regexp.MustCompile(`(?i)DROP TABLE IF EXISTS\s+"?(\w+)"?;`)
	createRe = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS\s+"?(\w+)"?`)
	columnRe = regexp.MustCompile(`^"(.+?)"\s+(\w+)(.*)`)
)

// ConvertType maps a declared type to its T-SQL equivalent. Keyed TEXT
// columns are bounded to NVARCHAR(255) so they can be indexed; other
// TEXT columns keep unbounded storage. Unknown types pass through
// unchanged so new declarations don't need a converter release.
func ConvertType(declared string, isKey bool) string {
	if strings.ToUpper(declared) == "TEXT" {
		if isKey {
			return "NVARCHAR(255)"
		}
		return "NVARCHAR(MAX)"
	}
	if mapped, ok := typeMap[strings.ToUpper(declared)]; ok {
		return mapped
	}
	return declared
}

// ConvertSchema rewrites the full schema script into T-SQL:
// IF EXISTS guards become OBJECT_ID lookups, double quotes become
// square brackets, declared types go through ConvertType, and the
// trailing comma of each block's last column is stripped.
//
// Primary-key detection is a case-insensitive substring check on the
// constraint tail; a constraint merely mentioning "PRIMARY KEY" will
// trigger the bounded type. Known heuristic, fine for this schema.
func ConvertSchema(script string) (string, error) {
	var out []string
	insideCreate := false

	for _, line := range strings.Split(script, "\n") {
		stripped := strings.TrimSpace(line)
		upper := strings.ToUpper(stripped)

		if strings.HasPrefix(upper, "DROP TABLE IF EXISTS") {
			if m := dropRe.FindStringSubmatch(stripped); m != nil {
				out = append(out, fmt.Sprintf("IF OBJECT_ID('%s', 'U') IS NOT NULL DROP TABLE [%s];", m[1], m[1]))
			}
			continue
		}
		if strings.HasPrefix(upper, "CREATE TABLE IF NOT EXISTS") {
			m := createRe.FindStringSubmatch(stripped)
			if m == nil {
				return "", fmt.Errorf("malformed CREATE TABLE header: %q", stripped)
			}
			out = append(out, fmt.Sprintf("CREATE TABLE [%s] (", m[1]))
			insideCreate = true
			continue
		}
		if insideCreate {
			if stripped == ");" {
				out = append(out, ");")
				insideCreate = false
				continue
			}
			if m := columnRe.FindStringSubmatch(strings.TrimRight(stripped, ",")); m != nil {
				name, declared, extras := m[1], m[2], m[3]
				isKey := strings.Contains(strings.ToUpper(extras), "PRIMARY KEY")
				out = append(out, fmt.Sprintf("    [%s] %s%s,", name, ConvertType(declared, isKey), extras))
			} else if stripped != "" {
				// Opaque passthrough for table-level constraints.
				out = append(out, "    "+stripped)
			}
		}
	}

	// T-SQL rejects a comma before the closing parenthesis; strip it
	// from every block's final column line.
	for i := 0; i < len(out)-1; i++ {
		if strings.HasSuffix(strings.TrimSpace(out[i]), ",") && strings.TrimSpace(out[i+1]) == ");" {
			out[i] = strings.TrimRight(out[i], ",")
		}
	}

	return strings.Join(out, "\n"), nil
}
