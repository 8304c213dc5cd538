package dialect

import "strings"

// GeneratePlaceholders builds a comma-separated list of placeholders.
// It takes the number of placeholders needed and a function that returns
// the placeholder for a given index.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// multiRowValues builds the VALUES clause of a multi-row insert:
// (p1, p2), (p3, p4), ... with placeholder numbering continuing across
// rows for engines with positional parameter names.
func multiRowValues(cols, rows int, placeholderFunc func(int) string) string {
	groups := make([]string, rows)
	for r := 0; r < rows; r++ {
		base := r * cols
		groups[r] = "(" + GeneratePlaceholders(cols, func(i int) string {
			return placeholderFunc(base + i)
		}) + ")"
	}
	return strings.Join(groups, ", ")
}

// quoteAll quotes every identifier in cols with the given quoter.
func quoteAll(cols []string, quote func(string) string) []string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	return quoted
}
