package utils

import (
	"strings"
)

// EscapeLike escapes LIKE/ILIKE wildcards so user input matches literally
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern builds an ILIKE pattern for a case-insensitive "contains" match
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// ParseOrdering turns "?ordering=-price,title" into an ORDER BY list.
// allowed maps public field names to SQL columns; unknown fields are ignored.
// Falls back to def when nothing usable is given.
func ParseOrdering(raw string, allowed map[string]string, def string) string {
	var parts []string
	seen := map[string]bool{}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}

		col, ok := allowed[field]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		parts = append(parts, col+" "+dir)
	}

	if len(parts) == 0 {
		return def
	}
	return strings.Join(parts, ", ")
}
