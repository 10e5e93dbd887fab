// README: Case- and accent-insensitive substring search over a fare table.
package destinations

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalize lowercases s and strips diacritics, so "Cádiz" and "cadiz"
// compare equal.
func normalize(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Search keeps the entries whose normalized name contains the normalized
// query as a substring, optionally restricted to a category. An empty query
// matches everything; order is preserved from the source table.
func Search(entries []Destination, query, category string) []Destination {
	q := normalize(strings.TrimSpace(query))
	filterCategory := category != "" && category != CategoryAll

	var out []Destination
	for _, d := range entries {
		if filterCategory && d.Category != category {
			continue
		}
		if q != "" && !strings.Contains(normalize(d.Name), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}
