package pricing

import (
	"strings"
	"unicode"
)

// DefaultSearchLimit caps search results when the caller does not.
const DefaultSearchLimit = 15

// Matches reports whether every whitespace-separated query word is a substring of some
// alphanumeric token of key, ignoring case. An empty query matches everything.
func Matches(key, query string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(key), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, word := range strings.Fields(strings.ToLower(query)) {
		found := false
		for _, token := range tokens {
			if strings.Contains(token, word) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// search returns up to limit keys matching query, in key order.
func search(keys []string, query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	out := make([]string, 0, limit)
	for _, key := range keys {
		if !Matches(key, query) {
			continue
		}
		out = append(out, key)
		if len(out) == limit {
			break
		}
	}
	return out
}
