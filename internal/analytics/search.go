package analytics

import "strings"

// MatchesQuery reports whether the lowercased query is a substring of
// any of the given fields. A blank or whitespace-only query matches
// everything. Matching is plain containment, not fuzzy.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Filter keeps the items satisfying every predicate. With no
// predicates the input slice is returned unchanged.
func Filter[T any](items []T, predicates ...func(T) bool) []T {
	if len(predicates) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range predicates {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}
