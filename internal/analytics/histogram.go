package analytics

import (
	"sort"
	"strings"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

// CategoryCount is a chart-ready {name, count} pair.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// UncategorizedBucket collects products whose category field is unset.
const UncategorizedBucket = "Uncategorized"

// UnknownBucket collects records whose categorical key is blank.
const UnknownBucket = "Unknown"

// CategoryHistogram counts products per category. Counts always sum to
// the number of products: blank categories land in the Uncategorized
// bucket instead of being dropped.
func CategoryHistogram(products []domain.Product) []CategoryCount {
	return countByKey(products, func(p domain.Product) string {
		if strings.TrimSpace(p.Category) == "" {
			return UncategorizedBucket
		}
		return p.Category
	})
}

// StatusHistogram splits reclamations into resolved and pending counts.
func StatusHistogram(reclamations []domain.Reclamation) []CategoryCount {
	resolved := 0
	for _, r := range reclamations {
		if r.Resolved {
			resolved++
		}
	}
	return []CategoryCount{
		{Name: "Resolved", Value: resolved},
		{Name: "Pending", Value: len(reclamations) - resolved},
	}
}

// TopN counts occurrences per key and returns the n most frequent,
// ordered by count descending with ties broken by first appearance.
// Blank keys count under the Unknown bucket.
func TopN(keys []string, n int) []CategoryCount {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			key = UnknownBucket
		}
		normalized = append(normalized, key)
	}
	counts := countByKey(normalized, func(k string) string { return k })
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Value > counts[j].Value
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// UniqueStoreNames returns every store name appearing in a product
// price map, sorted alphabetically. Feeds the store filter dropdown.
func UniqueStoreNames(products []domain.Product) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, product := range products {
		for name := range product.StorePrices {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// UniqueSenders returns the distinct non-blank senders across
// reclamations, in first-seen order.
func UniqueSenders(reclamations []domain.Reclamation) []string {
	seen := make(map[string]struct{})
	senders := make([]string, 0)
	for _, r := range reclamations {
		sender := strings.TrimSpace(r.Sender)
		if sender == "" {
			continue
		}
		if _, ok := seen[sender]; ok {
			continue
		}
		seen[sender] = struct{}{}
		senders = append(senders, r.Sender)
	}
	return senders
}

// countByKey tallies items per key in first-seen order.
func countByKey[T any](items []T, keyOf func(T) string) []CategoryCount {
	index := make(map[string]int)
	counts := make([]CategoryCount, 0)
	for _, item := range items {
		key := keyOf(item)
		if i, ok := index[key]; ok {
			counts[i].Value++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, CategoryCount{Name: key, Value: 1})
	}
	return counts
}
