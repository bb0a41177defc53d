package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

func TestCategoryHistogramCountsSumToTotal(t *testing.T) {
	products := []domain.Product{
		{Category: "Shoes"},
		{Category: "Shoes"},
		{Category: "Dairy"},
		{Category: ""},
		{Category: "  "},
	}

	hist := CategoryHistogram(products)

	total := 0
	for _, bucket := range hist {
		total += bucket.Value
	}
	assert.Equal(t, len(products), total)
}

func TestCategoryHistogramUncategorized(t *testing.T) {
	products := []domain.Product{
		{Category: "Shoes"},
		{Category: ""},
		{Category: ""},
	}

	hist := CategoryHistogram(products)

	require.Len(t, hist, 2)
	assert.Contains(t, hist, CategoryCount{Name: "Shoes", Value: 1})
	assert.Contains(t, hist, CategoryCount{Name: UncategorizedBucket, Value: 2})
}

func TestStatusHistogram(t *testing.T) {
	reclamations := []domain.Reclamation{
		{Resolved: true},
		{Resolved: false},
		{Resolved: false},
	}

	hist := StatusHistogram(reclamations)

	assert.Equal(t, []CategoryCount{
		{Name: "Resolved", Value: 1},
		{Name: "Pending", Value: 2},
	}, hist)
}

func TestTopNOrderingAndTieBreak(t *testing.T) {
	senders := []string{"A", "A", "B", "C", "A", "B"}

	top := TopN(senders, 2)

	assert.Equal(t, []CategoryCount{
		{Name: "A", Value: 3},
		{Name: "B", Value: 2},
	}, top)
}

func TestTopNTiesKeepFirstSeenOrder(t *testing.T) {
	keys := []string{"x", "y", "x", "y", "z"}

	top := TopN(keys, 3)

	assert.Equal(t, []CategoryCount{
		{Name: "x", Value: 2},
		{Name: "y", Value: 2},
		{Name: "z", Value: 1},
	}, top)
}

func TestTopNBlankKeysCountAsUnknown(t *testing.T) {
	top := TopN([]string{"", "  ", "A"}, 5)

	assert.Equal(t, []CategoryCount{
		{Name: UnknownBucket, Value: 2},
		{Name: "A", Value: 1},
	}, top)
}

func TestTopNNonPositiveLimitReturnsAll(t *testing.T) {
	top := TopN([]string{"a", "b", "c"}, 0)
	assert.Len(t, top, 3)
}

func TestUniqueStoreNames(t *testing.T) {
	products := []domain.Product{
		{StorePrices: map[string]domain.PriceEntry{"Monoprix": {}, "Carrefour": {}}},
		{StorePrices: map[string]domain.PriceEntry{"Carrefour": {}, "Aziza": {}}},
		{StorePrices: nil},
	}

	assert.Equal(t, []string{"Aziza", "Carrefour", "Monoprix"}, UniqueStoreNames(products))
}

func TestUniqueSendersSkipsBlanks(t *testing.T) {
	reclamations := []domain.Reclamation{
		{Sender: "Amine"},
		{Sender: ""},
		{Sender: "Sana"},
		{Sender: "Amine"},
	}

	assert.Equal(t, []string{"Amine", "Sana"}, UniqueSenders(reclamations))
}
