package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

func TestMatchesQueryEmptyMatchesAll(t *testing.T) {
	assert.True(t, MatchesQuery("", "anything"))
	assert.True(t, MatchesQuery("   ", "anything"))
	assert.True(t, MatchesQuery("", ""))
}

func TestMatchesQuerySubstringAnyField(t *testing.T) {
	assert.True(t, MatchesQuery("smith", "John Smith", "john@example.com"))
	assert.True(t, MatchesQuery("SMITH", "John Smith"))
	assert.True(t, MatchesQuery("example.com", "Jones", "jones@example.com"))
	assert.False(t, MatchesQuery("smith", "Jones", "jones@example.com"))
}

func TestFilterNoPredicatesIsIdentity(t *testing.T) {
	users := []domain.User{{Name: "a"}, {Name: "b"}}

	filtered := Filter(users)

	assert.Equal(t, users, filtered)
}

func TestFilterComposesWithAnd(t *testing.T) {
	products := []domain.Product{
		{Name: "Runner", Category: "Shoes", StorePrices: map[string]domain.PriceEntry{"StoreX": {}}},
		{Name: "Loafer", Category: "Shoes", StorePrices: map[string]domain.PriceEntry{"StoreY": {}}},
		{Name: "Milk", Category: "Dairy", StorePrices: map[string]domain.PriceEntry{"StoreX": {}}},
	}

	filtered := Filter(products,
		func(p domain.Product) bool { return p.Category == "Shoes" },
		func(p domain.Product) bool { return p.SoldBy("StoreX") },
	)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Runner", filtered[0].Name)
}

func TestFilterKeepsInputUntouched(t *testing.T) {
	users := []domain.User{{Name: "a", Blocked: true}, {Name: "b"}}

	Filter(users, func(u domain.User) bool { return !u.Blocked })

	assert.True(t, users[0].Blocked)
	assert.Len(t, users, 2)
}
