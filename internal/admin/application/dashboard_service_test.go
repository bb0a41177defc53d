package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

func TestDashboardOverview(t *testing.T) {
	day := func(m, d int) time.Time {
		return time.Date(2024, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "u1", JoinedAt: day(1, 10)},
		{ID: "u2", JoinedAt: day(1, 20)},
		{ID: "u3", JoinedAt: day(2, 5)},
	}}
	products := &fakeProductRepo{products: []domain.Product{
		{Category: "Shoes"},
		{Category: ""},
	}}
	stores := &fakeStoreRepo{stores: []domain.Store{{ID: "s1", Name: "Carrefour"}}}
	reclamations := &fakeReclamationRepo{byUser: map[string][]domain.Reclamation{
		"u1": {{ID: "r1", Date: day(1, 12)}},
		"u3": {{ID: "r2", Date: day(2, 6)}},
	}}

	svc := NewDashboardService(users, products, stores, reclamations)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalUsers)
	assert.Equal(t, 2, overview.TotalProducts)
	assert.Equal(t, 2, overview.TotalReclamations)
	assert.Equal(t, 1, overview.TotalStores)

	// Running total per join day, then month-bucketed: Jan holds the
	// cumulative values 1 and 2, Feb the value 3.
	require.Len(t, overview.UsersOverTime, 2)
	assert.Equal(t, analytics.TimePoint{Date: "Jan 2024", Value: 3}, overview.UsersOverTime[0])
	assert.Equal(t, analytics.TimePoint{Date: "Feb 2024", Value: 3}, overview.UsersOverTime[1])

	require.Len(t, overview.ReclamationsOverTime, 2)
	assert.Equal(t, analytics.TimePoint{Date: "Jan 2024", Value: 1}, overview.ReclamationsOverTime[0])
	assert.Equal(t, analytics.TimePoint{Date: "Feb 2024", Value: 1}, overview.ReclamationsOverTime[1])

	assert.Contains(t, overview.ProductCategories, analytics.CategoryCount{Name: "Shoes", Value: 1})
	assert.Contains(t, overview.ProductCategories, analytics.CategoryCount{Name: analytics.UncategorizedBucket, Value: 1})
	assert.Equal(t, "Carrefour", overview.Stores[0].Name)
}

func TestDashboardOverviewAbortsOnAnyFetchFailure(t *testing.T) {
	users := &fakeUserRepo{users: []domain.User{{ID: "u1"}}}
	products := &fakeProductRepo{listErr: errStoreDown}
	stores := &fakeStoreRepo{}
	reclamations := &fakeReclamationRepo{}

	svc := NewDashboardService(users, products, stores, reclamations)

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestDashboardOverviewIdempotent(t *testing.T) {
	users := &fakeUserRepo{users: []domain.User{
		{ID: "u1", JoinedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewDashboardService(users, &fakeProductRepo{}, &fakeStoreRepo{}, &fakeReclamationRepo{})

	first, err := svc.Overview(context.Background())
	require.NoError(t, err)
	second, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
