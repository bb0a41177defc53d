package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

func reclamationFixtures() (*fakeUserRepo, *fakeReclamationRepo) {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}
	users := &fakeUserRepo{users: []domain.User{{ID: "u1"}, {ID: "u2"}}}
	reclamations := &fakeReclamationRepo{byUser: map[string][]domain.Reclamation{
		"u1": {
			{ID: "r1", Sender: "Amine", Recipient: "Support", Message: "wrong price shown", Date: day(1), UserID: "u1"},
			{ID: "r2", Sender: "Sana", Recipient: "Support", Message: "store closed", Date: day(5), Resolved: true, UserID: "u1"},
		},
		"u2": {
			{ID: "r3", Sender: "Amine", Recipient: "Support", Message: "outdated listing", Date: day(3), UserID: "u2"},
		},
	}}
	return users, reclamations
}

func TestReclamationListFlattensAndSortsNewestFirst(t *testing.T) {
	users, reclamations := reclamationFixtures()
	svc := NewReclamationService(users, reclamations)

	all, err := svc.List(context.Background(), ReclamationFilter{})
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, []string{"r2", "r3", "r1"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestReclamationListSearch(t *testing.T) {
	users, reclamations := reclamationFixtures()
	svc := NewReclamationService(users, reclamations)

	matched, err := svc.List(context.Background(), ReclamationFilter{Query: "PRICE"})
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, "r1", matched[0].ID)
}

func TestReclamationListFiltersCompose(t *testing.T) {
	users, reclamations := reclamationFixtures()
	svc := NewReclamationService(users, reclamations)

	matched, err := svc.List(context.Background(), ReclamationFilter{
		Sender: "Amine",
		Status: StatusPending,
	})
	require.NoError(t, err)

	require.Len(t, matched, 2)
	for _, r := range matched {
		assert.Equal(t, "Amine", r.Sender)
		assert.False(t, r.Resolved)
	}
}

func TestReclamationListPropagatesFetchFailure(t *testing.T) {
	users, reclamations := reclamationFixtures()
	reclamations.listErr = errStoreDown
	svc := NewReclamationService(users, reclamations)

	_, err := svc.List(context.Background(), ReclamationFilter{})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestReclamationCharts(t *testing.T) {
	users, reclamations := reclamationFixtures()
	svc := NewReclamationService(users, reclamations)

	charts, err := svc.Charts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, charts.Status[0].Value) // resolved
	assert.Equal(t, 2, charts.Status[1].Value) // pending

	require.NotEmpty(t, charts.TopSenders)
	assert.Equal(t, "Amine", charts.TopSenders[0].Name)
	assert.Equal(t, 2, charts.TopSenders[0].Value)

	require.Len(t, charts.OverTime, 3)
	assert.Equal(t, "2024-01-01", charts.OverTime[0].Date)

	assert.ElementsMatch(t, []string{"Amine", "Sana"}, charts.Senders)
}
