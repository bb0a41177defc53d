package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	users        UserRepository
	products     ProductRepository
	stores       StoreRepository
	reclamations ReclamationRepository
}

// NewDashboardService wires the dashboard aggregation over the four
// repositories it reads from.
func NewDashboardService(users UserRepository, products ProductRepository, stores StoreRepository, reclamations ReclamationRepository) DashboardService {
	return &dashboardService{
		users:        users,
		products:     products,
		stores:       stores,
		reclamations: reclamations,
	}
}

// Overview issues the independent snapshot fetches in parallel and
// aggregates once all have settled. Any fetch failure cancels the rest
// and aborts the whole view; the dashboard never renders partial data.
func (s *dashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	var (
		users        []domain.User
		products     []domain.Product
		stores       []domain.Store
		reclamations []domain.Reclamation
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		users, err = s.users.ListJoinedAscending(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		products, err = s.products.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		stores, err = s.stores.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		reclamations, err = flattenReclamations(groupCtx, s.users, s.reclamations)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	joinDates := make([]time.Time, 0, len(users))
	for _, user := range users {
		if user.JoinedAt.IsZero() {
			continue
		}
		joinDates = append(joinDates, user.JoinedAt)
	}
	reclamationDates := make([]time.Time, 0, len(reclamations))
	for _, r := range reclamations {
		if r.Date.IsZero() {
			continue
		}
		reclamationDates = append(reclamationDates, r.Date)
	}

	return &DashboardOverview{
		TotalUsers:           len(users),
		TotalProducts:        len(products),
		TotalReclamations:    len(reclamations),
		TotalStores:          len(stores),
		UsersOverTime:        analytics.GroupByMonth(analytics.RunningTotal(joinDates)),
		ReclamationsOverTime: analytics.GroupByMonth(analytics.CountPerDay(reclamationDates)),
		ProductCategories:    analytics.CategoryHistogram(products),
		Stores:               stores,
	}, nil
}
