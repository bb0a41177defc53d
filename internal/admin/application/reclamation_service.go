package application

import (
	"context"
	"sort"
	"time"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// topSenderCount is how many senders the complaints chart ranks.
const topSenderCount = 5

// reclamationService implements ReclamationService. Complaints hang
// off users, so every global view starts from the user list and
// flattens the per-user fetches.
type reclamationService struct {
	users        UserRepository
	reclamations ReclamationRepository
}

// NewReclamationService wires the complaint use-cases over their
// repositories.
func NewReclamationService(users UserRepository, reclamations ReclamationRepository) ReclamationService {
	return &reclamationService{users: users, reclamations: reclamations}
}

func (s *reclamationService) List(ctx context.Context, filter ReclamationFilter) ([]domain.Reclamation, error) {
	all, err := flattenReclamations(ctx, s.users, s.reclamations)
	if err != nil {
		return nil, err
	}

	predicates := make([]func(domain.Reclamation) bool, 0, 3)
	if filter.Query != "" {
		predicates = append(predicates, func(r domain.Reclamation) bool {
			return analytics.MatchesQuery(filter.Query, r.Sender, r.Recipient, r.Message)
		})
	}
	if filter.Sender != "" {
		predicates = append(predicates, func(r domain.Reclamation) bool {
			return r.Sender == filter.Sender
		})
	}
	if filter.Status == StatusResolved {
		predicates = append(predicates, func(r domain.Reclamation) bool { return r.Resolved })
	} else if filter.Status == StatusPending {
		predicates = append(predicates, func(r domain.Reclamation) bool { return !r.Resolved })
	}

	return analytics.Filter(all, predicates...), nil
}

func (s *reclamationService) Resolve(ctx context.Context, userID, id string, resolved bool) error {
	return s.reclamations.SetResolved(ctx, userID, id, resolved)
}

func (s *reclamationService) Delete(ctx context.Context, userID, id string) error {
	return s.reclamations.Delete(ctx, userID, id)
}

// Charts aggregates the complaints view charts from one snapshot.
func (s *reclamationService) Charts(ctx context.Context) (*ReclamationCharts, error) {
	all, err := flattenReclamations(ctx, s.users, s.reclamations)
	if err != nil {
		return nil, err
	}

	senders := make([]string, 0, len(all))
	dates := make([]time.Time, 0, len(all))
	for _, r := range all {
		senders = append(senders, r.Sender)
		dates = append(dates, r.Date)
	}

	return &ReclamationCharts{
		Status:     analytics.StatusHistogram(all),
		TopSenders: analytics.TopN(senders, topSenderCount),
		OverTime:   analytics.CountPerDay(dates),
		Senders:    analytics.UniqueSenders(all),
	}, nil
}

// flattenReclamations fetches every user's complaints and merges them
// into one slice sorted newest first. A failure on any user aborts the
// whole fetch; the caller gets a single error, never a partial view.
func flattenReclamations(ctx context.Context, users UserRepository, reclamations ReclamationRepository) ([]domain.Reclamation, error) {
	userList, err := users.List(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Reclamation, 0)
	for _, user := range userList {
		list, err := reclamations.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	return all, nil
}
