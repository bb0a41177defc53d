package application

import (
	"context"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// userService implements UserService.
type userService struct {
	users        UserRepository
	reclamations ReclamationRepository
}

// NewUserService wires the user use-cases over their repositories.
func NewUserService(users UserRepository, reclamations ReclamationRepository) UserService {
	return &userService{users: users, reclamations: reclamations}
}

func (s *userService) List(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Filter(users, func(u domain.User) bool {
		return analytics.MatchesQuery(filter.Query, u.Name, u.Email, u.Phone, u.Location)
	}), nil
}

func (s *userService) Detail(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, cmd UpsertUserCommand) (*domain.User, error) {
	user := &domain.User{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		Location: cmd.Location,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, cmd UpsertUserCommand) (*domain.User, error) {
	user := &domain.User{
		ID:       id,
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		Location: cmd.Location,
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return s.users.SetBlocked(ctx, id, blocked)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *userService) Reclamations(ctx context.Context, userID string) ([]domain.Reclamation, error) {
	return s.reclamations.ListByUser(ctx, userID)
}
