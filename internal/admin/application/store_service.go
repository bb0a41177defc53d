package application

import (
	"context"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

// storeService implements StoreService.
type storeService struct {
	stores StoreRepository
}

// NewStoreService wires the store use-cases over their repository.
func NewStoreService(stores StoreRepository) StoreService {
	return &storeService{stores: stores}
}

func (s *storeService) List(ctx context.Context) ([]domain.Store, error) {
	return s.stores.List(ctx)
}

func (s *storeService) Detail(ctx context.Context, id string) (*domain.Store, error) {
	return s.stores.FindByID(ctx, id)
}

func (s *storeService) Create(ctx context.Context, cmd UpsertStoreCommand) (*domain.Store, error) {
	store := &domain.Store{
		Name:      cmd.Name,
		Address:   cmd.Address,
		City:      cmd.City,
		Country:   cmd.Country,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Latitude:  cmd.Latitude,
		Longitude: cmd.Longitude,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) Update(ctx context.Context, id string, cmd UpsertStoreCommand) (*domain.Store, error) {
	store := &domain.Store{
		ID:        id,
		Name:      cmd.Name,
		Address:   cmd.Address,
		City:      cmd.City,
		Country:   cmd.Country,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Latitude:  cmd.Latitude,
		Longitude: cmd.Longitude,
	}
	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	return s.stores.Delete(ctx, id)
}
