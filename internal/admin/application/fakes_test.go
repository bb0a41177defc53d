package application

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

var errStoreDown = errors.New("document store unavailable")

type fakeUserRepo struct {
	users   []domain.User
	listErr error
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeUserRepo) ListJoinedAscending(ctx context.Context) ([]domain.User, error) {
	return f.List(ctx)
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "generated"
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func (f *fakeUserRepo) SetBlocked(context.Context, string, bool) error { return nil }

func (f *fakeUserRepo) Delete(context.Context, string) error { return nil }

type fakeReclamationRepo struct {
	byUser  map[string][]domain.Reclamation
	listErr error
}

func (f *fakeReclamationRepo) ListByUser(_ context.Context, userID string) ([]domain.Reclamation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byUser[userID], nil
}

func (f *fakeReclamationRepo) SetResolved(context.Context, string, string, bool) error {
	return nil
}

func (f *fakeReclamationRepo) Delete(context.Context, string, string) error { return nil }

type fakeProductRepo struct {
	products []domain.Product
	listErr  error
}

func (f *fakeProductRepo) List(context.Context) ([]domain.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeStoreRepo struct {
	stores []domain.Store
}

func (f *fakeStoreRepo) List(context.Context) ([]domain.Store, error) { return f.stores, nil }

func (f *fakeStoreRepo) FindByID(_ context.Context, id string) (*domain.Store, error) {
	for i := range f.stores {
		if f.stores[i].ID == id {
			return &f.stores[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStoreRepo) Create(_ context.Context, store *domain.Store) error {
	store.ID = "generated"
	f.stores = append(f.stores, *store)
	return nil
}

func (f *fakeStoreRepo) Update(context.Context, *domain.Store) error { return nil }

func (f *fakeStoreRepo) Delete(context.Context, string) error { return nil }
