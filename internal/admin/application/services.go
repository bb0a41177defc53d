package application

import (
	"context"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// UserRepository exposes persistence operations on users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	ListJoinedAscending(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
	Delete(ctx context.Context, id string) error
}

// ReclamationRepository exposes persistence operations on complaints.
// Listing is per owning user; the services flatten.
type ReclamationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Reclamation, error)
	SetResolved(ctx context.Context, userID, id string, resolved bool) error
	Delete(ctx context.Context, userID, id string) error
}

// ProductRepository exposes read operations on the product catalogue.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

// StoreRepository exposes persistence operations on retail stores.
type StoreRepository interface {
	List(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id string) error
}

// UserFilter narrows the user listing. A blank query passes everything.
type UserFilter struct {
	Query string
}

// ProductFilter narrows the product listing. Blank fields pass
// everything; Category, Store and Brand are exact matches.
type ProductFilter struct {
	Query    string
	Category string
	Store    string
	Brand    string
}

// ReclamationFilter narrows the complaint listing. Status is one of
// "", StatusResolved or StatusPending.
type ReclamationFilter struct {
	Query  string
	Sender string
	Status string
}

// Status filter values accepted by ReclamationFilter.
const (
	StatusResolved = "resolved"
	StatusPending  = "pending"
)

// UpsertUserCommand carries the editable user fields.
type UpsertUserCommand struct {
	Name     string
	Email    string
	Phone    string
	Location string
}

// UpsertStoreCommand carries the editable store fields.
type UpsertStoreCommand struct {
	Name      string
	Address   string
	City      string
	Country   string
	Email     string
	Phone     string
	Latitude  float64
	Longitude float64
}

// UserService describes the admin user use-cases.
type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Detail(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, cmd UpsertUserCommand) (*domain.User, error)
	Update(ctx context.Context, id string, cmd UpsertUserCommand) (*domain.User, error)
	SetBlocked(ctx context.Context, id string, blocked bool) error
	Delete(ctx context.Context, id string) error
	Reclamations(ctx context.Context, userID string) ([]domain.Reclamation, error)
}

// ProductService describes the read-only product use-cases.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Detail(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]analytics.CategoryCount, error)
	StoreNames(ctx context.Context) ([]string, error)
}

// StoreService describes the store use-cases.
type StoreService interface {
	List(ctx context.Context) ([]domain.Store, error)
	Detail(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, cmd UpsertStoreCommand) (*domain.Store, error)
	Update(ctx context.Context, id string, cmd UpsertStoreCommand) (*domain.Store, error)
	Delete(ctx context.Context, id string) error
}

// ReclamationCharts bundles the chart aggregates of the complaints
// view.
type ReclamationCharts struct {
	Status     []analytics.CategoryCount
	TopSenders []analytics.CategoryCount
	OverTime   []analytics.TimePoint
	Senders    []string
}

// ReclamationService describes the complaint use-cases.
type ReclamationService interface {
	List(ctx context.Context, filter ReclamationFilter) ([]domain.Reclamation, error)
	Resolve(ctx context.Context, userID, id string, resolved bool) error
	Delete(ctx context.Context, userID, id string) error
	Charts(ctx context.Context) (*ReclamationCharts, error)
}

// DashboardOverview is everything the dashboard landing view renders.
type DashboardOverview struct {
	TotalUsers           int
	TotalProducts        int
	TotalReclamations    int
	TotalStores          int
	UsersOverTime        []analytics.TimePoint
	ReclamationsOverTime []analytics.TimePoint
	ProductCategories    []analytics.CategoryCount
	Stores               []domain.Store
}

// DashboardService assembles the landing view from parallel snapshot
// fetches.
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
