package application

import (
	"context"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// productService implements ProductService.
type productService struct {
	products ProductRepository
}

// NewProductService wires the product use-cases over their repository.
func NewProductService(products ProductRepository) ProductService {
	return &productService{products: products}
}

// List fetches a catalogue snapshot and narrows it in memory. The
// category filter is pushed down to the collection since it is an
// exact match on a stored field; the search covers name, brand and
// category; store and brand filters compose as an AND on top.
func (s *productService) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	var products []domain.Product
	var err error
	if filter.Category != "" {
		products, err = s.products.ListByCategory(ctx, filter.Category)
	} else {
		products, err = s.products.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	predicates := make([]func(domain.Product) bool, 0, 3)
	if filter.Query != "" {
		predicates = append(predicates, func(p domain.Product) bool {
			return analytics.MatchesQuery(filter.Query, p.Name, p.Brand, p.Category)
		})
	}
	if filter.Store != "" {
		predicates = append(predicates, func(p domain.Product) bool {
			return p.SoldBy(filter.Store)
		})
	}
	if filter.Brand != "" {
		predicates = append(predicates, func(p domain.Product) bool {
			return p.Brand == filter.Brand
		})
	}

	return analytics.Filter(products, predicates...), nil
}

func (s *productService) Detail(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Categories returns the category histogram over the whole catalogue.
func (s *productService) Categories(ctx context.Context) ([]analytics.CategoryCount, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryHistogram(products), nil
}

// StoreNames returns every store name appearing in a price map, for
// the store filter dropdown.
func (s *productService) StoreNames(ctx context.Context) ([]string, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.UniqueStoreNames(products), nil
}
