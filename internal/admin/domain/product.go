package domain

import "time"

// PriceEntry is one store's quote for a product. Price is zero and
// Known is false when the stored value could not be read as a number.
type PriceEntry struct {
	Price     float64
	Known     bool
	UpdatedAt time.Time
}

// Product is a monitored retail product with one price entry per store
// carrying it. AveragePrice is derived at read time from the entries
// and is 0 for a product no store carries.
type Product struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	StorePrices  map[string]PriceEntry
	AveragePrice float64
	CreatedAt    time.Time
}

// SoldBy reports whether a store carries this product.
func (p Product) SoldBy(storeName string) bool {
	_, ok := p.StorePrices[storeName]
	return ok
}
