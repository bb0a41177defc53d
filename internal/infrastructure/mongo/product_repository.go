package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// ProductRepository is the Mongo implementation over the InfoProduit
// collection. The collection is written by the price scrapers; the
// dashboard only reads it.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository binds the repository to its collection.
func NewProductRepository(db *mongo.Database, collection string) *ProductRepository {
	return &ProductRepository{collection: db.Collection(collection)}
}

// List returns every product with its derived average price.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

// ListByCategory returns products of one category (exact match on the
// stored field).
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"categorie": category})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	for cursor.Next(ctx) {
		var doc ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		products = append(products, mapProduct(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns a single product or mongo.ErrNoDocuments.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ProductDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	product := mapProduct(doc)
	return &product, nil
}

// mapProduct applies the read-boundary defaults and derives the average
// price. Store entries whose price cannot be coerced stay in the map
// (the UI still lists the store) but are marked unknown so they do not
// skew the mean.
func mapProduct(doc ProductDocument) domain.Product {
	entries := make(map[string]domain.PriceEntry, len(doc.Produits))
	for storeName, entry := range doc.Produits {
		price, ok := analytics.CoercePrice(entry.Prix)
		entries[storeName] = domain.PriceEntry{
			Price:     price,
			Known:     ok,
			UpdatedAt: coerceTime(entry.DateMaj),
		}
	}

	product := domain.Product{
		ID:           doc.ID.Hex(),
		Name:         doc.Nom,
		Category:     doc.Categorie,
		Brand:        doc.Marque,
		StorePrices:  entries,
		AveragePrice: analytics.AveragePrice(entries),
	}
	if doc.CreatedAt != nil {
		product.CreatedAt = *doc.CreatedAt
	}
	return product
}

// coerceTime reads the loosely typed date_maj field: BSON dates decode
// as primitive.DateTime, older scraper runs wrote RFC 3339 strings.
func coerceTime(raw any) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time()
	case string:
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(v)); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(v)); err == nil {
			return t
		}
	}
	return time.Time{}
}
