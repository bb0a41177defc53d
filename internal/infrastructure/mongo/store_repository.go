package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

// StoreRepository is the Mongo implementation over the Magasin
// collection.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository binds the repository to its collection.
func NewStoreRepository(db *mongo.Database, collection string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collection)}
}

// List returns every store ordered by name.
func (r *StoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nom", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStore(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByID returns a single store or mongo.ErrNoDocuments.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	store := mapStore(doc)
	return &store, nil
}

// Create inserts a store and fills in its generated ID.
func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	now := time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, StoreDocument{
		Nom:       store.Name,
		Adresse:   store.Address,
		Ville:     store.City,
		Pays:      store.Country,
		Mail:      store.Email,
		Telephone: store.Phone,
		Latitude:  store.Latitude,
		Longitude: store.Longitude,
		CreatedAt: &now,
	})
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		store.ID = oid.Hex()
	}
	return nil
}

// Update overwrites the editable fields of a store.
func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(store.ID))
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{
		"nom":       store.Name,
		"adresse":   store.Address,
		"ville":     store.City,
		"pays":      store.Country,
		"mail":      store.Email,
		"telephone": store.Phone,
		"latitude":  store.Latitude,
		"longitude": store.Longitude,
		"updatedAt": now,
	}})
	return err
}

// Delete removes a store document.
func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func mapStore(doc StoreDocument) domain.Store {
	return domain.Store{
		ID:        doc.ID.Hex(),
		Name:      doc.Nom,
		Address:   doc.Adresse,
		City:      doc.Ville,
		Country:   doc.Pays,
		Email:     doc.Mail,
		Phone:     doc.Telephone,
		Latitude:  doc.Latitude,
		Longitude: doc.Longitude,
	}
}
