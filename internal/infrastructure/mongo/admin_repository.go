package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/auth"
)

// AdminRepository is the Mongo implementation of the admin allow-list.
// It satisfies auth.AllowList: a document whose _id equals the
// principal ID is the whole authorization.
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository binds the repository to its collection.
func NewAdminRepository(db *mongo.Database, collection string) *AdminRepository {
	return &AdminRepository{collection: db.Collection(collection)}
}

// IsAllowed reports whether the principal has an allow-list entry.
func (r *AdminRepository) IsAllowed(ctx context.Context, principalID string) (bool, error) {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		return false, nil
	}
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": principalID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindCredential looks up a login record by email. A missing email is
// not an error; the gate treats nil as invalid credentials.
func (r *AdminRepository) FindCredential(ctx context.Context, email string) (*auth.Credential, error) {
	var doc AdminDocument
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth.Credential{
		ID:           doc.ID,
		Email:        doc.Email,
		Name:         doc.Nom,
		PasswordHash: doc.PasswordHash,
	}, nil
}

// Create inserts an allow-list entry; used by the seeder.
func (r *AdminRepository) Create(ctx context.Context, id, email, name, passwordHash string) error {
	now := time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, AdminDocument{
		ID:           strings.TrimSpace(id),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Nom:          name,
		PasswordHash: passwordHash,
		CreatedAt:    &now,
	})
	return err
}
