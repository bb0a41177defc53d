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

// UserRepository is the Mongo implementation of user persistence.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository binds the repository to its collection.
func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{collection: db.Collection(collection)}
}

// List returns every user. Each dashboard view re-fetches the whole
// snapshot; there is no pagination contract on this collection.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.M{}, nil)
}

// ListJoinedAscending returns users ordered by join date, the order the
// growth chart's running total expects.
func (r *UserRepository) ListJoinedAscending(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateJoined", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *UserRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.User, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var doc UserDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, mapUser(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns a single user or mongo.ErrNoDocuments.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	user := mapUser(doc)
	return &user, nil
}

// Create inserts a new user and fills in its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	joined := user.JoinedAt
	if joined.IsZero() {
		joined = now
	}
	blocked := user.Blocked
	result, err := r.collection.InsertOne(ctx, UserDocument{
		Nom:          user.Name,
		Email:        user.Email,
		Telephone:    user.Phone,
		Localisation: user.Location,
		DateJoined:   &joined,
		IsBlocked:    &blocked,
		CreatedAt:    &now,
	})
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.JoinedAt = joined
	return nil
}

// Update overwrites the editable fields of a user.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(user.ID))
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{
		"nom":          user.Name,
		"email":        user.Email,
		"telephone":    user.Phone,
		"localisation": user.Location,
		"updatedAt":    now,
	}})
	return err
}

// SetBlocked flips the blocked flag on its own, the way the dashboard's
// block action works.
func (r *UserRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{
		"isBlocked": blocked,
		"updatedAt": now,
	}})
	return err
}

// Delete removes a user document.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// mapUser applies the schema-on-read defaults: absent fields become
// empty strings, zero times or false.
func mapUser(doc UserDocument) domain.User {
	user := domain.User{
		ID:       doc.ID.Hex(),
		Name:     doc.Nom,
		Email:    doc.Email,
		Phone:    doc.Telephone,
		Location: doc.Localisation,
	}
	if doc.DateJoined != nil {
		user.JoinedAt = *doc.DateJoined
	}
	if doc.IsBlocked != nil {
		user.Blocked = *doc.IsBlocked
	}
	return user
}
