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

// ReclamationRepository is the Mongo implementation of complaint
// persistence. Complaints are keyed by owning user; every write carries
// the user ID in its filter so a reclamation can never be touched
// through the wrong owner.
type ReclamationRepository struct {
	collection *mongo.Collection
}

// NewReclamationRepository binds the repository to its collection.
func NewReclamationRepository(db *mongo.Database, collection string) *ReclamationRepository {
	return &ReclamationRepository{collection: db.Collection(collection)}
}

// ListByUser returns one user's complaints ordered oldest first. The
// dashboard flattens these per-user fetches into its global view.
func (r *ReclamationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Reclamation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": strings.TrimSpace(userID)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reclamations := make([]domain.Reclamation, 0)
	for cursor.Next(ctx) {
		var doc ReclamationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reclamations = append(reclamations, mapReclamation(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reclamations, nil
}

// SetResolved toggles a complaint's resolved flag.
func (r *ReclamationRepository) SetResolved(ctx context.Context, userID, id string, resolved bool) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "userId": strings.TrimSpace(userID)},
		bson.M{"$set": bson.M{"resolved": resolved, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a complaint owned by the given user.
func (r *ReclamationRepository) Delete(ctx context.Context, userID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": strings.TrimSpace(userID)})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Create inserts a complaint. The dashboard never calls this; it exists
// for the seeder and for ingestion tooling.
func (r *ReclamationRepository) Create(ctx context.Context, rec *domain.Reclamation) error {
	date := rec.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	resolved := rec.Resolved
	result, err := r.collection.InsertOne(ctx, ReclamationDocument{
		Expediteur: rec.Sender,
		Recepteur:  rec.Recipient,
		Message:    rec.Message,
		Date:       &date,
		Resolved:   &resolved,
		UserID:     rec.UserID,
	})
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	rec.Date = date
	return nil
}

func mapReclamation(doc ReclamationDocument) domain.Reclamation {
	rec := domain.Reclamation{
		ID:        doc.ID.Hex(),
		Sender:    doc.Expediteur,
		Recipient: doc.Recepteur,
		Message:   doc.Message,
		UserID:    doc.UserID,
	}
	if doc.Date != nil {
		rec.Date = *doc.Date
	}
	if doc.Resolved != nil {
		rec.Resolved = *doc.Resolved
	}
	return rec
}
