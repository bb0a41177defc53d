package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument is the MongoDB schema of a platform user. Field names
// keep the French keys the mobile app writes.
type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nom          string             `bson:"nom,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Telephone    string             `bson:"telephone,omitempty"`
	Localisation string             `bson:"localisation,omitempty"`
	DateJoined   *time.Time         `bson:"dateJoined,omitempty"`
	IsBlocked    *bool              `bson:"isBlocked,omitempty"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
}

// ReclamationDocument is the schema of one complaint. UserID points at
// the owning user document.
type ReclamationDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Expediteur string             `bson:"expediteur,omitempty"`
	Recepteur  string             `bson:"recepteur,omitempty"`
	Message    string             `bson:"message,omitempty"`
	Date       *time.Time         `bson:"date,omitempty"`
	Resolved   *bool              `bson:"resolved,omitempty"`
	UserID     string             `bson:"userId,omitempty"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty"`
}

// ProductStoreDocument is one store's entry inside a product's
// `produits` map. The scrapers feeding this collection are not
// consistent about types, so Prix and DateMaj stay untyped until the
// read boundary coerces them.
type ProductStoreDocument struct {
	Prix    any `bson:"prix,omitempty"`
	DateMaj any `bson:"date_maj,omitempty"`
}

// ProductDocument is the schema of a monitored product in the
// InfoProduit collection.
type ProductDocument struct {
	ID        primitive.ObjectID              `bson:"_id,omitempty"`
	Nom       string                          `bson:"nom,omitempty"`
	Categorie string                          `bson:"categorie,omitempty"`
	Marque    string                          `bson:"marque,omitempty"`
	Produits  map[string]ProductStoreDocument `bson:"produits,omitempty"`
	CreatedAt *time.Time                      `bson:"created_at,omitempty"`
}

// StoreDocument is the schema of a retail location in the Magasin
// collection.
type StoreDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nom       string             `bson:"nom,omitempty"`
	Adresse   string             `bson:"adresse,omitempty"`
	Ville     string             `bson:"ville,omitempty"`
	Pays      string             `bson:"pays,omitempty"`
	Mail      string             `bson:"mail,omitempty"`
	Telephone string             `bson:"telephone,omitempty"`
	Latitude  float64            `bson:"latitude,omitempty"`
	Longitude float64            `bson:"longitude,omitempty"`
	CreatedAt *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty"`
}

// AdminDocument is an allow-list entry. The document ID is the
// principal ID itself: existence of the document is the authorization.
type AdminDocument struct {
	ID           string     `bson:"_id"`
	Email        string     `bson:"email,omitempty"`
	Nom          string     `bson:"nom,omitempty"`
	PasswordHash string     `bson:"passwordHash,omitempty"`
	CreatedAt    *time.Time `bson:"createdAt,omitempty"`
}
