package admin

import (
	"time"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/analytics"
)

// JSON field names follow the Firestore-era schema the dashboard
// front end already binds to.

type userResponse struct {
	ID           string    `json:"id"`
	Nom          string    `json:"nom"`
	Email        string    `json:"email"`
	Telephone    string    `json:"telephone,omitempty"`
	Localisation string    `json:"localisation,omitempty"`
	DateJoined   time.Time `json:"dateJoined"`
	IsBlocked    bool      `json:"isBlocked"`
}

type upsertUserRequest struct {
	Nom          string `json:"nom" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Telephone    string `json:"telephone" validate:"max=32"`
	Localisation string `json:"localisation" validate:"max=200"`
}

type blockUserRequest struct {
	IsBlocked *bool `json:"isBlocked" validate:"required"`
}

type priceEntryResponse struct {
	Prix    *float64   `json:"prix,omitempty"`
	DateMaj *time.Time `json:"date_maj,omitempty"`
}

type productResponse struct {
	ID        string                        `json:"id"`
	Nom       string                        `json:"nom"`
	Categorie string                        `json:"categorie,omitempty"`
	Marque    string                        `json:"marque,omitempty"`
	Prix      float64                       `json:"prix"`
	CreatedAt time.Time                     `json:"created_at"`
	Produits  map[string]priceEntryResponse `json:"produits"`
}

type storeResponse struct {
	ID        string  `json:"id"`
	Nom       string  `json:"nom"`
	Adresse   string  `json:"adresse,omitempty"`
	Ville     string  `json:"ville,omitempty"`
	Pays      string  `json:"pays,omitempty"`
	Mail      string  `json:"mail,omitempty"`
	Telephone string  `json:"telephone,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type upsertStoreRequest struct {
	Nom       string  `json:"nom" validate:"required,max=120"`
	Adresse   string  `json:"adresse" validate:"max=200"`
	Ville     string  `json:"ville" validate:"max=100"`
	Pays      string  `json:"pays" validate:"max=100"`
	Mail      string  `json:"mail" validate:"omitempty,email"`
	Telephone string  `json:"telephone" validate:"max=32"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type reclamationResponse struct {
	ID         string    `json:"id"`
	Expediteur string    `json:"expediteur"`
	Recepteur  string    `json:"recepteur,omitempty"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	Resolved   bool      `json:"resolved"`
	UserID     string    `json:"userId"`
}

type resolveReclamationRequest struct {
	Resolved *bool `json:"resolved" validate:"required"`
}

type reclamationChartsResponse struct {
	Status     []analytics.CategoryCount `json:"status"`
	TopSenders []analytics.CategoryCount `json:"topSenders"`
	OverTime   []analytics.TimePoint     `json:"overTime"`
	Senders    []string                  `json:"senders"`
}

type dashboardResponse struct {
	TotalUsers           int                       `json:"totalUsers"`
	TotalProducts        int                       `json:"totalProducts"`
	TotalReclamations    int                       `json:"totalReclamations"`
	TotalStores          int                       `json:"totalStores"`
	UsersOverTime        []analytics.TimePoint     `json:"usersOverTime"`
	ReclamationsOverTime []analytics.TimePoint     `json:"reclamationsOverTime"`
	ProductCategories    []analytics.CategoryCount `json:"productCategories"`
	Stores               []storeResponse           `json:"stores"`
}

func userDomainToResponse(user domain.User) userResponse {
	return userResponse{
		ID:           user.ID,
		Nom:          user.Name,
		Email:        user.Email,
		Telephone:    user.Phone,
		Localisation: user.Location,
		DateJoined:   user.JoinedAt,
		IsBlocked:    user.Blocked,
	}
}

func productDomainToResponse(product domain.Product) productResponse {
	entries := make(map[string]priceEntryResponse, len(product.StorePrices))
	for storeName, entry := range product.StorePrices {
		converted := priceEntryResponse{}
		if entry.Known {
			price := entry.Price
			converted.Prix = &price
		}
		if !entry.UpdatedAt.IsZero() {
			updated := entry.UpdatedAt
			converted.DateMaj = &updated
		}
		entries[storeName] = converted
	}
	return productResponse{
		ID:        product.ID,
		Nom:       product.Name,
		Categorie: product.Category,
		Marque:    product.Brand,
		Prix:      product.AveragePrice,
		CreatedAt: product.CreatedAt,
		Produits:  entries,
	}
}

func storeDomainToResponse(store domain.Store) storeResponse {
	return storeResponse{
		ID:        store.ID,
		Nom:       store.Name,
		Adresse:   store.Address,
		Ville:     store.City,
		Pays:      store.Country,
		Mail:      store.Email,
		Telephone: store.Phone,
		Latitude:  store.Latitude,
		Longitude: store.Longitude,
	}
}

func reclamationDomainToResponse(rec domain.Reclamation) reclamationResponse {
	return reclamationResponse{
		ID:         rec.ID,
		Expediteur: rec.Sender,
		Recepteur:  rec.Recipient,
		Message:    rec.Message,
		Date:       rec.Date,
		Resolved:   rec.Resolved,
		UserID:     rec.UserID,
	}
}
