package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// Config carries the handler dependencies.
type Config struct {
	Logger         *logrus.Logger
	Users          application.UserService
	Products       application.ProductService
	Stores         application.StoreService
	Reclamations   application.ReclamationService
	Dashboard      application.DashboardService
	RequestTimeout time.Duration
}

// Handler serves the admin dashboard API.
type Handler struct {
	log            *logrus.Logger
	users          application.UserService
	products       application.ProductService
	stores         application.StoreService
	reclamations   application.ReclamationService
	dashboard      application.DashboardService
	validate       *validator.Validate
	requestTimeout time.Duration
}

// NewHandler builds the admin handler.
func NewHandler(cfg Config) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{
		log:            cfg.Logger,
		users:          cfg.Users,
		products:       cfg.Products,
		stores:         cfg.Stores,
		reclamations:   cfg.Reclamations,
		dashboard:      cfg.Dashboard,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		requestTimeout: timeout,
	}
}

// Register mounts the admin routes on the given router. Callers wrap
// the subtree with the session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers())
		r.Post("/", h.CreateUser())
		r.Get("/{id}", h.GetUser())
		r.Patch("/{id}", h.UpdateUser())
		r.Patch("/{id}/block", h.BlockUser())
		r.Delete("/{id}", h.DeleteUser())
		r.Get("/{id}/reclamations", h.ListUserReclamations())
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts())
		r.Get("/categories", h.ListProductCategories())
		r.Get("/store-names", h.ListStoreNames())
		r.Get("/{id}", h.GetProduct())
	})
	r.Route("/stores", func(r chi.Router) {
		r.Get("/", h.ListStores())
		r.Post("/", h.CreateStore())
		r.Get("/{id}", h.GetStore())
		r.Patch("/{id}", h.UpdateStore())
		r.Delete("/{id}", h.DeleteStore())
	})
	r.Route("/reclamations", func(r chi.Router) {
		r.Get("/", h.ListReclamations())
		r.Get("/charts", h.ReclamationCharts())
		r.Patch("/{userId}/{id}", h.ResolveReclamation())
		r.Delete("/{userId}/{id}", h.DeleteReclamation())
	})
	r.Get("/dashboard/stats", h.DashboardStats())
}

// decode reads and validates a JSON request body.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		common.WriteError(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		common.WriteError(h.log, w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return "invalid field " + first.Field() + ": failed " + first.Tag() + " check"
	}
	return "invalid request body"
}

// writeLookupError maps repository failures to status codes. Malformed
// ids surface from the driver as an invalid hex error.
func (h *Handler) writeLookupError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		common.WriteError(h.log, w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, primitive.ErrInvalidHex):
		common.WriteError(h.log, w, http.StatusBadRequest, "invalid "+resource+" id")
	default:
		h.log.WithError(err).Error("admin request failed")
		common.WriteError(h.log, w, http.StatusInternalServerError, "internal error")
	}
}
