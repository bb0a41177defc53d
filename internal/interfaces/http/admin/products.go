package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// ListProducts returns the catalogue. The category, store and brand
// filters accept "all" as no restriction, matching the dashboard
// dropdowns.
func (h *Handler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		query := r.URL.Query()
		filter := application.ProductFilter{
			Query:    query.Get("q"),
			Category: common.FilterParam(query.Get("category")),
			Store:    common.FilterParam(query.Get("store")),
			Brand:    common.FilterParam(query.Get("brand")),
		}
		products, err := h.products.List(ctx, filter)
		if err != nil {
			h.writeLookupError(w, err, "products")
			return
		}

		payload := make([]productResponse, 0, len(products))
		for _, product := range products {
			payload = append(payload, productDomainToResponse(product))
		}
		common.WriteJSON(h.log, w, http.StatusOK, payload)
	}
}

func (h *Handler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		product, err := h.products.Detail(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLookupError(w, err, "product")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, productDomainToResponse(*product))
	}
}

// ListProductCategories returns the category histogram used by the
// category filter and the dashboard chart.
func (h *Handler) ListProductCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		categories, err := h.products.Categories(ctx)
		if err != nil {
			h.writeLookupError(w, err, "categories")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, categories)
	}
}

// ListStoreNames returns the distinct store names found across product
// price maps, for the store filter dropdown.
func (h *Handler) ListStoreNames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		names, err := h.products.StoreNames(ctx)
		if err != nil {
			h.writeLookupError(w, err, "store names")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, names)
	}
}
