package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

func (h *Handler) ListStores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		stores, err := h.stores.List(ctx)
		if err != nil {
			h.writeLookupError(w, err, "stores")
			return
		}

		payload := make([]storeResponse, 0, len(stores))
		for _, store := range stores {
			payload = append(payload, storeDomainToResponse(store))
		}
		common.WriteJSON(h.log, w, http.StatusOK, payload)
	}
}

func (h *Handler) GetStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		store, err := h.stores.Detail(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLookupError(w, err, "store")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, storeDomainToResponse(*store))
	}
}

func (h *Handler) CreateStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertStoreRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		store, err := h.stores.Create(ctx, storeCommand(req))
		if err != nil {
			h.writeLookupError(w, err, "store")
			return
		}
		common.WriteJSON(h.log, w, http.StatusCreated, storeDomainToResponse(*store))
	}
}

func (h *Handler) UpdateStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertStoreRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		store, err := h.stores.Update(ctx, chi.URLParam(r, "id"), storeCommand(req))
		if err != nil {
			h.writeLookupError(w, err, "store")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, storeDomainToResponse(*store))
	}
}

func (h *Handler) DeleteStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		if err := h.stores.Delete(ctx, chi.URLParam(r, "id")); err != nil {
			h.writeLookupError(w, err, "store")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func storeCommand(req upsertStoreRequest) application.UpsertStoreCommand {
	return application.UpsertStoreCommand{
		Name:      req.Nom,
		Address:   req.Adresse,
		City:      req.Ville,
		Country:   req.Pays,
		Email:     req.Mail,
		Phone:     req.Telephone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}
