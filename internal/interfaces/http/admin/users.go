package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// ListUsers returns the registered users, optionally narrowed by a
// free-text query over name, email, phone and location.
func (h *Handler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		filter := application.UserFilter{Query: r.URL.Query().Get("q")}
		users, err := h.users.List(ctx, filter)
		if err != nil {
			h.writeLookupError(w, err, "users")
			return
		}

		if limit := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); limit > 0 && limit < len(users) {
			users = users[:limit]
		}

		payload := make([]userResponse, 0, len(users))
		for _, user := range users {
			payload = append(payload, userDomainToResponse(user))
		}
		common.WriteJSON(h.log, w, http.StatusOK, payload)
	}
}

func (h *Handler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		user, err := h.users.Detail(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLookupError(w, err, "user")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, userDomainToResponse(*user))
	}
}

func (h *Handler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertUserRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		user, err := h.users.Create(ctx, application.UpsertUserCommand{
			Name:     req.Nom,
			Email:    req.Email,
			Phone:    req.Telephone,
			Location: req.Localisation,
		})
		if err != nil {
			h.writeLookupError(w, err, "user")
			return
		}
		common.WriteJSON(h.log, w, http.StatusCreated, userDomainToResponse(*user))
	}
}

func (h *Handler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertUserRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		user, err := h.users.Update(ctx, chi.URLParam(r, "id"), application.UpsertUserCommand{
			Name:     req.Nom,
			Email:    req.Email,
			Phone:    req.Telephone,
			Location: req.Localisation,
		})
		if err != nil {
			h.writeLookupError(w, err, "user")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, userDomainToResponse(*user))
	}
}

// BlockUser flips the blocked flag. Blocking is reversible and keeps
// the account and its complaint history intact.
func (h *Handler) BlockUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blockUserRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		id := chi.URLParam(r, "id")
		if err := h.users.SetBlocked(ctx, id, *req.IsBlocked); err != nil {
			h.writeLookupError(w, err, "user")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, map[string]any{
			"id":        id,
			"isBlocked": *req.IsBlocked,
		})
	}
}

func (h *Handler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		if err := h.users.Delete(ctx, chi.URLParam(r, "id")); err != nil {
			h.writeLookupError(w, err, "user")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListUserReclamations returns one user's complaints, oldest first.
func (h *Handler) ListUserReclamations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		reclamations, err := h.users.Reclamations(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLookupError(w, err, "user")
			return
		}

		payload := make([]reclamationResponse, 0, len(reclamations))
		for _, rec := range reclamations {
			payload = append(payload, reclamationDomainToResponse(rec))
		}
		common.WriteJSON(h.log, w, http.StatusOK, payload)
	}
}
