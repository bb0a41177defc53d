package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// ListReclamations returns every complaint across all users, newest
// first, optionally narrowed by query, sender and status.
func (h *Handler) ListReclamations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		query := r.URL.Query()
		status := strings.ToLower(common.FilterParam(query.Get("status")))
		if status != "" && status != application.StatusResolved && status != application.StatusPending {
			common.WriteError(h.log, w, http.StatusBadRequest, "status must be resolved or pending")
			return
		}

		filter := application.ReclamationFilter{
			Query:  query.Get("q"),
			Sender: common.FilterParam(query.Get("sender")),
			Status: status,
		}
		reclamations, err := h.reclamations.List(ctx, filter)
		if err != nil {
			h.writeLookupError(w, err, "reclamations")
			return
		}

		if limit := common.ParsePositiveInt(query.Get("limit"), 0); limit > 0 && limit < len(reclamations) {
			reclamations = reclamations[:limit]
		}

		payload := make([]reclamationResponse, 0, len(reclamations))
		for _, rec := range reclamations {
			payload = append(payload, reclamationDomainToResponse(rec))
		}
		common.WriteJSON(h.log, w, http.StatusOK, payload)
	}
}

func (h *Handler) ResolveReclamation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveReclamationRequest
		if !h.decode(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		userID := chi.URLParam(r, "userId")
		id := chi.URLParam(r, "id")
		if err := h.reclamations.Resolve(ctx, userID, id, *req.Resolved); err != nil {
			h.writeLookupError(w, err, "reclamation")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, map[string]any{
			"id":       id,
			"userId":   userID,
			"resolved": *req.Resolved,
		})
	}
}

func (h *Handler) DeleteReclamation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		if err := h.reclamations.Delete(ctx, chi.URLParam(r, "userId"), chi.URLParam(r, "id")); err != nil {
			h.writeLookupError(w, err, "reclamation")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ReclamationCharts returns the aggregates behind the complaints view:
// status split, top senders, volume over time and the sender dropdown.
func (h *Handler) ReclamationCharts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		charts, err := h.reclamations.Charts(ctx)
		if err != nil {
			h.writeLookupError(w, err, "reclamation charts")
			return
		}
		common.WriteJSON(h.log, w, http.StatusOK, reclamationChartsResponse{
			Status:     charts.Status,
			TopSenders: charts.TopSenders,
			OverTime:   charts.OverTime,
			Senders:    charts.Senders,
		})
	}
}
