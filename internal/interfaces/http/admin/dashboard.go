package admin

import (
	"context"
	"net/http"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// DashboardStats returns the landing view aggregates in one response
// so the front end renders all cards and charts from a single fetch.
func (h *Handler) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		overview, err := h.dashboard.Overview(ctx)
		if err != nil {
			h.writeLookupError(w, err, "dashboard stats")
			return
		}

		stores := make([]storeResponse, 0, len(overview.Stores))
		for _, store := range overview.Stores {
			stores = append(stores, storeDomainToResponse(store))
		}
		common.WriteJSON(h.log, w, http.StatusOK, dashboardResponse{
			TotalUsers:           overview.TotalUsers,
			TotalProducts:        overview.TotalProducts,
			TotalReclamations:    overview.TotalReclamations,
			TotalStores:          overview.TotalStores,
			UsersOverTime:        overview.UsersOverTime,
			ReclamationsOverTime: overview.ReclamationsOverTime,
			ProductCategories:    overview.ProductCategories,
			Stores:               stores,
		})
	}
}
