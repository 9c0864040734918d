package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// AdLister defines the interface that the ad service must implement.
type AdLister interface {
	List(ctx context.Context, filter models.AdFilter) ([]models.AdView, error)
}

// NewAdsListHandler returns an HTTP handler for the public filtered ad listing.
// @Summary List ads
// @Description Lists active ads matching the filter conjunction. Unparseable price and date values are ignored.
// @Tags ads
// @Produce json
// @Param category query string false "Category slug or numeric id"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param date_from query string false "ISO date or datetime lower bound, inclusive"
// @Param date_to query string false "ISO date or datetime upper bound, inclusive"
// @Param search query string false "Case-insensitive substring over title and description"
// @Param ordering query string false "One of price, -price, created_at, -created_at"
// @Success 200 {array} models.AdView "Ads"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /ads [get]
func NewAdsListHandler(svc AdLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		filter := services.ParseAdFilter(r.URL.Query())

		ads, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to list ads", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if ads == nil {
			ads = []models.AdView{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ads)
	}
}
