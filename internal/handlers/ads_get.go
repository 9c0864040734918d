package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// AdGetter defines the interface that the ad service must implement.
type AdGetter interface {
	Get(ctx context.Context, adID uuid.UUID) (*models.AdView, error)
}

// NewAdsGetHandler returns an HTTP handler for fetching a single ad.
// @Summary Get an ad
// @Description Returns one ad with its category and the public author view
// @Tags ads
// @Produce json
// @Param id path string true "Ad id"
// @Success 200 {object} models.AdView "Ad"
// @Failure 404 {object} handlers.ErrorResponse "Ad not found"
// @Router /ads/{id} [get]
func NewAdsGetHandler(svc AdGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		adID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			return
		}

		view, err := svc.Get(r.Context(), adID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(view)
	}
}
