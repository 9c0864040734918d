package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// MyAdsLister defines the interface that the ad service must implement.
type MyAdsLister interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.AdView, error)
}

// NewMyAdsHandler returns an HTTP handler listing the authenticated member's
// own ads, inactive ones included.
// @Summary List own ads
// @Description Returns the authenticated member's ads, newest first
// @Tags ads
// @Produce json
// @Success 200 {array} models.AdView "Own ads"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /my/ads [get]
// @Security BearerAuth
func NewMyAdsHandler(svc MyAdsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		ads, err := svc.ListByAuthor(r.Context(), member.MemberID)
		if err != nil {
			logger.Log.Errorw("failed to list own ads", "err", err)
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
