package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// AdDeleter defines the interface that the ad service must implement.
type AdDeleter interface {
	Delete(ctx context.Context, principalID, adID uuid.UUID) error
}

// NewAdsDeleteHandler returns an HTTP handler for deleting an ad. Only the
// author may delete it.
// @Summary Delete an ad
// @Description Deletes an ad, allowed only for its author
// @Tags ads
// @Produce json
// @Param id path string true "Ad id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Ad not found"
// @Router /ads/{id} [delete]
// @Security BearerAuth
func NewAdsDeleteHandler(svc AdDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		adID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			return
		}

		if err := svc.Delete(r.Context(), member.MemberID, adID); err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrAdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			case errors.Is(err, services.ErrNotAdAuthor):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the author can modify this ad"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
