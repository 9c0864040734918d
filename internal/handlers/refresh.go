package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RefreshRequest represents the JSON body for the token exchange
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	Refresh string `json:"refresh"`
}

// RefreshResponse represents a successful token exchange
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Fresh access token
	Access string `json:"access"`
}

// NewRefreshHandler returns an HTTP handler for exchanging a refresh token
// for a fresh access token. Refresh tokens are never rotated on use.
// @Summary Refresh access token
// @Description Exchange a valid refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.RefreshResponse "Fresh access token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid, expired or wrong-type token"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired),
				errors.Is(err, jwt.ErrTokenMalformed),
				errors.Is(err, services.ErrWrongTokenType),
				errors.Is(err, services.ErrMemberNotFound):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RefreshResponse{Access: access})
	}
}
