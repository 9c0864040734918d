package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, member *models.MemberDB, patch models.ProfileUpdate) (*models.MemberDB, error)
}

// ProfileUpdateRequest represents the JSON body for a partial profile update.
// Absent fields are left unchanged; username is immutable.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// Email
	// default: john@example.com
	Email *string `json:"email"`

	// Phone
	// default: +1-555-0100
	Phone *string `json:"phone"`

	// About
	About *string `json:"about"`
}

// NewProfileUpdateHandler returns an HTTP handler for updating the
// authenticated member's own profile.
// @Summary Update own profile
// @Description Partial update of email, phone and about. A changed email is re-checked for uniqueness.
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile update request"
// @Success 200 {object} models.MemberPublic "Updated profile"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Email already taken"
// @Router /profile/me [put]
// @Security BearerAuth
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if req.Email != nil {
			if _, err := mail.ParseAddress(*req.Email); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorResponse{
					Errors: map[string]string{"email": "email is not a valid address"},
				})
				return
			}
		}

		updated, err := svc.Update(r.Context(), member, models.ProfileUpdate{
			Email: req.Email,
			Phone: req.Phone,
			About: req.About,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email is already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated.Public())
	}
}
