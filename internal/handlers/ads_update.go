package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// AdUpdater defines the interface that the ad service must implement.
type AdUpdater interface {
	Update(ctx context.Context, principalID, adID uuid.UUID, patch models.AdUpdate) (*models.AdView, error)
}

// AdUpdateRequest represents the JSON body for a partial ad update. Absent
// fields are left unchanged. Any author value in the payload is ignored.
// swagger:model AdUpdateRequest
type AdUpdateRequest struct {
	// Title
	Title *string `json:"title"`

	// Description
	Description *string `json:"description"`

	// Price, non-negative with two decimal places
	Price *decimal.Decimal `json:"price"`

	// Contact info
	ContactInfo *string `json:"contact_info"`

	// Active flag
	IsActive *bool `json:"is_active"`

	// Category id (highest priority reference)
	Category *int64 `json:"category"`

	// Category id (alternative reference)
	CategoryID *int64 `json:"category_id"`

	// Category slug (lowest priority reference)
	CategorySlug *string `json:"category_slug"`
}

func (req *AdUpdateRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Title != nil && *req.Title == "" {
		errs["title"] = "title must not be empty"
	}
	if req.Price != nil && req.Price.IsNegative() {
		errs["price"] = "price must not be negative"
	}
	return errs
}

func (req *AdUpdateRequest) categoryRef() models.CategoryRef {
	switch {
	case req.Category != nil:
		return models.CategoryByID(*req.Category)
	case req.CategoryID != nil:
		return models.CategoryByID(*req.CategoryID)
	case req.CategorySlug != nil:
		return models.CategoryBySlug(*req.CategorySlug)
	}
	return models.CategoryRef{}
}

// NewAdsUpdateHandler returns an HTTP handler for updating an ad. Only the
// author may update it.
// @Summary Update an ad
// @Description Partial update of an ad, allowed only for its author
// @Tags ads
// @Accept json
// @Produce json
// @Param id path string true "Ad id"
// @Param adUpdateRequest body handlers.AdUpdateRequest true "Ad update request"
// @Success 200 {object} models.AdView "Updated ad"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Ad or category not found"
// @Router /ads/{id} [put]
// @Security BearerAuth
func NewAdsUpdateHandler(svc AdUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		adID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			return
		}

		var req AdUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if errs := req.validate(); len(errs) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: errs})
			return
		}

		view, err := svc.Update(r.Context(), member.MemberID, adID, models.AdUpdate{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			ContactInfo: req.ContactInfo,
			IsActive:    req.IsActive,
			Category:    req.categoryRef(),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ad not found"})
			case errors.Is(err, services.ErrNotAdAuthor):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the author can modify this ad"})
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Category not found"})
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
