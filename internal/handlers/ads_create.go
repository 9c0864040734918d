package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

// AdCreator defines the interface that the ad service must implement.
type AdCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, in models.AdCreate) (*models.AdView, error)
}

// AdCreateRequest represents the JSON body for creating an ad. The category
// is resolved from the first present field of category, category_id,
// category_slug. Any author value in the payload is ignored.
// swagger:model AdCreateRequest
type AdCreateRequest struct {
	// Title
	// required: true
	// default: Family sedan
	Title string `json:"title"`

	// Description
	// required: true
	Description string `json:"description"`

	// Price, non-negative with two decimal places
	// required: true
	// default: 12500.00
	Price decimal.Decimal `json:"price"`

	// Contact info
	// required: true
	// default: call after 6pm
	ContactInfo string `json:"contact_info"`

	// Category id (highest priority reference)
	Category *int64 `json:"category"`

	// Category id (alternative reference)
	CategoryID *int64 `json:"category_id"`

	// Category slug (lowest priority reference)
	// default: cars
	CategorySlug *string `json:"category_slug"`
}

func (req *AdCreateRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Title == "" {
		errs["title"] = "title is required"
	}
	if req.Description == "" {
		errs["description"] = "description is required"
	}
	if req.ContactInfo == "" {
		errs["contact_info"] = "contact_info is required"
	}
	if req.Price.IsNegative() {
		errs["price"] = "price must not be negative"
	}
	return errs
}

// categoryRef builds the tagged category reference, honoring the priority
// order category > category_id > category_slug.
func (req *AdCreateRequest) categoryRef() models.CategoryRef {
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

// NewAdsCreateHandler returns an HTTP handler for creating an ad.
// @Summary Create an ad
// @Description Creates an ad authored by the authenticated member. The author cannot be spoofed.
// @Tags ads
// @Accept json
// @Produce json
// @Param adCreateRequest body handlers.AdCreateRequest true "Ad create request"
// @Success 201 {object} models.AdView "Created ad"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request or missing category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /ads [post]
// @Security BearerAuth
func NewAdsCreateHandler(svc AdCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		member, err := middlewares.GetPrincipalFromContext(r.Context())
		if err != nil {
			logger.Log.Errorw("no principal on protected route", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AdCreateRequest
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

		view, err := svc.Create(r.Context(), member.MemberID, models.AdCreate{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			ContactInfo: req.ContactInfo,
			Category:    req.categoryRef(),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorResponse{
					Errors: map[string]string{"category": "one of category, category_id, category_slug is required"},
				})
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(view)
	}
}
