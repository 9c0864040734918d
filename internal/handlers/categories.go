package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// CategoriesLister defines the interface that the category service must implement.
type CategoriesLister interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// NewCategoriesHandler returns an HTTP handler listing the fixed category set.
// @Summary List categories
// @Description Returns the fixed category list
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "Categories"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /categories [get]
func NewCategoriesHandler(svc CategoriesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		categories, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if categories == nil {
			categories = []models.CategoryDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}
