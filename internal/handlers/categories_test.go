package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/models"
)

func TestCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the category list", func(t *testing.T) {
		mockSvc := NewMockCategoriesLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.CategoryDB{
				{CategoryID: 1, Slug: models.SlugCars, Name: "Автомобили"},
				{CategoryID: 2, Slug: models.SlugRealEstate, Name: "Недвижимость"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()
		NewCategoriesHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var categories []models.CategoryDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
		assert.Len(t, categories, 2)
		assert.Equal(t, models.SlugCars, categories[0].Slug)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc := NewMockCategoriesLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()
		NewCategoriesHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockCategoriesLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()
		NewCategoriesHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
