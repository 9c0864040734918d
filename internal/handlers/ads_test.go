package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

func bytesReader(s string) *bytes.Buffer { return bytes.NewBufferString(s) }

func adView(adID, authorID uuid.UUID) *models.AdView {
	return &models.AdView{
		AdID:        adID,
		Title:       "Family sedan",
		Description: "one owner",
		Price:       decimal.NewFromInt(12500),
		ContactInfo: "call after 6pm",
		IsActive:    true,
		Category:    models.CategoryDB{CategoryID: 1, Slug: models.SlugCars, Name: "Автомобили"},
		Author:      models.MemberPublic{MemberID: authorID, Username: "john"},
	}
}

func TestAdsListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("passes the parsed filter and returns ads", func(t *testing.T) {
		mockSvc := NewMockAdLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter models.AdFilter) ([]models.AdView, error) {
				assert.Equal(t, "cars", *filter.CategorySlug)
				assert.Equal(t, "price", filter.Ordering)
				assert.True(t, filter.OnlyActive)
				return []models.AdView{*adView(uuid.New(), uuid.New())}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/ads?category=cars&ordering=price", nil)
		rr := httptest.NewRecorder()
		NewAdsListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var ads []models.AdView
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ads))
		assert.Len(t, ads, 1)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc := NewMockAdLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/ads", nil)
		rr := httptest.NewRecorder()
		NewAdsListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockAdLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/ads", nil)
		rr := httptest.NewRecorder()
		NewAdsListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAdsCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	member := &models.MemberDB{MemberID: authorID, Username: "john"}

	t.Run("author comes from the principal", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), authorID, gomock.Any()).
			DoAndReturn(func(_ interface{}, gotAuthor uuid.UUID, in models.AdCreate) (*models.AdView, error) {
				assert.Equal(t, models.CategoryRefBySlug, in.Category.Kind)
				assert.Equal(t, "cars", in.Category.Slug)
				return adView(uuid.New(), gotAuthor), nil
			})

		body := `{"title":"Family sedan","description":"one owner","price":"12500.00","contact_info":"call after 6pm","category_slug":"cars","author_id":"` + uuid.NewString() + `"}`
		req := withPrincipal(httptest.NewRequest(http.MethodPost, "/ads", bytes.NewBufferString(body)), member)
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var view models.AdView
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
		assert.Equal(t, authorID, view.Author.MemberID)
	})

	t.Run("category id takes priority over slug", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), authorID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, in models.AdCreate) (*models.AdView, error) {
				assert.Equal(t, models.CategoryRefByID, in.Category.Kind)
				assert.Equal(t, int64(2), in.Category.ID)
				return adView(uuid.New(), authorID), nil
			})

		body := `{"title":"t","description":"d","price":"1","contact_info":"c","category":2,"category_slug":"cars"}`
		req := withPrincipal(httptest.NewRequest(http.MethodPost, "/ads", bytesReader(body)), member)
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)

		body := `{"price":"-5"}`
		req := withPrincipal(httptest.NewRequest(http.MethodPost, "/ads", bytesReader(body)), member)
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ValidationErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "title")
		assert.Contains(t, resp.Errors, "description")
		assert.Contains(t, resp.Errors, "contact_info")
		assert.Contains(t, resp.Errors, "price")
	})

	t.Run("missing category", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), authorID, gomock.Any()).
			Return(nil, services.ErrCategoryRequired)

		body := `{"title":"t","description":"d","price":"1","contact_info":"c"}`
		req := withPrincipal(httptest.NewRequest(http.MethodPost, "/ads", bytesReader(body)), member)
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ValidationErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "category")
	})

	t.Run("unknown category", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), authorID, gomock.Any()).
			Return(nil, services.ErrCategoryNotFound)

		body := `{"title":"t","description":"d","price":"1","contact_info":"c","category_slug":"boats"}`
		req := withPrincipal(httptest.NewRequest(http.MethodPost, "/ads", bytesReader(body)), member)
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		mockSvc := NewMockAdCreator(ctrl)

		body := `{"title":"t","description":"d","price":"1","contact_info":"c","category_slug":"cars"}`
		req := httptest.NewRequest(http.MethodPost, "/ads", bytesReader(body))
		rr := httptest.NewRecorder()
		NewAdsCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdsGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adID := uuid.New()

	serve := func(svc AdGetter, path string) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Get("/ads/{id}", NewAdsGetHandler(svc))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr
	}

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockAdGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), adID).Return(adView(adID, uuid.New()), nil)

		rr := serve(mockSvc, "/ads/"+adID.String())
		assert.Equal(t, http.StatusOK, rr.Code)

		var view models.AdView
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
		assert.Equal(t, adID, view.AdID)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockAdGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), adID).Return(nil, services.ErrAdNotFound)

		rr := serve(mockSvc, "/ads/"+adID.String())
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-uuid id", func(t *testing.T) {
		mockSvc := NewMockAdGetter(ctrl)

		rr := serve(mockSvc, "/ads/not-a-uuid")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAdsUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adID := uuid.New()
	principalID := uuid.New()
	member := &models.MemberDB{MemberID: principalID, Username: "john"}

	serve := func(svc AdUpdater, path, body string, authenticated bool) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Put("/ads/{id}", NewAdsUpdateHandler(svc))
		req := httptest.NewRequest(http.MethodPut, path, bytesReader(body))
		if authenticated {
			req = withPrincipal(req, member)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("author updates", func(t *testing.T) {
		mockSvc := NewMockAdUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), principalID, adID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _, _ uuid.UUID, patch models.AdUpdate) (*models.AdView, error) {
				assert.Equal(t, "New title", *patch.Title)
				assert.Equal(t, models.CategoryRefNone, patch.Category.Kind)
				return adView(adID, principalID), nil
			})

		rr := serve(mockSvc, "/ads/"+adID.String(), `{"title":"New title"}`, true)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		mockSvc := NewMockAdUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), principalID, adID, gomock.Any()).
			Return(nil, services.ErrNotAdAuthor)

		rr := serve(mockSvc, "/ads/"+adID.String(), `{"title":"New title"}`, true)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("ad not found", func(t *testing.T) {
		mockSvc := NewMockAdUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), principalID, adID, gomock.Any()).
			Return(nil, services.ErrAdNotFound)

		rr := serve(mockSvc, "/ads/"+adID.String(), `{}`, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		mockSvc := NewMockAdUpdater(ctrl)

		rr := serve(mockSvc, "/ads/"+adID.String(), `{"price":"-1"}`, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		mockSvc := NewMockAdUpdater(ctrl)

		rr := serve(mockSvc, "/ads/"+adID.String(), `{}`, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdsDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adID := uuid.New()
	principalID := uuid.New()
	member := &models.MemberDB{MemberID: principalID, Username: "john"}

	serve := func(svc AdDeleter, path string, authenticated bool) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Delete("/ads/{id}", NewAdsDeleteHandler(svc))
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		if authenticated {
			req = withPrincipal(req, member)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("author deletes", func(t *testing.T) {
		mockSvc := NewMockAdDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), principalID, adID).Return(nil)

		rr := serve(mockSvc, "/ads/"+adID.String(), true)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not the author", func(t *testing.T) {
		mockSvc := NewMockAdDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), principalID, adID).Return(services.ErrNotAdAuthor)

		rr := serve(mockSvc, "/ads/"+adID.String(), true)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("ad not found", func(t *testing.T) {
		mockSvc := NewMockAdDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), principalID, adID).Return(services.ErrAdNotFound)

		rr := serve(mockSvc, "/ads/"+adID.String(), true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no principal", func(t *testing.T) {
		mockSvc := NewMockAdDeleter(ctrl)

		rr := serve(mockSvc, "/ads/"+adID.String(), false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMyAdsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principalID := uuid.New()
	member := &models.MemberDB{MemberID: principalID, Username: "john"}

	t.Run("lists own ads", func(t *testing.T) {
		mockSvc := NewMockMyAdsLister(ctrl)
		mockSvc.EXPECT().
			ListByAuthor(gomock.Any(), principalID).
			Return([]models.AdView{*adView(uuid.New(), principalID)}, nil)

		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/my/ads", nil), member)
		rr := httptest.NewRecorder()
		NewMyAdsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var ads []models.AdView
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ads))
		assert.Len(t, ads, 1)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc := NewMockMyAdsLister(ctrl)
		mockSvc.EXPECT().ListByAuthor(gomock.Any(), principalID).Return(nil, nil)

		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/my/ads", nil), member)
		rr := httptest.NewRecorder()
		NewMyAdsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("no principal", func(t *testing.T) {
		mockSvc := NewMockMyAdsLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/my/ads", nil)
		rr := httptest.NewRecorder()
		NewMyAdsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
