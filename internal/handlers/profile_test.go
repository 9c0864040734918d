package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/middlewares"
	"github.com/sbilibin2017/classifieds-api/internal/models"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

func withPrincipal(req *http.Request, member *models.MemberDB) *http.Request {
	return req.WithContext(middlewares.SetPrincipalToContext(req.Context(), member))
}

func TestProfileGetHandler(t *testing.T) {
	member := &models.MemberDB{
		MemberID:     uuid.New(),
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
	}

	t.Run("returns own profile", func(t *testing.T) {
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/profile/me", nil), member)
		rr := httptest.NewRecorder()
		NewProfileGetHandler()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.MemberPublic
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, member.MemberID, resp.MemberID)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("no principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
		rr := httptest.NewRecorder()
		NewProfileGetHandler()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProfileUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := &models.MemberDB{MemberID: uuid.New(), Username: "john", Email: "john@example.com"}

	tests := []struct {
		name          string
		body          string
		authenticated bool
		mockSetup     func(m *MockProfileUpdater)
		expectedCode  int
	}{
		{
			name:          "updates email",
			body:          `{"email":"new@example.com"}`,
			authenticated: true,
			mockSetup: func(m *MockProfileUpdater) {
				newEmail := "new@example.com"
				updated := *member
				updated.Email = newEmail
				m.EXPECT().
					Update(gomock.Any(), member, models.ProfileUpdate{Email: &newEmail}).
					Return(&updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "invalid email",
			body:          `{"email":"not-an-email"}`,
			authenticated: true,
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "email taken",
			body:          `{"email":"taken@example.com"}`,
			authenticated: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), member, gomock.Any()).
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:          "invalid json",
			body:          `{invalid}`,
			authenticated: true,
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:         "no principal",
			body:         `{"about":"hi"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "internal server error",
			body:          `{"about":"hi"}`,
			authenticated: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), member, gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPut, "/profile/me", bytes.NewBufferString(tt.body))
			if tt.authenticated {
				req = withPrincipal(req, member)
			}
			rr := httptest.NewRecorder()
			NewProfileUpdateHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.MemberPublic
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "new@example.com", resp.Email)
			}
		})
	}
}
