package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/services"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRefresher)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"refresh":"refresh-token"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "refresh-token").
					Return("new-access", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "expired token",
			body: `{"refresh":"expired"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "expired").
					Return("", jwt.ErrTokenExpired)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "malformed token",
			body: `{"refresh":"garbage"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "garbage").
					Return("", jwt.ErrTokenMalformed)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "access token submitted",
			body: `{"refresh":"access-token"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "access-token").
					Return("", services.ErrWrongTokenType)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "member deleted",
			body: `{"refresh":"orphan"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "orphan").
					Return("", services.ErrMemberNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid json",
			body:         `{invalid}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: `{"refresh":"refresh-token"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "refresh-token").
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRefresher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRefreshHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp RefreshResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "new-access", resp.Access)
			}
		})
	}
}
