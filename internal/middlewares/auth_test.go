package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

func accessClaims(memberID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{
		Type: jwt.TypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject: memberID.String(),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	memberID := uuid.New()
	member := &models.MemberDB{MemberID: memberID, Username: "alice"}

	tests := []struct {
		name          string
		mockSetup     func(tokener *MockTokener, members *MockMemberResolver)
		expectedCode  int
		expectedError string
		wantPrincipal bool
	}{
		{
			name: "no authorization header",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoAuthHeader)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: jwt.ErrNoAuthHeader.Error(),
		},
		{
			name: "malformed token",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("garbage", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "garbage").
					Return(nil, jwt.ErrTokenMalformed)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: jwt.ErrTokenMalformed.Error(),
		},
		{
			name: "expired token",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("expired", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "expired").
					Return(nil, jwt.ErrTokenExpired)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: jwt.ErrTokenExpired.Error(),
		},
		{
			name: "refresh token rejected",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				claims := accessClaims(memberID)
				claims.Type = jwt.TypeRefresh
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("refresh", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "refresh").
					Return(claims, nil)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "wrong token type",
		},
		{
			name: "member not found",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(accessClaims(memberID), nil)
				members.EXPECT().
					GetByID(gomock.Any(), memberID).
					Return(nil, nil)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "member not found",
		},
		{
			name: "resolver error",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(accessClaims(memberID), nil)
				members.EXPECT().
					GetByID(gomock.Any(), memberID).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "success binds principal",
			mockSetup: func(tokener *MockTokener, members *MockMemberResolver) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token").
					Return(accessClaims(memberID), nil)
				members.EXPECT().
					GetByID(gomock.Any(), memberID).
					Return(member, nil)
			},
			expectedCode:  http.StatusOK,
			wantPrincipal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockTokener(ctrl)
			members := NewMockMemberResolver(ctrl)
			tt.mockSetup(tokener, members)

			var gotPrincipal *models.MemberDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = GetPrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(tokener, members)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}

			if tt.wantPrincipal {
				assert.Equal(t, member, gotPrincipal)
			} else {
				assert.Nil(t, gotPrincipal)
			}
		})
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	member, err := GetPrincipalFromContext(req.Context())
	assert.Error(t, err)
	assert.Nil(t, member)
}
