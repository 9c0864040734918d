package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MemberResolver resolves a token subject to an existing member.
type MemberResolver interface {
	GetByID(ctx context.Context, memberID uuid.UUID) (*models.MemberDB, error)
}

// AuthMiddleware returns a middleware that verifies the bearer token, checks
// it is an access token, resolves its subject to a member, and binds that
// member as the request principal. Every failure is a terminal 401.
func AuthMiddleware(tokener Tokener, members MemberResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, err.Error())
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, err.Error())
				return
			}

			if claims.Type != jwt.TypeAccess {
				logger.Log.Errorw("authorization failed", "err", "wrong token type", "type", claims.Type)
				writeUnauthorized(w, "wrong token type")
				return
			}

			memberID, err := claims.MemberID()
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, "invalid token subject")
				return
			}

			member, err := members.GetByID(ctx, memberID)
			if err != nil {
				logger.Log.Errorw("failed to resolve principal", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if member == nil {
				logger.Log.Errorw("authorization failed", "err", "member not found", "member_id", memberID)
				writeUnauthorized(w, "member not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetPrincipalToContext(ctx, member)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// principalKey is an unexported type for the principal context key
type principalKey struct{}

var principalCtxKey = principalKey{}

// SetPrincipalToContext stores the authenticated member in the context
func SetPrincipalToContext(ctx context.Context, member *models.MemberDB) context.Context {
	return context.WithValue(ctx, principalCtxKey, member)
}

// GetPrincipalFromContext retrieves the authenticated member from the context.
// Returns an error if the request was not authenticated.
func GetPrincipalFromContext(ctx context.Context) (*models.MemberDB, error) {
	member, _ := ctx.Value(principalCtxKey).(*models.MemberDB)
	if member == nil {
		return nil, errors.New("no principal bound to request")
	}
	return member, nil
}
