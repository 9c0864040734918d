package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Error variables
var (
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenMalformed    = errors.New("token is malformed or has an invalid signature")
	ErrNoAuthHeader      = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format, expected 'Bearer <token>'")
)

// Claims is the decoded claim set of a signed token.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// MemberID returns the subject claim parsed as a member id.
func (c *Claims) MemberID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// JWT issues and verifies HS256-signed access and refresh tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// New creates a new JWT instance
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// GenerateAccess creates a signed access token for a given memberID.
func (j *JWT) GenerateAccess(ctx context.Context, memberID uuid.UUID) (string, error) {
	return j.generate(memberID, TypeAccess, j.AccessExp)
}

// GenerateRefresh creates a signed refresh token for a given memberID.
func (j *JWT) GenerateRefresh(ctx context.Context, memberID uuid.UUID) (string, error) {
	return j.generate(memberID, TypeRefresh, j.RefreshExp)
}

func (j *JWT) generate(memberID uuid.UUID, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if the signature
// is valid and the token has not expired.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	if _, err := claims.MemberID(); err != nil {
		return nil, ErrTokenMalformed
	}

	return &claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
