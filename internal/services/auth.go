package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/classifieds-api/internal/jwt"
	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrMemberNotFound     = errors.New("member not found")
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// MemberReader defines read-only operations for members.
type MemberReader interface {
	GetByID(ctx context.Context, memberID uuid.UUID) (*models.MemberDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.MemberDB, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	ExistsEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}

// MemberWriter defines write operations for members.
type MemberWriter interface {
	Save(ctx context.Context, member *models.MemberDB) error
	Update(ctx context.Context, member *models.MemberDB) error
}

// TokenIssuer defines an interface for issuing and verifying tokens.
type TokenIssuer interface {
	GenerateAccess(ctx context.Context, memberID uuid.UUID) (string, error)
	GenerateRefresh(ctx context.Context, memberID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and refresh-token exchange.
type AuthService struct {
	reader MemberReader
	writer MemberWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader MemberReader, writer MemberWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new member. Username and email uniqueness is checked
// case-insensitively up front; a concurrent duplicate that races past the
// check is caught by the store constraint and mapped to the same typed error.
func (svc *AuthService) Register(ctx context.Context, username, email string, phone *string, about, password string) (*models.MemberDB, error) {
	taken, err := svc.reader.ExistsUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if taken {
		logger.Log.Errorw("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	taken, err = svc.reader.ExistsEmail(ctx, email, nil)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if taken {
		logger.Log.Errorw("email already taken", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	member := &models.MemberDB{
		MemberID:     uuid.New(),
		Username:     username,
		Email:        email,
		Phone:        phone,
		About:        about,
		PasswordHash: string(hashedPassword),
	}

	if err := svc.writer.Save(ctx, member); err != nil {
		logger.Log.Errorw("failed to save member", "err", err)
		return nil, mapUniqueViolation(err)
	}

	return member, nil
}

// Login authenticates a member by username or email and returns an access
// and a refresh token. Every failure is the same generic error so callers
// cannot tell an unknown identifier from a wrong password.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (access, refresh string, member *models.MemberDB, err error) {
	member, err = svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get member", "err", err)
		return "", "", nil, err
	}
	if member == nil {
		logger.Log.Errorw("member does not exist", "identifier", identifier)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "identifier", identifier)
		return "", "", nil, ErrInvalidCredentials
	}

	access, err = svc.tokens.GenerateAccess(ctx, member.MemberID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", nil, err
	}

	refresh, err = svc.tokens.GenerateRefresh(ctx, member.MemberID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", nil, err
	}

	return access, refresh, member, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. Refresh
// tokens are never rotated or invalidated on use.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.tokens.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "err", err)
		return "", err
	}

	if claims.Type != jwt.TypeRefresh {
		logger.Log.Errorw("wrong token type for refresh", "type", claims.Type)
		return "", ErrWrongTokenType
	}

	memberID, err := claims.MemberID()
	if err != nil {
		logger.Log.Errorw("invalid refresh token subject", "err", err)
		return "", jwt.ErrTokenMalformed
	}

	member, err := svc.reader.GetByID(ctx, memberID)
	if err != nil {
		logger.Log.Errorw("failed to get member", "err", err)
		return "", err
	}
	if member == nil {
		logger.Log.Errorw("refresh for deleted member", "member_id", memberID)
		return "", ErrMemberNotFound
	}

	return svc.tokens.GenerateAccess(ctx, member.MemberID)
}

// mapUniqueViolation turns a store-level uniqueness violation into the typed
// error the pre-check would have produced.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return ErrUsernameTaken
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrEmailTaken
	}
	return err
}
