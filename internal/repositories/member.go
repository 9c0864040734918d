package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

type MemberReadRepository struct {
	db *sqlx.DB
}

func NewMemberReadRepository(db *sqlx.DB) *MemberReadRepository {
	return &MemberReadRepository{db: db}
}

// GetByID returns the member with the given id, or nil if it does not exist.
func (r *MemberReadRepository) GetByID(ctx context.Context, memberID uuid.UUID) (*models.MemberDB, error) {
	const query = `
		SELECT member_id, username, email, phone, about, joined_at, password_hash
		FROM members
		WHERE member_id = $1
	`

	var member models.MemberDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &member, query, memberID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{memberID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// GetByIdentifier matches the identifier case-insensitively against usernames
// first, then against emails. Returns nil if nothing matches.
func (r *MemberReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.MemberDB, error) {
	const query = `
		SELECT member_id, username, email, phone, about, joined_at, password_hash
		FROM members
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		ORDER BY (LOWER(username) = LOWER($1)) DESC
		LIMIT 1
	`

	var member models.MemberDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &member, query, identifier)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{identifier},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// ExistsUsername reports whether a member with the given username exists,
// compared case-insensitively.
func (r *MemberReadRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM members WHERE LOWER(username) = LOWER($1))`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ExistsEmail reports whether a member with the given email exists, compared
// case-insensitively. A non-nil excludeID skips that member, which lets a
// member keep their own email on profile update.
func (r *MemberReadRepository) ExistsEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM members
			WHERE LOWER(email) = LOWER($1)
			  AND ($2::UUID IS NULL OR member_id <> $2)
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, email, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type MemberWriteRepository struct {
	db *sqlx.DB
}

func NewMemberWriteRepository(db *sqlx.DB) *MemberWriteRepository {
	return &MemberWriteRepository{db: db}
}

// Save inserts a new member and fills in the store-assigned joined_at.
func (r *MemberWriteRepository) Save(ctx context.Context, member *models.MemberDB) error {
	const query = `
		INSERT INTO members (member_id, username, email, phone, about, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING joined_at
	`
	args := []any{member.MemberID, member.Username, member.Email, member.Phone, member.About, member.PasswordHash}

	err := sqlx.GetContext(ctx, ext(ctx, r.db), &member.JoinedAt, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update rewrites the mutable profile columns of an existing member.
// Username and joined_at are immutable and never touched.
func (r *MemberWriteRepository) Update(ctx context.Context, member *models.MemberDB) error {
	const query = `
		UPDATE members
		SET email = $2, phone = $3, about = $4
		WHERE member_id = $1
	`
	args := []any{member.MemberID, member.Email, member.Phone, member.About}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
