package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

const adViewColumns = `
	a.ad_id, a.title, a.description, a.price, a.contact_info,
	a.created_at, a.updated_at, a.is_active,
	c.category_id, c.slug AS category_slug, c.name AS category_name,
	m.member_id AS author_id, m.username AS author_username, m.email AS author_email,
	m.phone AS author_phone, m.about AS author_about, m.joined_at AS author_joined_at
`

const adViewFrom = `
	FROM ads a
	JOIN categories c ON c.category_id = a.category_id
	JOIN members m ON m.member_id = a.author_id
`

// adViewRow is the flat scan target for the joined ad view.
type adViewRow struct {
	AdID           uuid.UUID       `db:"ad_id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Price          decimal.Decimal `db:"price"`
	ContactInfo    string          `db:"contact_info"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	IsActive       bool            `db:"is_active"`
	CategoryID     int64           `db:"category_id"`
	CategorySlug   string          `db:"category_slug"`
	CategoryName   string          `db:"category_name"`
	AuthorID       uuid.UUID       `db:"author_id"`
	AuthorUsername string          `db:"author_username"`
	AuthorEmail    string          `db:"author_email"`
	AuthorPhone    *string         `db:"author_phone"`
	AuthorAbout    string          `db:"author_about"`
	AuthorJoinedAt time.Time       `db:"author_joined_at"`
}

func (row *adViewRow) toView() models.AdView {
	return models.AdView{
		AdID:        row.AdID,
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		ContactInfo: row.ContactInfo,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		IsActive:    row.IsActive,
		Category: models.CategoryDB{
			CategoryID: row.CategoryID,
			Slug:       row.CategorySlug,
			Name:       row.CategoryName,
		},
		Author: models.MemberPublic{
			MemberID: row.AuthorID,
			Username: row.AuthorUsername,
			Email:    row.AuthorEmail,
			Phone:    row.AuthorPhone,
			About:    row.AuthorAbout,
			JoinedAt: row.AuthorJoinedAt,
		},
	}
}

// orderings whitelists the accepted ordering values. Anything else falls back
// to newest-first.
var orderings = map[string]string{
	"price":       "a.price ASC",
	"-price":      "a.price DESC",
	"created_at":  "a.created_at ASC",
	"-created_at": "a.created_at DESC",
}

type AdReadRepository struct {
	db *sqlx.DB
}

func NewAdReadRepository(db *sqlx.DB) *AdReadRepository {
	return &AdReadRepository{db: db}
}

// List returns the ads matching every filter in the conjunction, ordered as
// requested.
func (r *AdReadRepository) List(ctx context.Context, filter models.AdFilter) ([]models.AdView, error) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.CategoryID != nil {
		add("a.category_id = $%d", *filter.CategoryID)
	}
	if filter.CategorySlug != nil {
		add("c.slug = $%d", *filter.CategorySlug)
	}
	if filter.MinPrice != nil {
		add("a.price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("a.price <= $%d", *filter.MaxPrice)
	}
	if filter.DateFrom != nil {
		if filter.DateFrom.DateOnly {
			add("a.created_at::date >= $%d::date", filter.DateFrom.Time)
		} else {
			add("a.created_at >= $%d", filter.DateFrom.Time)
		}
	}
	if filter.DateTo != nil {
		if filter.DateTo.DateOnly {
			add("a.created_at::date <= $%d::date", filter.DateTo.Time)
		} else {
			add("a.created_at <= $%d", filter.DateTo.Time)
		}
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(a.title ILIKE '%%' || $%d || '%%' OR a.description ILIKE '%%' || $%d || '%%')", n, n))
	}
	if filter.OnlyActive {
		where = append(where, "a.is_active = TRUE")
	}
	if filter.AuthorID != nil {
		add("a.author_id = $%d", *filter.AuthorID)
	}

	query := "SELECT " + adViewColumns + adViewFrom
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	orderBy, ok := orderings[filter.Ordering]
	if !ok {
		orderBy = orderings["-created_at"]
	}
	query += " ORDER BY " + orderBy

	var rows []adViewRow
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	views := make([]models.AdView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].toView())
	}
	return views, nil
}

// GetByID returns the joined view of an ad, or nil if it does not exist.
func (r *AdReadRepository) GetByID(ctx context.Context, adID uuid.UUID) (*models.AdView, error) {
	query := "SELECT " + adViewColumns + adViewFrom + " WHERE a.ad_id = $1"

	var row adViewRow
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, adID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{adID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	view := row.toView()
	return &view, nil
}

type AdWriteRepository struct {
	db *sqlx.DB
}

func NewAdWriteRepository(db *sqlx.DB) *AdWriteRepository {
	return &AdWriteRepository{db: db}
}

// Save inserts a new ad; created_at and updated_at are store-assigned.
func (r *AdWriteRepository) Save(ctx context.Context, ad *models.AdDB) error {
	const query = `
		INSERT INTO ads (ad_id, title, description, price, category_id, contact_info, author_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{ad.AdID, ad.Title, ad.Description, ad.Price, ad.CategoryID, ad.ContactInfo, ad.AuthorID, ad.IsActive}

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

// Update rewrites the mutable columns of an ad and refreshes updated_at.
func (r *AdWriteRepository) Update(ctx context.Context, ad *models.AdDB) error {
	const query = `
		UPDATE ads
		SET title = $2, description = $3, price = $4, category_id = $5,
		    contact_info = $6, is_active = $7, updated_at = NOW()
		WHERE ad_id = $1
	`
	args := []any{ad.AdID, ad.Title, ad.Description, ad.Price, ad.CategoryID, ad.ContactInfo, ad.IsActive}

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

// Delete removes an ad.
func (r *AdWriteRepository) Delete(ctx context.Context, adID uuid.UUID) error {
	const query = `DELETE FROM ads WHERE ad_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, adID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{adID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
