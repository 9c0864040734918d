package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns all categories ordered by id.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, slug, name
		FROM categories
		ORDER BY category_id
	`

	var categories []models.CategoryDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &categories, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

// GetByID returns the category with the given id, or nil if it does not exist.
func (r *CategoryReadRepository) GetByID(ctx context.Context, categoryID int64) (*models.CategoryDB, error) {
	const query = `SELECT category_id, slug, name FROM categories WHERE category_id = $1`

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &category, query, categoryID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// GetBySlug returns the category with the given slug, or nil if it does not exist.
func (r *CategoryReadRepository) GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error) {
	const query = `SELECT category_id, slug, name FROM categories WHERE slug = $1`

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &category, query, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

// SaveIfAbsent inserts a category unless one with the same slug already exists.
func (r *CategoryWriteRepository) SaveIfAbsent(ctx context.Context, slug, name string) error {
	const query = `
		INSERT INTO categories (slug, name)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO NOTHING
	`
	args := []any{slug, name}

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
