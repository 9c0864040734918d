package services

import (
	"context"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

// seedCategories is the fixed category set created at bootstrap.
var seedCategories = []struct {
	slug string
	name string
}{
	{models.SlugCars, "Автомобили"},
	{models.SlugRealEstate, "Недвижимость"},
}

// CategoryLister defines read operations for the category list.
type CategoryLister interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryCache caches the category list.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.CategoryDB, error)
	Set(ctx context.Context, categories []models.CategoryDB) error
}

// CategorySeeder inserts categories idempotently.
type CategorySeeder interface {
	SaveIfAbsent(ctx context.Context, slug, name string) error
}

// CategoryService serves the fixed category list with a read-through cache
// and seeds it at startup.
type CategoryService struct {
	reader CategoryLister
	cache  CategoryCache
	seeder CategorySeeder
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader CategoryLister, cache CategoryCache, seeder CategorySeeder) *CategoryService {
	return &CategoryService{
		reader: reader,
		cache:  cache,
		seeder: seeder,
	}
}

// List returns all categories, preferring the cache. Cache failures fall
// through to the store; cache refresh is best-effort.
func (svc *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err != nil {
			logger.Log.Errorw("category cache read failed", "err", err)
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	categories, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}

	if svc.cache != nil && len(categories) > 0 {
		if err := svc.cache.Set(ctx, categories); err != nil {
			logger.Log.Errorw("category cache write failed", "err", err)
		}
	}

	return categories, nil
}

// Seed inserts the fixed category set if absent. The store may not be
// migrated yet at boot, so the first failure stops the pass and is returned
// for logging; startup proceeds regardless.
func (svc *CategoryService) Seed(ctx context.Context) error {
	for _, c := range seedCategories {
		if err := svc.seeder.SaveIfAbsent(ctx, c.slug, c.name); err != nil {
			logger.Log.Errorw("failed to seed category", "slug", c.slug, "err", err)
			return err
		}
	}
	return nil
}
