package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/classifieds-api/internal/models"
)

func TestCategoryRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewCategoryWriteRepository(db)
	readRepo := NewCategoryReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.SaveIfAbsent(ctx, models.SlugCars, "Автомобили"))
	assert.NoError(t, writeRepo.SaveIfAbsent(ctx, models.SlugRealEstate, "Недвижимость"))

	t.Run("seeding is idempotent", func(t *testing.T) {
		assert.NoError(t, writeRepo.SaveIfAbsent(ctx, models.SlugCars, "Автомобили"))

		categories, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("list ordered by id", func(t *testing.T) {
		categories, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, models.SlugCars, categories[0].Slug)
		assert.Equal(t, models.SlugRealEstate, categories[1].Slug)
	})

	t.Run("get by slug", func(t *testing.T) {
		category, err := readRepo.GetBySlug(ctx, models.SlugRealEstate)
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, "Недвижимость", category.Name)
	})

	t.Run("get by id", func(t *testing.T) {
		bySlug, err := readRepo.GetBySlug(ctx, models.SlugCars)
		assert.NoError(t, err)

		byID, err := readRepo.GetByID(ctx, bySlug.CategoryID)
		assert.NoError(t, err)
		assert.Equal(t, bySlug, byID)
	})

	t.Run("unknown slug", func(t *testing.T) {
		category, err := readRepo.GetBySlug(ctx, "boats")
		assert.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("unknown id", func(t *testing.T) {
		category, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, category)
	})
}
