package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/classifieds-api/internal/logger"
	"github.com/sbilibin2017/classifieds-api/internal/models"
)

const categoriesCacheKey = "categories:all"

// CategoryCacheRepository caches the category list in Redis. Categories are
// immutable after seeding, so TTL expiry is the only invalidation.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewCategoryCacheRepository creates a new repository instance with the given TTL.
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached category list, or nil on a cache miss.
func (r *CategoryCacheRepository) Get(ctx context.Context) ([]models.CategoryDB, error) {
	val, err := r.client.Get(ctx, categoriesCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", categoriesCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var categories []models.CategoryDB
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		logger.Log.Infow(
			"key", categoriesCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", categoriesCacheKey,
		"result", len(categories),
		"error", nil,
	)

	return categories, nil
}

// Set caches the category list with the configured expiration.
func (r *CategoryCacheRepository) Set(ctx context.Context, categories []models.CategoryDB) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, categoriesCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", categoriesCacheKey,
		"result", len(categories),
		"error", err,
	)

	return err
}
