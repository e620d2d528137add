package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"store-api/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultTTL = 5 * time.Minute
)

// ProductCache is a read-through Redis cache for catalog reads. List entries
// are keyed under a version counter; bumping the version on any catalog
// write invalidates every cached list at once. A nil client disables
// caching entirely.
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{redis: client, ttl: defaultTTL}
}

// GetProduct returns the cached product detail, if present.
func (pc *ProductCache) GetProduct(ctx context.Context, id uint) (*models.Product, bool) {
	if pc == nil || pc.redis == nil {
		return nil, false
	}

	data, err := pc.redis.Get(ctx, productCachePrefix+strconv.FormatUint(uint64(id), 10)).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		zap.L().Warn("Failed to unmarshal cached product", zap.Error(err))
		return nil, false
	}
	return &product, true
}

// SetProduct caches a product detail.
func (pc *ProductCache) SetProduct(ctx context.Context, product *models.Product) {
	if pc == nil || pc.redis == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		zap.L().Warn("Failed to marshal product for cache", zap.Error(err))
		return
	}

	key := productCachePrefix + strconv.FormatUint(uint64(product.ID), 10)
	if err := pc.redis.Set(ctx, key, data, pc.ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache product", zap.Error(err))
	}
}

// GetList returns a cached catalog page for the given query key.
func (pc *ProductCache) GetList(ctx context.Context, queryKey string) (json.RawMessage, bool) {
	if pc == nil || pc.redis == nil {
		return nil, false
	}

	version, err := pc.getVersion(ctx)
	if err != nil {
		return nil, false
	}

	data, err := pc.redis.Get(ctx, pc.listKey(version, queryKey)).Result()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(data), true
}

// SetList caches a catalog page under the current cache version.
func (pc *ProductCache) SetList(ctx context.Context, queryKey string, payload interface{}) {
	if pc == nil || pc.redis == nil {
		return
	}

	version, err := pc.getVersion(ctx)
	if err != nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
		return
	}

	if err := pc.redis.Set(ctx, pc.listKey(version, queryKey), data, pc.ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache product list", zap.Error(err))
	}
}

// Invalidate drops the detail entry for id and bumps the list version.
func (pc *ProductCache) Invalidate(ctx context.Context, id uint) {
	if pc == nil || pc.redis == nil {
		return
	}

	if err := pc.redis.Del(ctx, productCachePrefix+strconv.FormatUint(uint64(id), 10)).Err(); err != nil {
		zap.L().Warn("Failed to delete product cache", zap.Error(err))
	}
	if err := pc.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
}

func (pc *ProductCache) listKey(version int64, queryKey string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, queryKey)
}

func (pc *ProductCache) getVersion(ctx context.Context) (int64, error) {
	version, err := pc.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := pc.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}
