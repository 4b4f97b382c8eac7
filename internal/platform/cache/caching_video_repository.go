// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vidshare_backend/internal/feature/videos/domain/entity"
	"vidshare_backend/internal/feature/videos/usecase"
)

// CachingVideoRepository decorates a VideoRepository with Redis caching of
// the public feed. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository.
//
// Only ListPublic is cached: FindByID feeds the access-control decision and
// must always read the latest committed row. View counts inside a cached
// feed may lag briefly, which is acceptable staleness for a listing.
type CachingVideoRepository struct {
	inner     usecase.VideoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingVideoRepository implements VideoRepository.
var _ usecase.VideoRepository = (*CachingVideoRepository)(nil)

// NewCachingVideoRepository decorates a VideoRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "feed".
func NewCachingVideoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.VideoRepository, namespace string) *CachingVideoRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "feed"
	}
	return &CachingVideoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// feedKey generates the cache key for the public feed.
func (c *CachingVideoRepository) feedKey() string {
	return fmt.Sprintf("%s:public", c.namespace)
}

// Create persists the video and invalidates the feed cache so a fresh upload
// is visible on the next listing.
func (c *CachingVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	if err := c.inner.Create(ctx, video); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.feedKey()).Err() // Best effort: don't fail the upload on cache trouble
	}
	return nil
}

// FindByID always goes to the underlying repository; the row feeds access
// control and must never be served stale.
func (c *CachingVideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	return c.inner.FindByID(ctx, id)
}

// ListPublic retrieves the feed, checking cache first then falling back to
// the database.
func (c *CachingVideoRepository) ListPublic(ctx context.Context) ([]entity.Video, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListPublic(ctx)
	}

	key := c.feedKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Video
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
