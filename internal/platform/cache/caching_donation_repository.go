// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"donation_backend/internal/feature/donations/domain/entity"
	"donation_backend/internal/feature/donations/usecase"
)

// CachingDonationRepository decorates a DonationRepository with Redis
// caching. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Reads are served
// from cache when possible; every write invalidates the namespace.
type CachingDonationRepository struct {
	inner     usecase.DonationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.DonationRepository = (*CachingDonationRepository)(nil)

// NewCachingDonationRepository decorates a DonationRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty,
// it uses "donations".
func NewCachingDonationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DonationRepository, namespace string) *CachingDonationRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "donations"
	}
	return &CachingDonationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a donation post and invalidates cached reads.
func (c *CachingDonationRepository) Create(ctx context.Context, d *entity.Donation) error {
	if err := c.inner.Create(ctx, d); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ListAll retrieves all donation posts, checking cache first then falling
// back to the database.
func (c *CachingDonationRepository) ListAll(ctx context.Context) ([]entity.Donation, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Donation
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves one donation post, checking cache first then falling
// back to the database. Misses from the database (ErrNotFound) are not
// cached.
func (c *CachingDonationRepository) FindByID(ctx context.Context, id uint) (*entity.Donation, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Donation
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// DeleteByID removes a donation post and invalidates cached reads.
func (c *CachingDonationRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	deleted, err := c.inner.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx)
	return deleted, nil
}

// invalidate drops every cache entry under the namespace.
// Best effort: a failed cache delete never fails the write.
func (c *CachingDonationRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// listKey generates the cache key for the full listing.
func (c *CachingDonationRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

// itemKey generates the cache key for a single donation post.
func (c *CachingDonationRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDonationRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
