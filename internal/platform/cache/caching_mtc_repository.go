// Package cache decorates the mtc repository with a Redis read cache for
// the listing queries, which carry most of the public traffic.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	courseusecase "mtc_backend/internal/feature/course/usecase"
	"mtc_backend/internal/feature/mtc/domain/entity"
	"mtc_backend/internal/feature/mtc/usecase"
	seederusecase "mtc_backend/internal/feature/seeder/usecase"
)

// MtcStore is everything the decorated repository must provide: the mtc
// usecase contract plus the slices the course usecase and the seeder use.
type MtcStore interface {
	usecase.MtcRepository
	courseusecase.MtcCatalog
	seederusecase.MtcStore
}

// CachingMtcRepository caches Count and List results and invalidates the
// whole namespace on every write, since sorting and the derived averages
// make per-row invalidation unreliable.
type CachingMtcRepository struct {
	inner     MtcStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ MtcStore = (*CachingMtcRepository)(nil)

// NewCachingMtcRepository decorates an MtcStore with a Redis cache.
// ttl<=0 falls back to 5 minutes; an empty namespace falls back to "mtcs".
func NewCachingMtcRepository(rdb *redis.Client, ttl time.Duration, inner MtcStore, namespace string) *CachingMtcRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "mtcs"
	}
	return &CachingMtcRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingMtcRepository) Count(ctx context.Context, q usecase.ListQuery) (int64, error) {
	if c.rdb == nil {
		return c.inner.Count(ctx, q)
	}

	key := c.countKey(q)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if total, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			return total, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	total, err := c.inner.Count(ctx, q)
	if err != nil {
		return 0, err
	}
	_ = c.rdb.Set(ctx, key, strconv.FormatInt(total, 10), c.ttl).Err()
	return total, nil
}

func (c *CachingMtcRepository) List(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, q)
	}

	key := c.listKey(q)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Mtc
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Reads below bypass the cache; they hit a primary-key or unique index.

func (c *CachingMtcRepository) FindByID(ctx context.Context, id string) (*entity.Mtc, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachingMtcRepository) FindByName(ctx context.Context, name string) (*entity.Mtc, error) {
	return c.inner.FindByName(ctx, name)
}

func (c *CachingMtcRepository) FindWithinBox(ctx context.Context, box usecase.BoundingBox) ([]entity.Mtc, error) {
	return c.inner.FindWithinBox(ctx, box)
}

func (c *CachingMtcRepository) Create(ctx context.Context, mtc *entity.Mtc) error {
	return c.writeThrough(ctx, func() error { return c.inner.Create(ctx, mtc) })
}

func (c *CachingMtcRepository) Update(ctx context.Context, mtc *entity.Mtc) error {
	return c.writeThrough(ctx, func() error { return c.inner.Update(ctx, mtc) })
}

func (c *CachingMtcRepository) Delete(ctx context.Context, id string) error {
	return c.writeThrough(ctx, func() error { return c.inner.Delete(ctx, id) })
}

func (c *CachingMtcRepository) UpdatePhoto(ctx context.Context, id, filename string) error {
	return c.writeThrough(ctx, func() error { return c.inner.UpdatePhoto(ctx, id, filename) })
}

func (c *CachingMtcRepository) UpdateAverageCost(ctx context.Context, id string, average *float64) error {
	return c.writeThrough(ctx, func() error { return c.inner.UpdateAverageCost(ctx, id, average) })
}

func (c *CachingMtcRepository) CreateBatch(ctx context.Context, mtcs []entity.Mtc) error {
	return c.writeThrough(ctx, func() error { return c.inner.CreateBatch(ctx, mtcs) })
}

func (c *CachingMtcRepository) DeleteAll(ctx context.Context) error {
	return c.writeThrough(ctx, func() error { return c.inner.DeleteAll(ctx) })
}

// writeThrough runs the write against the database first, then drops the
// cached listings. Invalidation failures never fail the write.
func (c *CachingMtcRepository) writeThrough(ctx context.Context, write func() error) error {
	if err := write(); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

func (c *CachingMtcRepository) listKey(q usecase.ListQuery) string {
	return fmt.Sprintf("%s:list:%s", c.namespace, queryFingerprint(q))
}

func (c *CachingMtcRepository) countKey(q usecase.ListQuery) string {
	return fmt.Sprintf("%s:count:%s", c.namespace, queryFingerprint(q))
}

func queryFingerprint(q usecase.ListQuery) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		safe(q.Search),
		safe(q.SortBy),
		safe(q.SortOrder),
		pageValue(q.Skip),
		pageValue(q.Take),
	)
}

func pageValue(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func (c *CachingMtcRepository) deleteByPattern(ctx context.Context, pattern string) error {
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

func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
