package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	mtcadapters "mtc_backend/internal/feature/mtc/adapters"
	"mtc_backend/internal/platform/cache"
)

// NewMtcStore creates the mtc persistence layer. If Redis is available the
// store is wrapped in the read-through list cache; otherwise queries go
// straight to the database.
func NewMtcStore(db *gorm.DB, rdb *redis.Client, ttl time.Duration) cache.MtcStore {
	store := mtcadapters.NewMtcPostgres(db)
	if rdb == nil {
		return store
	}
	return cache.NewCachingMtcRepository(rdb, ttl, store, "mtcs")
}
