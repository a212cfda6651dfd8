package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	donationadapters "donation_backend/internal/feature/donations/adapters"
	"donation_backend/internal/feature/donations/usecase"
	"donation_backend/internal/platform/cache"
)

// NewDonationRepository creates a DonationRepository implementation.
// If Redis is available, the MySQL repository is wrapped with the caching
// decorator. Otherwise, reads go straight to MySQL.
func NewDonationRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.DonationRepository {
	repo := donationadapters.NewDonationRepository(db)
	if rdb != nil {
		return cache.NewCachingDonationRepository(rdb, ttl, repo, "donations")
	}
	return repo
}
