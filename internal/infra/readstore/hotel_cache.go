package readstore

import (
	"context"
	"time"

	"hotel-backend/internal/usecase/shared"

	"github.com/patrickmn/go-cache"
)

const hotelDirectoryKey = "hotels"

type HotelDirectorySource interface {
	Directory(ctx context.Context) ([]shared.HotelSnapshot, error)
}

// CachedHotelDirectory keeps the hotel list in memory for ttl. Every
// provisioning run reads it, and hotels change rarely. A non-positive ttl
// disables caching.
type CachedHotelDirectory struct {
	source HotelDirectorySource
	cache  *cache.Cache
}

func NewCachedHotelDirectory(source HotelDirectorySource, ttl time.Duration) *CachedHotelDirectory {
	d := &CachedHotelDirectory{source: source}
	if ttl > 0 {
		d.cache = cache.New(ttl, 2*ttl)
	}
	return d
}

func (d *CachedHotelDirectory) Hotels(ctx context.Context) ([]shared.HotelSnapshot, error) {
	if d.cache == nil {
		return d.source.Directory(ctx)
	}
	if v, ok := d.cache.Get(hotelDirectoryKey); ok {
		return v.([]shared.HotelSnapshot), nil
	}

	hotels, err := d.source.Directory(ctx)
	if err != nil {
		return nil, err
	}
	d.cache.SetDefault(hotelDirectoryKey, hotels)
	return hotels, nil
}

func (d *CachedHotelDirectory) Invalidate() {
	if d.cache == nil {
		return
	}
	d.cache.Delete(hotelDirectoryKey)
}
