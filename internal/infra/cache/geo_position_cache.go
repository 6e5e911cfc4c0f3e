package cache

import (
	"context"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// geoKey is the sorted set backing the GEO index. Members are user id
// strings; Redis stores the coordinate as the member's score.
const geoKey = "geo:positions"

// geoPositionCache implements repository.PositionCache on a Redis GEO set.
type geoPositionCache struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewGeoPositionCache is the constructor for geoPositionCache.
func NewGeoPositionCache(client *redis.Client, cfg *config.Config) repository.PositionCache {
	return &geoPositionCache{
		client:    client,
		opTimeout: cfg.Redis.OpTimeout,
	}
}

// Upsert sets the cached coordinate for a user. GEOADD replaces the member's
// previous coordinate, so repeated updates never grow the set.
func (cache *geoPositionCache) Upsert(ctx context.Context, position *entity.UserPosition) error {
	ctx, cancel := context.WithTimeout(ctx, cache.opTimeout)
	defer cancel()

	if err := cache.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      position.UserID.String(),
		Longitude: position.Longitude,
		Latitude:  position.Latitude,
	}).Err(); err != nil {
		return errors.Wrap(err, "failed to upsert cached position")
	}

	return nil
}

// SearchRadius returns cached user ids within radiusMeters of the center,
// nearest first. Members whose names fail to parse as UUIDs are skipped;
// they can only appear through manual writes to the key.
func (cache *geoPositionCache) SearchRadius(ctx context.Context, longitude, latitude, radiusMeters float64, limit int) ([]repository.CacheHit, error) {
	ctx, cancel := context.WithTimeout(ctx, cache.opTimeout)
	defer cancel()

	locations, err := cache.client.GeoSearchLocation(ctx, geoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  longitude,
			Latitude:   latitude,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithDist: true,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cached positions")
	}

	hits := make([]repository.CacheHit, 0, len(locations))
	for _, loc := range locations {
		userID, parseErr := uuid.Parse(loc.Name)
		if parseErr != nil {
			continue
		}
		hits = append(hits, repository.CacheHit{
			UserID:         userID,
			DistanceMeters: loc.Dist,
		})
	}

	return hits, nil
}

// Remove drops a user's entry from the index.
func (cache *geoPositionCache) Remove(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, cache.opTimeout)
	defer cancel()

	if err := cache.client.ZRem(ctx, geoKey, userID.String()).Err(); err != nil {
		return errors.Wrap(err, "failed to remove cached position")
	}

	return nil
}
