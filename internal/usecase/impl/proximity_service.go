package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/domain/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type proximityService struct {
	positionRepo  repository.PositionRepository
	profileRepo   repository.ProfileRepository
	positionCache repository.PositionCache
	presence      service.PresenceTracker
	cfg           *config.ProximityConfig
	logger        *slog.Logger
}

// NewProximityService creates a new proximity service instance
func NewProximityService(
	positionRepo repository.PositionRepository,
	profileRepo repository.ProfileRepository,
	positionCache repository.PositionCache,
	presence service.PresenceTracker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProximityUsecase {
	return &proximityService{
		positionRepo:  positionRepo,
		profileRepo:   profileRepo,
		positionCache: positionCache,
		presence:      presence,
		cfg:           cfg.Proximity,
		logger:        logger,
	}
}

// FindNearby runs the radius query around the viewer's own stored position.
func (s *proximityService) FindNearby(ctx context.Context, viewerID uuid.UUID, radiusMeters float64) ([]*entity.NearbyUser, error) {
	positions, err := s.positionRepo.FindPositionsByUsers(ctx, []uuid.UUID{viewerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load viewer position")
	}
	if len(positions) == 0 {
		return nil, repository.ErrPositionNotFound
	}
	viewerPos := positions[0]

	return s.FindNearbyAround(ctx, viewerID, viewerPos.Longitude, viewerPos.Latitude, radiusMeters, s.cfg.NearbyFreshness)
}

// FindNearbyAround is the core radius query. Candidates come from the geo
// cache when it answers; every hit is re-validated against the durable store
// because cached entries carry no freshness and may lag behind. When the
// cache fails or is cold the durable PostGIS query serves directly.
func (s *proximityService) FindNearbyAround(ctx context.Context, viewerID uuid.UUID, longitude, latitude, radiusMeters float64, freshness time.Duration) ([]*entity.NearbyUser, error) {
	if !entity.ValidCoordinate(longitude, latitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	if radiusMeters <= 0 {
		radiusMeters = s.cfg.DefaultRadiusMeters
	}
	if radiusMeters > s.cfg.MaxRadiusMeters {
		return nil, domainerrors.ErrRadiusTooLarge
	}

	now := time.Now().UTC()
	center := orb.Point{longitude, latitude}

	candidates, err := s.candidatePositions(ctx, center, radiusMeters, freshness, now)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []*entity.NearbyUser{}, nil
	}

	candidateIDs := make([]uuid.UUID, 0, len(candidates))
	for _, position := range candidates {
		candidateIDs = append(candidateIDs, position.UserID)
	}

	attrs, err := s.profileRepo.FindEligibilityByUsers(ctx, append(candidateIDs, viewerID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load eligibility attributes")
	}

	eligible := eligibleCandidates(viewerID, attrs[viewerID], candidateIDs, attrs, now)
	if len(eligible) == 0 {
		return []*entity.NearbyUser{}, nil
	}

	summaries, err := s.profileRepo.FindSummariesByUsers(ctx, eligible)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user summaries")
	}

	byUser := make(map[uuid.UUID]*entity.UserPosition, len(candidates))
	for _, position := range candidates {
		byUser[position.UserID] = position
	}

	results := make([]*entity.NearbyUser, 0, len(eligible))
	for _, userID := range eligible {
		summary, ok := summaries[userID]
		if !ok {
			continue
		}
		position := byUser[userID]

		results = append(results, &entity.NearbyUser{
			User:           *summary,
			Position:       *position,
			DistanceMeters: geo.Distance(center, position.Point()),
			IsOnline:       s.presence.IsOnline(userID),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if len(results) > s.cfg.ResultLimit {
		results = results[:s.cfg.ResultLimit]
	}

	return results, nil
}

// candidatePositions resolves the raw candidate set, cache first. Cached ids
// are re-read from the durable store; entries that vanished or went stale are
// dropped and evicted. A cache failure or a cold cache degrades to the
// durable spatial query, it never fails the request.
func (s *proximityService) candidatePositions(ctx context.Context, center orb.Point, radiusMeters float64, freshness time.Duration, now time.Time) ([]*entity.UserPosition, error) {
	hits, err := s.positionCache.SearchRadius(ctx, center.Lon(), center.Lat(), radiusMeters, s.cfg.ResultLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "geo cache search failed, falling back to durable store",
			slog.Any("error", err))

		return s.durableCandidates(ctx, center, radiusMeters, freshness, now)
	}
	if len(hits) == 0 {
		return s.durableCandidates(ctx, center, radiusMeters, freshness, now)
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.UserID)
	}

	positions, err := s.positionRepo.FindPositionsByUsers(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-validate cached positions")
	}

	found := make(map[uuid.UUID]struct{}, len(positions))
	validated := make([]*entity.UserPosition, 0, len(positions))
	for _, position := range positions {
		found[position.UserID] = struct{}{}
		if !position.IsFresh(now, freshness) {
			continue
		}
		// The durable coordinate is authoritative; the cached one may lag.
		if geo.Distance(center, position.Point()) > radiusMeters {
			continue
		}
		validated = append(validated, position)
	}

	// Evict cache entries whose durable row is gone.
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		if err := s.positionCache.Remove(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "failed to evict stale cache entry",
				slog.String("user_id", id.String()),
				slog.Any("error", err))
		}
	}

	return validated, nil
}

func (s *proximityService) durableCandidates(ctx context.Context, center orb.Point, radiusMeters float64, freshness time.Duration, now time.Time) ([]*entity.UserPosition, error) {
	positions, err := s.positionRepo.FindNearbyPositions(ctx, &repository.NearbyQuery{
		Longitude:    center.Lon(),
		Latitude:     center.Lat(),
		RadiusMeters: radiusMeters,
		FreshSince:   now.Add(-freshness),
		Limit:        s.cfg.ResultLimit,
	})
	if err != nil {
		return nil, domainerrors.ErrStoreReadFailed.WrapMessage(err.Error())
	}

	return positions, nil
}
