package business

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pitabwire/util"

	"github.com/fieldsync/service-locations/service/geo"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/observability"
	"github.com/fieldsync/service-locations/service/repository"
)

// ProximityConfig holds tunable parameters for proximity queries.
type ProximityConfig struct {
	DefaultRadiusM    float64
	MaxRadiusM        float64
	DefaultMaxResults int
	MaxResultsCeiling int
}

// Proximity defaults used when config values are zero. The default radius and
// result count are part of the API contract: consumers rely on them when they
// omit the parameters.
const (
	defaultProximityRadiusM    = 5000.0
	defaultProximityMaxRadiusM = 50000.0
	defaultProximityMaxResults = 10
	maxProximityResultsCeiling = 100
)

type proximityBusiness struct {
	locationRepo repository.LocationRepository
	metrics      *observability.Metrics
	cfg          ProximityConfig
}

// NewProximityBusiness creates a new ProximityBusiness with configurable parameters.
func NewProximityBusiness(
	locationRepo repository.LocationRepository,
	metrics *observability.Metrics,
	cfg ProximityConfig,
) ProximityBusiness {
	if cfg.DefaultRadiusM <= 0 {
		cfg.DefaultRadiusM = defaultProximityRadiusM
	}
	if cfg.MaxRadiusM <= 0 {
		cfg.MaxRadiusM = defaultProximityMaxRadiusM
	}
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = defaultProximityMaxResults
	}
	if cfg.MaxResultsCeiling <= 0 {
		cfg.MaxResultsCeiling = maxProximityResultsCeiling
	}

	return &proximityBusiness{
		locationRepo: locationRepo,
		metrics:      metrics,
		cfg:          cfg,
	}
}

// ByCoordinates returns the location whose geofence contains the query point.
// All validation happens before any candidate is fetched or any distance is
// computed. An empty result is (nil, nil), distinct from a validation failure.
func (b *proximityBusiness) ByCoordinates(
	ctx context.Context,
	req *models.ByCoordinatesRequest,
) (*models.ContainingLocationAPI, error) {
	log := util.Log(ctx)
	start := time.Now()
	ctx, span := b.metrics.StartSpan(ctx, "ByCoordinates")
	var spanErr error
	defer func() { b.metrics.EndSpan(ctx, span, spanErr) }()

	if req == nil {
		spanErr = errors.New("request is nil")
		return nil, spanErr
	}
	if err := geo.ValidateLatLng(req.Latitude, req.Longitude); err != nil {
		spanErr = err
		return nil, err
	}

	candidates, err := b.locationRepo.GetCandidatesWithCoordinates(ctx)
	if err != nil {
		spanErr = fmt.Errorf("fetch candidate locations: %w", err)
		return nil, spanErr
	}

	match, distance, err := findContainingLocation(ctx, req.Latitude, req.Longitude, candidates)
	if err != nil {
		spanErr = err
		return nil, err
	}

	b.metrics.RecordContainmentQuery(ctx, time.Since(start), match != nil)

	if match == nil {
		log.Debug("containment query found no covering geofence",
			"lat", req.Latitude,
			"lng", req.Longitude,
			"candidates", len(candidates),
		)
		return nil, nil
	}

	return &models.ContainingLocationAPI{
		Location:       match.ToAPI(),
		DistanceMeters: distance,
	}, nil
}

// Nearby returns locations within the requested radius of the point, ordered
// by ascending distance with the location ID as the deterministic tie-break.
func (b *proximityBusiness) Nearby(
	ctx context.Context,
	req *models.NearbyLocationsRequest,
) ([]*models.NearbyLocationAPI, error) {
	log := util.Log(ctx)
	start := time.Now()
	ctx, span := b.metrics.StartSpan(ctx, "Nearby")
	var spanErr error
	defer func() { b.metrics.EndSpan(ctx, span, spanErr) }()

	if req == nil {
		spanErr = errors.New("request is nil")
		return nil, spanErr
	}
	if err := geo.ValidateLatLng(req.Latitude, req.Longitude); err != nil {
		spanErr = err
		return nil, err
	}

	radiusMeters := req.RadiusMeters
	if radiusMeters == 0 {
		radiusMeters = b.cfg.DefaultRadiusM
	}
	if err := geo.ValidateRadius(radiusMeters); err != nil {
		spanErr = err
		return nil, err
	}
	if radiusMeters > b.cfg.MaxRadiusM {
		spanErr = fmt.Errorf("%w: radius_meters %f exceeds maximum %f",
			geo.ErrInvalidArgument, radiusMeters, b.cfg.MaxRadiusM)
		return nil, spanErr
	}

	maxResults := int(req.MaxResults)
	if maxResults == 0 {
		maxResults = b.cfg.DefaultMaxResults
	}
	if maxResults < 0 {
		spanErr = fmt.Errorf("%w: max_results must be positive, got %d", geo.ErrInvalidArgument, maxResults)
		return nil, spanErr
	}
	if maxResults > b.cfg.MaxResultsCeiling {
		spanErr = fmt.Errorf("%w: max_results %d exceeds maximum %d",
			geo.ErrInvalidArgument, maxResults, b.cfg.MaxResultsCeiling)
		return nil, spanErr
	}

	candidates, err := b.locationRepo.GetCandidatesWithCoordinates(ctx)
	if err != nil {
		spanErr = fmt.Errorf("fetch candidate locations: %w", err)
		return nil, spanErr
	}

	ranked, err := findNearbyLocations(ctx, req.Latitude, req.Longitude, radiusMeters, maxResults, candidates)
	if err != nil {
		spanErr = err
		return nil, err
	}

	log.Debug("nearby query completed",
		"lat", req.Latitude,
		"lng", req.Longitude,
		"radius_m", radiusMeters,
		"results", len(ranked),
	)
	b.metrics.RecordNearbyQuery(ctx, time.Since(start), len(ranked))

	apiResults := make([]*models.NearbyLocationAPI, 0, len(ranked))
	for _, r := range ranked {
		apiResults = append(apiResults, &models.NearbyLocationAPI{
			Location:       r.location.ToAPI(),
			DistanceMeters: r.distanceMeters,
		})
	}
	return apiResults, nil
}

// locationDistance pairs a candidate with its computed distance to the query point.
type locationDistance struct {
	location       *models.Location
	distanceMeters float64
}

// findContainingLocation is the pure containment test. It considers only
// candidates with a geofence and retains those whose own radius covers the
// query point. Under overlap the smallest distance-to-center wins; equal
// distances fall back to the smaller location ID so repeated runs agree.
// Returns (nil, 0, nil) when no geofence contains the point.
func findContainingLocation(
	ctx context.Context,
	lat, lng float64,
	candidates []*models.Location,
) (*models.Location, float64, error) {
	var best *models.Location
	var bestDistance float64

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !candidate.HasGeofence() {
			continue
		}

		distance, err := geo.Distance(lat, lng, *candidate.Latitude, *candidate.Longitude)
		if err != nil {
			return nil, 0, fmt.Errorf("distance to location %s: %w", candidate.GetID(), err)
		}
		if distance > *candidate.GeofenceRadiusM {
			continue
		}

		switch {
		case best == nil:
			best = candidate
			bestDistance = distance
		case distance < bestDistance:
			best = candidate
			bestDistance = distance
		case distance == bestDistance && candidate.GetID() < best.GetID():
			best = candidate
		}
	}

	return best, bestDistance, nil
}

// findNearbyLocations is the pure radius search. Candidates only need
// coordinates; their own geofence radius is irrelevant here since the search
// uses the caller-supplied radius. Results are sorted ascending by distance
// with the location ID as the secondary key, then truncated to maxResults.
func findNearbyLocations(
	ctx context.Context,
	lat, lng, radiusMeters float64,
	maxResults int,
	candidates []*models.Location,
) ([]locationDistance, error) {
	matches := make([]locationDistance, 0, len(candidates))

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !candidate.HasCoordinates() {
			continue
		}

		distance, err := geo.Distance(lat, lng, *candidate.Latitude, *candidate.Longitude)
		if err != nil {
			return nil, fmt.Errorf("distance to location %s: %w", candidate.GetID(), err)
		}
		if distance > radiusMeters {
			continue
		}

		matches = append(matches, locationDistance{location: candidate, distanceMeters: distance})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distanceMeters != matches[j].distanceMeters {
			return matches[i].distanceMeters < matches[j].distanceMeters
		}
		return matches[i].location.GetID() < matches[j].location.GetID()
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches, nil
}
