package business

import (
	"context"
	"testing"

	"github.com/pitabwire/frame/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/service-locations/service/geo"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/observability"
	"github.com/fieldsync/service-locations/service/repository"
)

func f64(v float64) *float64 { return &v }

// stubLocationRepo serves a fixed candidate set. Only the candidate query is
// implemented; the embedded interface covers the rest of the repository surface.
type stubLocationRepo struct {
	repository.LocationRepository
	candidates []*models.Location
	err        error
}

func (s *stubLocationRepo) GetCandidatesWithCoordinates(_ context.Context) ([]*models.Location, error) {
	return s.candidates, s.err
}

func newLocation(id string, lat, lng float64, radiusM *float64) *models.Location {
	return &models.Location{
		BaseModel:       data.BaseModel{ID: id},
		Name:            id,
		State:           models.StateActive,
		Latitude:        &lat,
		Longitude:       &lng,
		GeofenceRadiusM: radiusM,
	}
}

func newProximityForTest(t *testing.T, candidates []*models.Location) ProximityBusiness {
	t.Helper()
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	repo := &stubLocationRepo{candidates: candidates}
	return NewProximityBusiness(repo, observability.NewMetrics(), ProximityConfig{})
}

// Warehouse fixture used across containment tests. Geofence radius 300m around
// a point in Alpharetta, GA.
func warehouseCandidates() []*models.Location {
	return []*models.Location{
		newLocation("loc_warehouse", 34.01003, -84.385296, f64(300)),
		newLocation("loc_store_downtown", 41.8781, -87.6298, f64(150)),
		newLocation("loc_office_no_fence", 34.0105, -84.3850, nil),
	}
}

func TestByCoordinatesExactCenter(t *testing.T) {
	biz := newProximityForTest(t, warehouseCandidates())

	match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  34.01003,
		Longitude: -84.385296,
	})
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "loc_warehouse", match.Location.ID)
	assert.Zero(t, match.DistanceMeters)
}

func TestByCoordinatesOutsideAllGeofences(t *testing.T) {
	biz := newProximityForTest(t, warehouseCandidates())

	// About 1.2km from the warehouse center, well outside its 300m geofence.
	match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  34.02,
		Longitude: -84.39,
	})
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestByCoordinatesIgnoresLocationsWithoutGeofence(t *testing.T) {
	// The only candidate near the point has coordinates but no geofence.
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_no_fence", 34.0105, -84.3850, nil),
	})

	match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  34.0105,
		Longitude: -84.3850,
	})
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestByCoordinatesOverlappingGeofencesClosestCenterWins(t *testing.T) {
	// Both geofences contain the query point; the second center is closer.
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_big", 34.0110, -84.3850, f64(2000)),
		newLocation("loc_small", 34.0101, -84.3851, f64(2000)),
	})

	match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  34.0100,
		Longitude: -84.3851,
	})
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "loc_small", match.Location.ID)
}

func TestByCoordinatesEqualDistanceTieBreaksOnID(t *testing.T) {
	// Two geofence centers at the identical point. The smaller ID must win,
	// and repeated runs must agree regardless of candidate order.
	a := newLocation("loc_a", 34.0100, -84.3850, f64(500))
	b := newLocation("loc_b", 34.0100, -84.3850, f64(500))

	for _, candidates := range [][]*models.Location{{a, b}, {b, a}} {
		biz := newProximityForTest(t, candidates)

		match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
			Latitude:  34.0101,
			Longitude: -84.3850,
		})
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "loc_a", match.Location.ID)
	}
}

func TestByCoordinatesRejectsInvalidPoint(t *testing.T) {
	biz := newProximityForTest(t, nil)

	_, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  91,
		Longitude: 0,
	})
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestByCoordinatesEmptyCandidateSet(t *testing.T) {
	biz := newProximityForTest(t, nil)

	match, err := biz.ByCoordinates(context.Background(), &models.ByCoordinatesRequest{
		Latitude:  0,
		Longitude: 0,
	})
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestNearbyOrderingAndDistances(t *testing.T) {
	// Candidates at increasing distance north of the query point.
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_far", 0.0270, 0, nil),    // ~3km
		newLocation("loc_near", 0.0090, 0, nil),   // ~1km
		newLocation("loc_middle", 0.0180, 0, nil), // ~2km
		newLocation("loc_out", 0.0900, 0, nil),    // ~10km, outside radius
	})

	results, err := biz.Nearby(context.Background(), &models.NearbyLocationsRequest{
		Latitude:     0,
		Longitude:    0,
		RadiusMeters: 5000,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "loc_near", results[0].Location.ID)
	assert.Equal(t, "loc_middle", results[1].Location.ID)
	assert.Equal(t, "loc_far", results[2].Location.ID)

	// Distances accompany each result and are ascending.
	assert.InDelta(t, 1000, results[0].DistanceMeters, 10)
	assert.InDelta(t, 2000, results[1].DistanceMeters, 10)
	assert.InDelta(t, 3000, results[2].DistanceMeters, 10)
}

func TestNearbyEqualDistanceTieBreaksOnID(t *testing.T) {
	// Same point east and west of the query, exactly equidistant.
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_west", 0, -0.009, nil),
		newLocation("loc_east", 0, 0.009, nil),
	})

	results, err := biz.Nearby(context.Background(), &models.NearbyLocationsRequest{
		Latitude:  0,
		Longitude: 0,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "loc_east", results[0].Location.ID)
	assert.Equal(t, "loc_west", results[1].Location.ID)
}

func TestNearbyTruncatesToMaxResults(t *testing.T) {
	candidates := make([]*models.Location, 0, 10)
	for i := range 10 {
		lat := 0.0009 * float64(i+1)
		candidates = append(candidates, newLocation(locID(i), lat, 0, nil))
	}
	biz := newProximityForTest(t, candidates)

	results, err := biz.Nearby(context.Background(), &models.NearbyLocationsRequest{
		Latitude:     0,
		Longitude:    0,
		RadiusMeters: 5000,
		MaxResults:   3,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// The three closest, in order.
	assert.Equal(t, locID(0), results[0].Location.ID)
	assert.Equal(t, locID(1), results[1].Location.ID)
	assert.Equal(t, locID(2), results[2].Location.ID)
}

func locID(i int) string {
	return string(rune('a'+i)) + "_loc"
}

func TestNearbyDefaultsApply(t *testing.T) {
	// One candidate inside the 5000m default radius, one outside it.
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_inside", 0.0400, 0, nil),  // ~4.4km
		newLocation("loc_outside", 0.0600, 0, nil), // ~6.7km
	})

	results, err := biz.Nearby(context.Background(), &models.NearbyLocationsRequest{
		Latitude:  0,
		Longitude: 0,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "loc_inside", results[0].Location.ID)
}

func TestNearbyEmptyResultIsNotAnError(t *testing.T) {
	biz := newProximityForTest(t, []*models.Location{
		newLocation("loc_far_away", 41.8781, -87.6298, nil),
	})

	results, err := biz.Nearby(context.Background(), &models.NearbyLocationsRequest{
		Latitude:  0,
		Longitude: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbyRejectsBadArguments(t *testing.T) {
	biz := newProximityForTest(t, nil)

	testCases := []struct {
		name    string
		req     *models.NearbyLocationsRequest
		wantErr error
	}{
		{
			name:    "invalid latitude",
			req:     &models.NearbyLocationsRequest{Latitude: -91, Longitude: 0},
			wantErr: geo.ErrInvalidCoordinate,
		},
		{
			name:    "negative radius",
			req:     &models.NearbyLocationsRequest{RadiusMeters: -10},
			wantErr: geo.ErrInvalidArgument,
		},
		{
			name:    "radius above maximum",
			req:     &models.NearbyLocationsRequest{RadiusMeters: 60000},
			wantErr: geo.ErrInvalidArgument,
		},
		{
			name:    "negative max results",
			req:     &models.NearbyLocationsRequest{MaxResults: -1},
			wantErr: geo.ErrInvalidArgument,
		},
		{
			name:    "max results above ceiling",
			req:     &models.NearbyLocationsRequest{MaxResults: 101},
			wantErr: geo.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := biz.Nearby(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFindContainingLocationCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := findContainingLocation(ctx, 0, 0, warehouseCandidates())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindNearbyLocationsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := findNearbyLocations(ctx, 0, 0, 5000, 10, warehouseCandidates())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindNearbyLocationsSkipsCandidatesWithoutCoordinates(t *testing.T) {
	noCoords := &models.Location{BaseModel: data.BaseModel{ID: "loc_bare"}}
	withCoords := newLocation("loc_here", 0, 0, nil)

	matches, err := findNearbyLocations(
		context.Background(), 0, 0, 5000, 10,
		[]*models.Location{noCoords, withCoords},
	)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "loc_here", matches[0].location.GetID())
}
