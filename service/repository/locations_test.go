package repository_test

import (
	"context"
	"testing"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/frametests/definition"
	"github.com/stretchr/testify/suite"

	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/repository"
	"github.com/fieldsync/service-locations/tests"
)

type LocationRepositoryTestSuite struct {
	tests.LocationsBaseTestSuite
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}

func (ts *LocationRepositoryTestSuite) getRepo(
	ctx context.Context,
	svc *frame.Service,
) repository.LocationRepository {
	workMan := svc.WorkManager()
	dbPool := svc.DatastoreManager().GetPool(ctx, datastore.DefaultPoolName)
	return repository.NewLocationRepository(ctx, dbPool, workMan)
}

func f64(v float64) *float64 { return &v }

func (ts *LocationRepositoryTestSuite) seedLocation(
	ctx context.Context,
	repo repository.LocationRepository,
	name string,
	state int32,
	lat, lng *float64,
) *models.Location {
	loc := &models.Location{
		OwnerID:   "owner_test",
		Name:      name,
		State:     state,
		Latitude:  lat,
		Longitude: lng,
	}
	loc.GenID(ctx)
	err := repo.Create(ctx, loc)
	ts.Require().NoError(err)
	return loc
}

func (ts *LocationRepositoryTestSuite) TestGetCandidatesWithCoordinates() {
	ts.WithTestDependencies(ts.T(), func(t *testing.T, dep *definition.DependencyOption) {
		ctx, svc := ts.CreateService(t, dep)
		repo := ts.getRepo(ctx, svc)

		withCoords := ts.seedLocation(ctx, repo, "Active With Coords", models.StateActive, f64(34.01), f64(-84.38))
		ts.seedLocation(ctx, repo, "Active Without Coords", models.StateActive, nil, nil)
		ts.seedLocation(ctx, repo, "Inactive With Coords", models.StateInactive, f64(10), f64(10))
		ts.seedLocation(ctx, repo, "Deleted With Coords", models.StateDeleted, f64(20), f64(20))

		candidates, err := repo.GetCandidatesWithCoordinates(ctx)
		ts.Require().NoError(err)

		ts.Require().Len(candidates, 1)
		ts.Equal(withCoords.GetID(), candidates[0].GetID())
	})
}

func (ts *LocationRepositoryTestSuite) TestCoordinatesSurviveRoundTrip() {
	ts.WithTestDependencies(ts.T(), func(t *testing.T, dep *definition.DependencyOption) {
		ctx, svc := ts.CreateService(t, dep)
		repo := ts.getRepo(ctx, svc)

		// Eight fractional digits must survive the decimal column round-trip.
		seeded := ts.seedLocation(ctx, repo, "Precision Check", models.StateActive,
			f64(34.01003001), f64(-84.38529612))

		loaded, err := repo.GetByID(ctx, seeded.GetID())
		ts.Require().NoError(err)
		ts.Require().NotNil(loaded.Latitude)
		ts.Require().NotNil(loaded.Longitude)
		ts.InDelta(34.01003001, *loaded.Latitude, 1e-8)
		ts.InDelta(-84.38529612, *loaded.Longitude, 1e-8)
	})
}

func (ts *LocationRepositoryTestSuite) TestSearchByOwner() {
	ts.WithTestDependencies(ts.T(), func(t *testing.T, dep *definition.DependencyOption) {
		ctx, svc := ts.CreateService(t, dep)
		repo := ts.getRepo(ctx, svc)

		ts.seedLocation(ctx, repo, "First", models.StateActive, nil, nil)
		ts.seedLocation(ctx, repo, "Second", models.StateActive, nil, nil)

		results, err := repo.SearchByOwner(ctx, "owner_test", 10)
		ts.Require().NoError(err)
		ts.Len(results, 2)

		none, err := repo.SearchByOwner(ctx, "owner_other", 10)
		ts.Require().NoError(err)
		ts.Empty(none)
	})
}
