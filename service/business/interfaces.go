//go:generate mockgen -source=interfaces.go -destination=mocks/business_mock.go -package=mocks
package business

import (
	"context"

	"github.com/fieldsync/service-locations/service/models"
)

// LocationBusiness handles location CRUD and coordinate mutations with
// validation and event emission.
type LocationBusiness interface {
	CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationAPI, error)
	UpdateLocation(ctx context.Context, req *models.UpdateLocationRequest) (*models.LocationAPI, error)
	DeleteLocation(ctx context.Context, locationID string) error
	GetLocation(ctx context.Context, locationID string) (*models.LocationAPI, error)
	SearchLocations(ctx context.Context, query string, ownerID string, limit int) ([]*models.LocationAPI, error)

	// UpdateCoordinates atomically replaces the location's coordinate tuple.
	// Setting requires both latitude and longitude; partial updates are rejected.
	UpdateCoordinates(ctx context.Context, req *models.UpdateCoordinatesRequest) (*models.LocationAPI, error)
	// ClearCoordinates atomically removes the coordinate tuple and geofence.
	ClearCoordinates(ctx context.Context, locationID string) (*models.LocationAPI, error)
	// GetCoordinateHistory returns the location's coordinate audit trail,
	// newest first.
	GetCoordinateHistory(ctx context.Context, locationID string, limit, offset int) ([]*models.CoordinateChangeAPI, error)
}

// ProximityBusiness answers spatial queries against the tenant's registered
// locations.
type ProximityBusiness interface {
	// ByCoordinates returns the location whose geofence contains the given
	// point, or nil when no geofence covers it. Under overlapping geofences the
	// location closest to its own center wins. A nil result is a normal
	// outcome, not an error.
	ByCoordinates(ctx context.Context, req *models.ByCoordinatesRequest) (*models.ContainingLocationAPI, error)
	// Nearby returns locations within the requested radius of the point,
	// ordered by ascending distance and truncated to the requested count.
	Nearby(ctx context.Context, req *models.NearbyLocationsRequest) ([]*models.NearbyLocationAPI, error)
}

// CustomerBusiness handles customer CRUD with validation and event emission.
type CustomerBusiness interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerAPI, error)
	UpdateCustomer(ctx context.Context, req *models.UpdateCustomerRequest) (*models.CustomerAPI, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	GetCustomer(ctx context.Context, customerID string) (*models.CustomerAPI, error)
	SearchCustomers(ctx context.Context, query string, ownerID string, limit int) ([]*models.CustomerAPI, error)
}
