package repository

import (
	"context"
	"time"

	"github.com/pitabwire/frame/datastore"

	"github.com/fieldsync/service-locations/service/models"
)

// LocationRepository manages location persistence and candidate queries.
type LocationRepository interface {
	datastore.BaseRepository[*models.Location]
	// GetCandidatesWithCoordinates returns the caller-tenant's active,
	// non-deleted locations that have a coordinate pair assigned. Tenant
	// scoping is applied by the frame datastore pool; this query only adds
	// the state, soft-delete and coordinate-presence filters and must be the
	// sole source of candidates for proximity queries.
	GetCandidatesWithCoordinates(ctx context.Context) ([]*models.Location, error)
	// GetByCode returns the active location with the given code, if any.
	GetByCode(ctx context.Context, code string) (*models.Location, error)
	// SearchByOwner returns locations owned by the given owner ID with a limit.
	SearchByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Location, error)
	// SearchByQuery performs text search on location name, code and address.
	SearchByQuery(ctx context.Context, query string, limit int) ([]*models.Location, error)
}

// CustomerRepository manages customer persistence.
type CustomerRepository interface {
	datastore.BaseRepository[*models.Customer]
	// SearchByOwner returns customers owned by the given owner ID with a limit.
	SearchByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Customer, error)
	// SearchByQuery performs text search on customer name and email.
	SearchByQuery(ctx context.Context, query string, limit int) ([]*models.Customer, error)
}

// CoordinateChangeRepository manages the append-only coordinate audit trail.
type CoordinateChangeRepository interface {
	datastore.BaseRepository[*models.CoordinateChange]
	// GetByLocation returns audit entries for a location, newest first.
	GetByLocation(
		ctx context.Context,
		locationID string,
		from, to *time.Time,
		limit, offset int,
	) ([]*models.CoordinateChange, error)
}
