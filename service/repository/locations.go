package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"
	"gorm.io/gorm"

	"github.com/fieldsync/service-locations/service/models"
)

type locationRepository struct {
	datastore.BaseRepository[*models.Location]
}

// NewLocationRepository creates a new repository for locations.
func NewLocationRepository(ctx context.Context, dbPool pool.Pool, workMan workerpool.Manager) LocationRepository {
	return &locationRepository{
		BaseRepository: datastore.NewBaseRepository[*models.Location](
			ctx, dbPool, workMan, func() *models.Location { return &models.Location{} },
		),
	}
}

// GetCandidatesWithCoordinates returns the tenant's active, non-deleted,
// coordinate-bearing locations. Rows without coordinates never reach the
// proximity engine; the coordinate columns are decimal(10,8)/decimal(11,8)
// so values come back with all 8 fractional digits intact.
func (r *locationRepository) GetCandidatesWithCoordinates(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location

	db := r.Pool().DB(ctx, true)
	result := db.Where(
		"deleted_at IS NULL AND state = ? AND latitude IS NOT NULL AND longitude IS NOT NULL",
		models.StateActive,
	).Find(&locations)

	if result.Error != nil {
		return nil, fmt.Errorf("get candidate locations: %w", result.Error)
	}
	return locations, nil
}

// GetByCode returns the active location with the given code.
func (r *locationRepository) GetByCode(ctx context.Context, code string) (*models.Location, error) {
	var location models.Location

	db := r.Pool().DB(ctx, true)
	result := db.Where("code = ? AND deleted_at IS NULL", code).First(&location)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		return nil, fmt.Errorf("get location by code %q: %w", code, result.Error)
	}
	return &location, nil
}

// SearchByOwner returns locations owned by the given owner, with a limit.
func (r *locationRepository) SearchByOwner(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]*models.Location, error) {
	var locations []*models.Location
	db := r.Pool().DB(ctx, true)
	query := db.Where("owner_id = ? AND deleted_at IS NULL", ownerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&locations)
	if result.Error != nil {
		return nil, fmt.Errorf("search locations by owner %s: %w", ownerID, result.Error)
	}
	return locations, nil
}

// SearchByQuery performs text search on location name, code and address line.
// SQL wildcards in user input are escaped to prevent wildcard injection.
func (r *locationRepository) SearchByQuery(
	ctx context.Context,
	query string,
	limit int,
) ([]*models.Location, error) {
	var locations []*models.Location
	db := r.Pool().DB(ctx, true)
	likeQuery := "%" + escapeLikeWildcards(query) + "%"
	result := db.Where(
		"deleted_at IS NULL AND (name ILIKE ? OR code ILIKE ? OR address_line ILIKE ?)",
		likeQuery, likeQuery, likeQuery,
	).Order("created_at DESC").Limit(limit).Find(&locations)
	if result.Error != nil {
		return nil, fmt.Errorf("search locations by query %q: %w", query, result.Error)
	}
	return locations, nil
}

// escapeLikeWildcards escapes SQL LIKE/ILIKE special characters in user input.
// This prevents users from using % or _ as wildcards to enumerate data.
func escapeLikeWildcards(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
