package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"

	"github.com/fieldsync/service-locations/service/models"
)

type coordinateChangeRepository struct {
	datastore.BaseRepository[*models.CoordinateChange]
}

// NewCoordinateChangeRepository creates a new repository for the coordinate
// audit trail.
func NewCoordinateChangeRepository(
	ctx context.Context,
	dbPool pool.Pool,
	workMan workerpool.Manager,
) CoordinateChangeRepository {
	return &coordinateChangeRepository{
		BaseRepository: datastore.NewBaseRepository[*models.CoordinateChange](
			ctx, dbPool, workMan, func() *models.CoordinateChange { return &models.CoordinateChange{} },
		),
	}
}

// GetByLocation returns audit entries for a location, newest first.
func (r *coordinateChangeRepository) GetByLocation(
	ctx context.Context,
	locationID string,
	from, to *time.Time,
	limit, offset int,
) ([]*models.CoordinateChange, error) {
	var changes []*models.CoordinateChange

	db := r.Pool().DB(ctx, true)
	query := db.Where("location_id = ?", locationID)
	if from != nil {
		query = query.Where("changed_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("changed_at <= ?", *to)
	}
	result := query.Order("changed_at DESC").Limit(limit).Offset(offset).Find(&changes)
	if result.Error != nil {
		return nil, fmt.Errorf("get coordinate changes for location %s: %w", locationID, result.Error)
	}
	return changes, nil
}
