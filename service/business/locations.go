package business

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/pitabwire/frame/events"
	"github.com/pitabwire/util"

	"github.com/fieldsync/service-locations/service/geo"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/repository"
)

// LocationChangedEventName is the internal frame event name for location mutations.
const LocationChangedEventName = "location.changed"

// CoordinatesChangedEventName is the internal frame event name for coordinate
// tuple mutations. Consumed by the audit trail consumer.
const CoordinatesChangedEventName = "location.coordinates.changed"

const defaultSearchLimit = 50

type locationBusiness struct {
	eventsMan    events.Manager
	locationRepo repository.LocationRepository
	changeRepo   repository.CoordinateChangeRepository
}

// NewLocationBusiness creates a new LocationBusiness.
func NewLocationBusiness(
	eventsMan events.Manager,
	locationRepo repository.LocationRepository,
	changeRepo repository.CoordinateChangeRepository,
) LocationBusiness {
	return &locationBusiness{
		eventsMan:    eventsMan,
		locationRepo: locationRepo,
		changeRepo:   changeRepo,
	}
}

func (b *locationBusiness) CreateLocation(
	ctx context.Context,
	req *models.CreateLocationRequest,
) (*models.LocationAPI, error) {
	log := util.Log(ctx)

	if req == nil || req.Data == nil {
		return nil, errors.New("create location request data is nil")
	}

	apiData := req.Data

	if err := models.ValidateLocationName(apiData.Name); err != nil {
		return nil, fmt.Errorf("invalid location name: %w", err)
	}
	if err := models.ValidateLocationCode(apiData.Code); err != nil {
		return nil, fmt.Errorf("invalid location code: %w", err)
	}
	if apiData.OwnerID == "" {
		return nil, errors.New("owner_id is required")
	}

	location := &models.Location{
		OwnerID:     apiData.OwnerID,
		Name:        apiData.Name,
		Code:        apiData.Code,
		Description: apiData.Description,
		Type:        apiData.Type,
		AddressLine: apiData.AddressLine,
		City:        apiData.City,
		Country:     apiData.Country,
		State:       models.StateActive,
		Extras:      models.StructToJSONMap(apiData.Extras),
	}
	location.GenID(ctx)

	// Coordinates are optional at creation; when supplied the whole tuple is
	// validated and set at once.
	if apiData.Latitude != nil || apiData.Longitude != nil || apiData.GeofenceRadiusM != nil {
		if err := geo.ValidateCoordinateInput(apiData.Latitude, apiData.Longitude, apiData.GeofenceRadiusM); err != nil {
			return nil, err
		}
		if apiData.Latitude != nil {
			if err := location.SetCoordinates(*apiData.Latitude, *apiData.Longitude, apiData.GeofenceRadiusM); err != nil {
				return nil, err
			}
		}
	}

	if err := b.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	b.emitLocationChanged(ctx, location.GetID(), location.OwnerID, "created")
	if location.HasCoordinates() {
		b.emitCoordinatesChanged(ctx, location, nil, nil, nil)
	}

	log.Info("location created", "location_id", location.GetID(), "name", location.Name)
	return location.ToAPI(), nil
}

func (b *locationBusiness) UpdateLocation(
	ctx context.Context,
	req *models.UpdateLocationRequest,
) (*models.LocationAPI, error) {
	log := util.Log(ctx)

	if req == nil || req.ID == "" {
		return nil, errors.New("update location request requires an ID")
	}

	location, err := b.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	if req.Name != "" {
		if vErr := models.ValidateLocationName(req.Name); vErr != nil {
			return nil, fmt.Errorf("invalid location name: %w", vErr)
		}
		location.Name = req.Name
	}
	if req.Code != "" {
		if vErr := models.ValidateLocationCode(req.Code); vErr != nil {
			return nil, fmt.Errorf("invalid location code: %w", vErr)
		}
		location.Code = req.Code
	}
	if req.Description != "" {
		location.Description = req.Description
	}
	if req.Type != nil {
		location.Type = *req.Type
	}
	if req.AddressLine != "" {
		location.AddressLine = req.AddressLine
	}
	if req.City != "" {
		location.City = req.City
	}
	if req.Country != "" {
		location.Country = req.Country
	}
	if req.Extras != nil {
		existing := location.Extras
		if existing == nil {
			existing = models.StructToJSONMap(nil)
		}
		maps.Copy(existing, models.StructToJSONMap(req.Extras))
		location.Extras = existing
	}

	if _, err = b.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	persisted, err := b.locationRepo.GetByID(ctx, location.GetID())
	if err != nil {
		return nil, fmt.Errorf("reload updated location: %w", err)
	}

	b.emitLocationChanged(ctx, persisted.GetID(), persisted.OwnerID, "updated")

	log.Info("location updated", "location_id", persisted.GetID())
	return persisted.ToAPI(), nil
}

func (b *locationBusiness) DeleteLocation(ctx context.Context, locationID string) error {
	log := util.Log(ctx)

	location, err := b.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return fmt.Errorf("location not found: %w", err)
	}

	// Soft delete: set state to DELETED. Candidate queries filter it out.
	location.State = models.StateDeleted
	if _, err = b.locationRepo.Update(ctx, location); err != nil {
		return fmt.Errorf("soft delete location: %w", err)
	}

	b.emitLocationChanged(ctx, location.GetID(), location.OwnerID, "deleted")

	log.Info("location deleted", "location_id", location.GetID())
	return nil
}

func (b *locationBusiness) GetLocation(ctx context.Context, locationID string) (*models.LocationAPI, error) {
	location, err := b.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return location.ToAPI(), nil
}

func (b *locationBusiness) SearchLocations(
	ctx context.Context,
	query string,
	ownerID string,
	limit int,
) ([]*models.LocationAPI, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var locations []*models.Location
	var err error

	switch {
	case ownerID != "":
		locations, err = b.locationRepo.SearchByOwner(ctx, ownerID, limit)
	case query != "":
		locations, err = b.locationRepo.SearchByQuery(ctx, query, limit)
	default:
		return nil, errors.New("either query or owner_id is required for location search")
	}

	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}

	result := make([]*models.LocationAPI, 0, len(locations))
	for _, l := range locations {
		result = append(result, l.ToAPI())
	}
	return result, nil
}

// UpdateCoordinates atomically replaces the coordinate tuple on a location.
// The model validates the tuple before any field is assigned, so the stored
// row is never observed half-set.
func (b *locationBusiness) UpdateCoordinates(
	ctx context.Context,
	req *models.UpdateCoordinatesRequest,
) (*models.LocationAPI, error) {
	log := util.Log(ctx)

	if req == nil || req.ID == "" {
		return nil, errors.New("update coordinates request requires an ID")
	}

	if err := geo.ValidateCoordinateInput(req.Latitude, req.Longitude, req.GeofenceRadiusM); err != nil {
		return nil, err
	}
	if req.Latitude == nil {
		return nil, fmt.Errorf("%w: latitude and longitude are required", geo.ErrInvalidCoordinate)
	}

	location, err := b.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	oldLat, oldLng, oldRadius := location.Latitude, location.Longitude, location.GeofenceRadiusM

	if err = location.SetCoordinates(*req.Latitude, *req.Longitude, req.GeofenceRadiusM); err != nil {
		return nil, err
	}

	if _, err = b.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location coordinates: %w", err)
	}

	b.emitCoordinatesChanged(ctx, location, oldLat, oldLng, oldRadius)

	log.Info("location coordinates updated",
		"location_id", location.GetID(),
		"lat", *req.Latitude,
		"lng", *req.Longitude,
	)
	return location.ToAPI(), nil
}

// ClearCoordinates atomically removes the coordinate tuple from a location.
func (b *locationBusiness) ClearCoordinates(
	ctx context.Context,
	locationID string,
) (*models.LocationAPI, error) {
	log := util.Log(ctx)

	location, err := b.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	oldLat, oldLng, oldRadius := location.Latitude, location.Longitude, location.GeofenceRadiusM

	location.ClearCoordinates()

	// The tuple columns must be written even though they are now nil, so the
	// cleared fields are named explicitly.
	if _, err = b.locationRepo.Update(ctx, location,
		"latitude", "longitude", "geofence_radius_m"); err != nil {
		return nil, fmt.Errorf("clear location coordinates: %w", err)
	}

	b.emitCoordinatesChanged(ctx, location, oldLat, oldLng, oldRadius)

	log.Info("location coordinates cleared", "location_id", location.GetID())
	return location.ToAPI(), nil
}

// GetCoordinateHistory returns the audit trail of coordinate mutations for a
// location, newest first. The location must exist.
func (b *locationBusiness) GetCoordinateHistory(
	ctx context.Context,
	locationID string,
	limit, offset int,
) ([]*models.CoordinateChangeAPI, error) {
	if _, err := b.locationRepo.GetByID(ctx, locationID); err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	changes, err := b.changeRepo.GetByLocation(ctx, locationID, nil, nil, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get coordinate history: %w", err)
	}

	result := make([]*models.CoordinateChangeAPI, 0, len(changes))
	for _, c := range changes {
		result = append(result, c.ToAPI())
	}
	return result, nil
}

func (b *locationBusiness) emitLocationChanged(ctx context.Context, locationID, ownerID, action string) {
	event := &models.LocationChangedEvent{
		LocationID: locationID,
		OwnerID:    ownerID,
		Action:     action,
	}

	if err := b.eventsMan.Emit(ctx, LocationChangedEventName, event); err != nil {
		util.Log(ctx).WithError(err).Error("failed to emit location changed event",
			"location_id", locationID,
			"action", action,
		)
	}
}

func (b *locationBusiness) emitCoordinatesChanged(
	ctx context.Context,
	location *models.Location,
	oldLat, oldLng, oldRadius *float64,
) {
	event := &models.CoordinatesChangedEvent{
		LocationID:   location.GetID(),
		OldLatitude:  oldLat,
		OldLongitude: oldLng,
		OldRadiusM:   oldRadius,
		NewLatitude:  location.Latitude,
		NewLongitude: location.Longitude,
		NewRadiusM:   location.GeofenceRadiusM,
		Timestamp:    time.Now().UnixMilli(),
	}

	if err := b.eventsMan.Emit(ctx, CoordinatesChangedEventName, event); err != nil {
		util.Log(ctx).WithError(err).Error("failed to emit coordinates changed event",
			"location_id", location.GetID(),
		)
	}
}
