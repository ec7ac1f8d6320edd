package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pitabwire/util"

	"github.com/fieldsync/service-locations/service/business"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/observability"
	"github.com/fieldsync/service-locations/service/repository"
)

// CoordinateChangeConsumer consumes CoordinatesChangedEvent events and appends
// a row to the coordinate audit trail. The trail is append-only; failures here
// are retried by the events manager without affecting the original mutation.
type CoordinateChangeConsumer struct {
	changeRepo repository.CoordinateChangeRepository
	metrics    *observability.Metrics
}

// NewCoordinateChangeConsumer creates a new event consumer for coordinate mutations.
func NewCoordinateChangeConsumer(
	changeRepo repository.CoordinateChangeRepository,
	metrics *observability.Metrics,
) *CoordinateChangeConsumer {
	return &CoordinateChangeConsumer{
		changeRepo: changeRepo,
		metrics:    metrics,
	}
}

// Name returns the event name this consumer handles.
func (c *CoordinateChangeConsumer) Name() string {
	return business.CoordinatesChangedEventName
}

// PayloadType returns the expected payload type for deserialization.
func (c *CoordinateChangeConsumer) PayloadType() any {
	return &models.CoordinatesChangedEvent{}
}

// Validate checks that the payload is the correct type and has required fields.
func (c *CoordinateChangeConsumer) Validate(_ context.Context, payload any) error {
	event, ok := payload.(*models.CoordinatesChangedEvent)
	if !ok {
		return errors.New("invalid payload type, expected *models.CoordinatesChangedEvent")
	}
	if event.LocationID == "" {
		return errors.New("location_id is required")
	}
	if event.Timestamp <= 0 {
		return errors.New("timestamp is required")
	}
	return nil
}

// Execute appends the coordinate mutation to the audit trail.
func (c *CoordinateChangeConsumer) Execute(ctx context.Context, payload any) error {
	event, ok := payload.(*models.CoordinatesChangedEvent)
	if !ok {
		return errors.New("invalid payload type")
	}

	ctx, span := c.metrics.StartSpan(ctx, "CoordinateChangeConsumer.Execute")
	var spanErr error
	defer func() { c.metrics.EndSpan(ctx, span, spanErr) }()

	log := util.Log(ctx)
	log.Debug("recording coordinate change", "location_id", event.LocationID)

	change := &models.CoordinateChange{
		LocationID:   event.LocationID,
		OldLatitude:  event.OldLatitude,
		OldLongitude: event.OldLongitude,
		OldRadiusM:   event.OldRadiusM,
		NewLatitude:  event.NewLatitude,
		NewLongitude: event.NewLongitude,
		NewRadiusM:   event.NewRadiusM,
		ChangedAt:    time.UnixMilli(event.Timestamp).UTC(),
	}
	change.GenID(ctx)

	if err := c.changeRepo.Create(ctx, change); err != nil {
		log.WithError(err).Error("failed to record coordinate change",
			"location_id", event.LocationID,
		)
		spanErr = fmt.Errorf("record coordinate change: %w", err)
		return spanErr
	}

	action := "set"
	if event.NewLatitude == nil {
		action = "cleared"
	}
	c.metrics.RecordCoordinateUpdate(ctx, action)

	return nil
}
