package geo

import (
	"fmt"
	"math"
)

const (
	// MaxLatitude is the maximum valid latitude (90 degrees).
	MaxLatitude = 90.0
	// MinLatitude is the minimum valid latitude (-90 degrees).
	MinLatitude = -90.0
	// MaxLongitude is the maximum valid longitude (180 degrees).
	MaxLongitude = 180.0
	// MinLongitude is the minimum valid longitude (-180 degrees).
	MinLongitude = -180.0
)

// Coordinate is a validated latitude/longitude pair with an optional circular
// geofence radius in meters. A nil radius means the point has no geofence.
type Coordinate struct {
	Latitude  float64
	Longitude float64
	RadiusM   *float64
}

// HasGeofence reports whether the coordinate carries a positive geofence radius.
func (c Coordinate) HasGeofence() bool {
	return c.RadiusM != nil && *c.RadiusM > 0
}

// ValidateLatLng checks that latitude and longitude are finite and within
// valid WGS 84 ranges.
func ValidateLatLng(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: latitude and longitude must be finite numbers", ErrInvalidCoordinate)
	}
	if lat < MinLatitude || lat > MaxLatitude {
		return fmt.Errorf("%w: latitude %f out of range [%f, %f]",
			ErrInvalidCoordinate, lat, MinLatitude, MaxLatitude)
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return fmt.Errorf("%w: longitude %f out of range [%f, %f]",
			ErrInvalidCoordinate, lng, MinLongitude, MaxLongitude)
	}
	return nil
}

// ValidateCoordinateInput checks a full coordinate tuple as supplied by a
// mutation request. Latitude and longitude must be supplied together or not at
// all; a radius may only accompany a coordinate pair and must be positive.
func ValidateCoordinateInput(lat, lng, radiusM *float64) error {
	if (lat == nil) != (lng == nil) {
		return fmt.Errorf("%w: latitude and longitude must be supplied together", ErrInvalidCoordinate)
	}

	if lat == nil {
		if radiusM != nil {
			return fmt.Errorf("%w: geofence radius requires coordinates", ErrInvalidCoordinate)
		}
		return nil
	}

	if err := ValidateLatLng(*lat, *lng); err != nil {
		return err
	}

	if radiusM != nil && *radiusM <= 0 {
		return fmt.Errorf("%w: geofence radius must be positive, got %f", ErrInvalidArgument, *radiusM)
	}
	return nil
}

// ValidateRadius checks a caller-supplied search radius in meters.
func ValidateRadius(radiusM float64) error {
	if math.IsNaN(radiusM) || math.IsInf(radiusM, 0) || radiusM <= 0 {
		return fmt.Errorf("%w: radius must be a positive number of meters, got %f", ErrInvalidArgument, radiusM)
	}
	return nil
}
