package geo

import "math"

// EarthRadiusMeters is the mean radius of the Earth used for great-circle
// distance computation.
const EarthRadiusMeters = 6371000.0

// Distance computes the great-circle surface distance in meters between two
// points using the haversine formula. Inputs are degrees; the result is not
// rounded, display precision is the caller's concern.
//
// The spherical approximation is intended for ranking and geofence containment,
// not surveying-grade measurement. Out-of-range inputs fail with
// ErrInvalidCoordinate even though callers are expected to pre-validate.
func Distance(lat1, lng1, lat2, lng2 float64) (float64, error) {
	if err := ValidateLatLng(lat1, lng1); err != nil {
		return 0, err
	}
	if err := ValidateLatLng(lat2, lng2); err != nil {
		return 0, err
	}

	if lat1 == lat2 && lng1 == lng2 {
		return 0, nil
	}

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLng := toRadians(lng2 - lng1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c, nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
