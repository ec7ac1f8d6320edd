package models

import (
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// LocationAPI is the API representation of a location. Latitude, longitude and
// geofence radius are pointers so that "no coordinates assigned" serializes as
// null rather than zero.
type LocationAPI struct {
	ID              string                 `json:"id"`
	OwnerID         string                 `json:"owner_id"`
	Name            string                 `json:"name"`
	Code            string                 `json:"code,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Type            LocationType           `json:"type"`
	AddressLine     string                 `json:"address_line,omitempty"`
	City            string                 `json:"city,omitempty"`
	Country         string                 `json:"country,omitempty"`
	Latitude        *float64               `json:"latitude,omitempty"`
	Longitude       *float64               `json:"longitude,omitempty"`
	GeofenceRadiusM *float64               `json:"geofence_radius_m,omitempty"`
	State           int32                  `json:"state"`
	Extras          *structpb.Struct       `json:"extras,omitempty"`
	CreatedAt       *timestamppb.Timestamp `json:"created_at,omitempty"`
}

// CustomerAPI is the API representation of a customer.
type CustomerAPI struct {
	ID                string                 `json:"id"`
	OwnerID           string                 `json:"owner_id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email,omitempty"`
	Phone             string                 `json:"phone,omitempty"`
	DefaultLocationID string                 `json:"default_location_id,omitempty"`
	State             int32                  `json:"state"`
	Extras            *structpb.Struct       `json:"extras,omitempty"`
	CreatedAt         *timestamppb.Timestamp `json:"created_at,omitempty"`
}

// CreateLocationRequest is the request to register a new location.
type CreateLocationRequest struct {
	Data *LocationAPI `json:"data"`
}

// CreateLocationResponse is the response after registering a location.
type CreateLocationResponse struct {
	Data *LocationAPI `json:"data"`
}

// UpdateLocationRequest is the request to update non-coordinate location fields.
type UpdateLocationRequest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Code        string           `json:"code,omitempty"`
	Description string           `json:"description,omitempty"`
	Type        *LocationType    `json:"type,omitempty"`
	AddressLine string           `json:"address_line,omitempty"`
	City        string           `json:"city,omitempty"`
	Country     string           `json:"country,omitempty"`
	Extras      *structpb.Struct `json:"extras,omitempty"`
}

// UpdateLocationResponse is the response after updating a location.
type UpdateLocationResponse struct {
	Data *LocationAPI `json:"data"`
}

// UpdateCoordinatesRequest replaces a location's coordinate tuple. Latitude and
// longitude must both be present; the geofence radius is optional and must be
// positive when supplied.
type UpdateCoordinatesRequest struct {
	ID              string   `json:"id"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	GeofenceRadiusM *float64 `json:"geofence_radius_m,omitempty"`
}

// UpdateCoordinatesResponse is the response after a coordinate mutation.
type UpdateCoordinatesResponse struct {
	Data *LocationAPI `json:"data"`
}

// CreateCustomerRequest is the request to create a new customer.
type CreateCustomerRequest struct {
	Data *CustomerAPI `json:"data"`
}

// CreateCustomerResponse is the response after creating a customer.
type CreateCustomerResponse struct {
	Data *CustomerAPI `json:"data"`
}

// UpdateCustomerRequest is the request to update an existing customer.
type UpdateCustomerRequest struct {
	ID                string           `json:"id"`
	Name              string           `json:"name,omitempty"`
	Email             string           `json:"email,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	DefaultLocationID string           `json:"default_location_id,omitempty"`
	Extras            *structpb.Struct `json:"extras,omitempty"`
}

// UpdateCustomerResponse is the response after updating a customer.
type UpdateCustomerResponse struct {
	Data *CustomerAPI `json:"data"`
}

// ByCoordinatesRequest asks which location's geofence contains the given point.
type ByCoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ContainingLocationAPI is the result of a containment query: the matched
// location paired with the distance from the query point to its center.
type ContainingLocationAPI struct {
	Location       *LocationAPI `json:"location"`
	DistanceMeters float64      `json:"distance_meters"`
}

// NearbyLocationsRequest asks for locations within a radius of a point,
// ordered by distance. RadiusMeters and MaxResults fall back to the
// documented service defaults when zero.
type NearbyLocationsRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters,omitempty"`
	MaxResults   int32   `json:"max_results,omitempty"`
}

// NearbyLocationAPI pairs a location with its computed distance from the query
// point. The distance is part of the response contract.
type NearbyLocationAPI struct {
	Location       *LocationAPI `json:"location"`
	DistanceMeters float64      `json:"distance_meters"`
}

// CoordinateChangeAPI is one entry in a location's coordinate audit trail.
type CoordinateChangeAPI struct {
	ID           string                 `json:"id"`
	LocationID   string                 `json:"location_id"`
	OldLatitude  *float64               `json:"old_latitude,omitempty"`
	OldLongitude *float64               `json:"old_longitude,omitempty"`
	OldRadiusM   *float64               `json:"old_radius_m,omitempty"`
	NewLatitude  *float64               `json:"new_latitude,omitempty"`
	NewLongitude *float64               `json:"new_longitude,omitempty"`
	NewRadiusM   *float64               `json:"new_radius_m,omitempty"`
	ChangedAt    *timestamppb.Timestamp `json:"changed_at"`
}

// LocationChangedEvent is the internal event payload for location mutations.
type LocationChangedEvent struct {
	LocationID string `json:"location_id"`
	Action     string `json:"action"` // "created", "updated", "deleted"
	OwnerID    string `json:"owner_id"`
}

// CustomerChangedEvent is the internal event payload for customer mutations.
type CustomerChangedEvent struct {
	CustomerID string `json:"customer_id"`
	Action     string `json:"action"` // "created", "updated", "deleted"
	OwnerID    string `json:"owner_id"`
}

// CoordinatesChangedEvent is the internal event payload emitted whenever a
// location's coordinate tuple is replaced or cleared. Consumed by the audit
// trail consumer.
type CoordinatesChangedEvent struct {
	LocationID   string   `json:"location_id"`
	OldLatitude  *float64 `json:"old_latitude,omitempty"`
	OldLongitude *float64 `json:"old_longitude,omitempty"`
	OldRadiusM   *float64 `json:"old_radius_m,omitempty"`
	NewLatitude  *float64 `json:"new_latitude,omitempty"`
	NewLongitude *float64 `json:"new_longitude,omitempty"`
	NewRadiusM   *float64 `json:"new_radius_m,omitempty"`
	Timestamp    int64    `json:"timestamp"` // Unix millis
}
