package models

import (
	"time"

	"github.com/pitabwire/frame/data"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/gorm"

	"github.com/fieldsync/service-locations/service/geo"
)

// StateActive corresponds to common.v1.STATE_ACTIVE = 2.
const StateActive int32 = 2

// StateInactive corresponds to common.v1.STATE_INACTIVE = 3.
const StateInactive int32 = 3

// StateDeleted corresponds to common.v1.STATE_DELETED = 4.
const StateDeleted int32 = 4

// LocationType classifies the kind of physical location.
type LocationType int32

const (
	LocationTypeWarehouse LocationType = 0
	LocationTypeStore     LocationType = 1
	LocationTypeOffice    LocationType = 2
	LocationTypeSite      LocationType = 3
	LocationTypeCustom    LocationType = 4
)

func (lt LocationType) String() string {
	switch lt {
	case LocationTypeWarehouse:
		return "WAREHOUSE"
	case LocationTypeStore:
		return "STORE"
	case LocationTypeOffice:
		return "OFFICE"
	case LocationTypeSite:
		return "SITE"
	case LocationTypeCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// Location represents a registered physical location with an optional circular
// geofence. Coordinates are stored as decimal columns with 8 fractional digits
// so values survive storage and query round-trips without precision loss.
// Tenant partitioning and soft deletion come from the frame BaseModel.
type Location struct {
	data.BaseModel

	OwnerID     string       `gorm:"type:varchar(40);not null;index:idx_locations_owner"`
	Name        string       `gorm:"type:varchar(250);not null"`
	Code        string       `gorm:"type:varchar(50);index:idx_locations_code"`
	Description string       `gorm:"type:text"`
	Type        LocationType `gorm:"type:smallint;not null;default:0"`

	AddressLine string `gorm:"type:varchar(500)"`
	City        string `gorm:"type:varchar(100)"`
	Country     string `gorm:"type:varchar(2)"`

	// The coordinate tuple is all-or-nothing: latitude and longitude are set
	// and cleared together, and a geofence radius may only exist alongside them.
	// Mutations go through SetCoordinates/ClearCoordinates.
	Latitude        *float64 `gorm:"type:decimal(10,8)"`
	Longitude       *float64 `gorm:"type:decimal(11,8)"`
	GeofenceRadiusM *float64 `gorm:"type:double precision;column:geofence_radius_m"`

	State      int32        `gorm:"type:smallint;not null;default:0"`
	Extras     data.JSONMap `gorm:"type:jsonb;default:'{}'"`
	ModifiedAt time.Time    `gorm:"type:timestamptz;not null;default:now()"`
}

func (*Location) TableName() string {
	return "locations"
}

func (l *Location) BeforeUpdate(_ *gorm.DB) error {
	l.ModifiedAt = time.Now()
	return nil
}

// HasCoordinates reports whether the location has a coordinate pair assigned.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// HasGeofence reports whether the location has coordinates and a positive
// geofence radius.
func (l *Location) HasGeofence() bool {
	return l.HasCoordinates() && l.GeofenceRadiusM != nil && *l.GeofenceRadiusM > 0
}

// SetCoordinates validates and atomically replaces the coordinate tuple.
// The three fields are only assigned after the whole tuple validates, so no
// half-set state is ever observable.
func (l *Location) SetCoordinates(lat, lng float64, radiusM *float64) error {
	if err := geo.ValidateCoordinateInput(&lat, &lng, radiusM); err != nil {
		return err
	}

	newLat, newLng := lat, lng
	var newRadius *float64
	if radiusM != nil {
		r := *radiusM
		newRadius = &r
	}

	l.Latitude = &newLat
	l.Longitude = &newLng
	l.GeofenceRadiusM = newRadius
	return nil
}

// ClearCoordinates atomically removes the coordinate tuple, including any
// geofence radius.
func (l *Location) ClearCoordinates() {
	l.Latitude = nil
	l.Longitude = nil
	l.GeofenceRadiusM = nil
}

// ToAPI converts a Location to its API representation.
func (l *Location) ToAPI() *LocationAPI {
	return &LocationAPI{
		ID:              l.GetID(),
		OwnerID:         l.OwnerID,
		Name:            l.Name,
		Code:            l.Code,
		Description:     l.Description,
		Type:            l.Type,
		AddressLine:     l.AddressLine,
		City:            l.City,
		Country:         l.Country,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		GeofenceRadiusM: l.GeofenceRadiusM,
		State:           l.State,
		Extras:          jsonMapToStruct(l.Extras),
		CreatedAt:       timestamppb.New(l.CreatedAt),
	}
}

// Customer represents a customer account that may reference a default location.
type Customer struct {
	data.BaseModel

	OwnerID           string `gorm:"type:varchar(40);not null;index:idx_customers_owner"`
	Name              string `gorm:"type:varchar(250);not null"`
	Email             string `gorm:"type:varchar(250)"`
	Phone             string `gorm:"type:varchar(50)"`
	DefaultLocationID string `gorm:"type:varchar(40);index:idx_customers_location"`

	State      int32        `gorm:"type:smallint;not null;default:0"`
	Extras     data.JSONMap `gorm:"type:jsonb;default:'{}'"`
	ModifiedAt time.Time    `gorm:"type:timestamptz;not null;default:now()"`
}

func (*Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeUpdate(_ *gorm.DB) error {
	c.ModifiedAt = time.Now()
	return nil
}

func (c *Customer) ToAPI() *CustomerAPI {
	return &CustomerAPI{
		ID:                c.GetID(),
		OwnerID:           c.OwnerID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		DefaultLocationID: c.DefaultLocationID,
		State:             c.State,
		Extras:            jsonMapToStruct(c.Extras),
		CreatedAt:         timestamppb.New(c.CreatedAt),
	}
}

// CoordinateChange is an append-only audit record of a coordinate tuple
// mutation on a location. Never updated after creation.
type CoordinateChange struct {
	data.BaseModel

	LocationID string `gorm:"type:varchar(40);not null;index:idx_cc_location_ts"`

	OldLatitude  *float64 `gorm:"type:decimal(10,8)"`
	OldLongitude *float64 `gorm:"type:decimal(11,8)"`
	OldRadiusM   *float64 `gorm:"type:double precision;column:old_radius_m"`
	NewLatitude  *float64 `gorm:"type:decimal(10,8)"`
	NewLongitude *float64 `gorm:"type:decimal(11,8)"`
	NewRadiusM   *float64 `gorm:"type:double precision;column:new_radius_m"`

	ChangedAt time.Time `gorm:"type:timestamptz;not null;index:idx_cc_location_ts,sort:desc"`
}

func (*CoordinateChange) TableName() string {
	return "coordinate_changes"
}

func (cc *CoordinateChange) ToAPI() *CoordinateChangeAPI {
	return &CoordinateChangeAPI{
		ID:           cc.GetID(),
		LocationID:   cc.LocationID,
		OldLatitude:  cc.OldLatitude,
		OldLongitude: cc.OldLongitude,
		OldRadiusM:   cc.OldRadiusM,
		NewLatitude:  cc.NewLatitude,
		NewLongitude: cc.NewLongitude,
		NewRadiusM:   cc.NewRadiusM,
		ChangedAt:    timestamppb.New(cc.ChangedAt),
	}
}

// jsonMapToStruct converts a data.JSONMap to a protobuf Struct.
func jsonMapToStruct(m data.JSONMap) *structpb.Struct {
	if m == nil {
		return nil
	}
	s, _ := structpb.NewStruct(map[string]any(m))
	return s
}

// StructToJSONMap converts a protobuf Struct to data.JSONMap.
func StructToJSONMap(s *structpb.Struct) data.JSONMap {
	if s == nil {
		return make(data.JSONMap)
	}
	return data.JSONMap(s.AsMap())
}
