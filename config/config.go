package config

import (
	"github.com/pitabwire/frame/config"

	"github.com/fieldsync/service-locations/service/business"
)

// LocationsConfig holds configuration for the locations service.
type LocationsConfig struct {
	config.ConfigurationDefault

	// Proximity query defaults. The default radius and result count are part
	// of the API contract; changing them changes what omitted parameters mean.
	ProximityDefaultRadiusM    float64 `envDefault:"5000.0"  env:"PROXIMITY_DEFAULT_RADIUS_M"`
	ProximityMaxRadiusM        float64 `envDefault:"50000.0" env:"PROXIMITY_MAX_RADIUS_M"`
	ProximityDefaultMaxResults int     `envDefault:"10"      env:"PROXIMITY_DEFAULT_MAX_RESULTS"`
	ProximityMaxResultsCeiling int     `envDefault:"100"     env:"PROXIMITY_MAX_RESULTS_CEILING"`

	// Search limits.
	SearchDefaultLimit int `envDefault:"50" env:"SEARCH_DEFAULT_LIMIT"`

	// Request body size limit in bytes (default 2MB).
	MaxRequestBodyBytes int64 `envDefault:"2097152" env:"MAX_REQUEST_BODY_BYTES"`
}

// ProximityBusinessConfig returns the ProximityConfig derived from this configuration.
func (c *LocationsConfig) ProximityBusinessConfig() business.ProximityConfig {
	return business.ProximityConfig{
		DefaultRadiusM:    c.ProximityDefaultRadiusM,
		MaxRadiusM:        c.ProximityMaxRadiusM,
		DefaultMaxResults: c.ProximityDefaultMaxResults,
		MaxResultsCeiling: c.ProximityMaxResultsCeiling,
	}
}
