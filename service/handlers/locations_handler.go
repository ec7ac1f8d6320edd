package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/util"
	"gorm.io/gorm"

	"github.com/fieldsync/service-locations/service/business"
	"github.com/fieldsync/service-locations/service/geo"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/observability"
)

const (
	defaultHandlerSearchLimit = 50
	defaultMaxBodyBytes       = 2 << 20 // 2 MiB
)

// LocationsServer handles HTTP API requests for the locations service.
type LocationsServer struct {
	Service      *frame.Service
	locationBiz  business.LocationBusiness
	customerBiz  business.CustomerBusiness
	proximityBiz business.ProximityBusiness
	metrics      *observability.Metrics
	maxBodyBytes int64
}

// NewLocationsServer creates a new LocationsServer with all business dependencies.
func NewLocationsServer(
	svc *frame.Service,
	locationBiz business.LocationBusiness,
	customerBiz business.CustomerBusiness,
	proximityBiz business.ProximityBusiness,
	metrics *observability.Metrics,
	maxBodyBytes int64,
) *LocationsServer {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &LocationsServer{
		Service:      svc,
		locationBiz:  locationBiz,
		customerBiz:  customerBiz,
		proximityBiz: proximityBiz,
		metrics:      metrics,
		maxBodyBytes: maxBodyBytes,
	}
}

// NewRouter registers all locations REST API routes.
func (s *LocationsServer) NewRouter() *http.ServeMux {
	mux := http.NewServeMux()

	// Health check (unauthenticated).
	mux.HandleFunc("GET /healthz", s.HealthCheck)

	// Locations CRUD.
	mux.HandleFunc("POST /v1/locations", s.CreateLocation)
	mux.HandleFunc("GET /v1/locations/{id}", s.GetLocation)
	mux.HandleFunc("PUT /v1/locations/{id}", s.UpdateLocation)
	mux.HandleFunc("DELETE /v1/locations/{id}", s.DeleteLocation)
	mux.HandleFunc("GET /v1/locations", s.SearchLocations)

	// Coordinate tuple mutations.
	mux.HandleFunc("PUT /v1/locations/{id}/coordinates", s.UpdateCoordinates)
	mux.HandleFunc("DELETE /v1/locations/{id}/coordinates", s.ClearCoordinates)
	mux.HandleFunc("GET /v1/locations/{id}/coordinate-changes", s.GetCoordinateHistory)

	// Proximity queries. Literal segments take precedence over {id} in the mux.
	mux.HandleFunc("GET /v1/locations/by-coordinates", s.FindByCoordinates)
	mux.HandleFunc("GET /v1/locations/nearby", s.FindNearby)

	// Customers CRUD.
	mux.HandleFunc("POST /v1/customers", s.CreateCustomer)
	mux.HandleFunc("GET /v1/customers/{id}", s.GetCustomer)
	mux.HandleFunc("PUT /v1/customers/{id}", s.UpdateCustomer)
	mux.HandleFunc("DELETE /v1/customers/{id}", s.DeleteCustomer)
	mux.HandleFunc("GET /v1/customers", s.SearchCustomers)

	return mux
}

// HealthCheck returns 200 if the service is healthy.
func (s *LocationsServer) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateLocation handles location registration.
func (s *LocationsServer) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "CreateLocation")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	var req models.CreateLocationRequest
	if err := s.decodeBody(r, &req); err != nil {
		spanErr = err
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	location, err := s.locationBiz.CreateLocation(ctx, &req)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, &models.CreateLocationResponse{Data: location})
}

// GetLocation retrieves a location by ID.
func (s *LocationsServer) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "GetLocation")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	location, err := s.locationBiz.GetLocation(ctx, locationID)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, location)
}

func (s *LocationsServer) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "UpdateLocation")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateLocationRequest
	if err := s.decodeBody(r, &req); err != nil {
		spanErr = err
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = locationID

	location, err := s.locationBiz.UpdateLocation(ctx, &req)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &models.UpdateLocationResponse{Data: location})
}

// DeleteLocation handles location soft deletion.
func (s *LocationsServer) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "DeleteLocation")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	if err := s.locationBiz.DeleteLocation(ctx, locationID); err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchLocations handles location search by query text or owner ID.
func (s *LocationsServer) SearchLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "SearchLocations")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	query := r.URL.Query()

	limit, err := parseInt32Query(query.Get("limit"), defaultHandlerSearchLimit)
	if err != nil {
		s.writeClientError(w, "limit must be a valid integer", http.StatusBadRequest)
		return
	}

	locations, err := s.locationBiz.SearchLocations(
		ctx, query.Get("query"), query.Get("owner_id"), int(limit),
	)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, locations)
}

// UpdateCoordinates replaces a location's coordinate tuple. Latitude and
// longitude must both be present in the body; partial tuples are rejected
// before anything is stored.
func (s *LocationsServer) UpdateCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "UpdateCoordinates")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCoordinatesRequest
	if err := s.decodeBody(r, &req); err != nil {
		spanErr = err
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = locationID

	location, err := s.locationBiz.UpdateCoordinates(ctx, &req)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &models.UpdateCoordinatesResponse{Data: location})
}

// ClearCoordinates removes a location's coordinate tuple and geofence.
func (s *LocationsServer) ClearCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "ClearCoordinates")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	location, err := s.locationBiz.ClearCoordinates(ctx, locationID)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &models.UpdateCoordinatesResponse{Data: location})
}

// GetCoordinateHistory retrieves the coordinate audit trail for a location.
func (s *LocationsServer) GetCoordinateHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "GetCoordinateHistory")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	locationID := r.PathValue("id")
	if locationID == "" {
		s.writeClientError(w, "location id is required", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	limit, limitErr := parseInt32Query(query.Get("limit"), defaultHandlerSearchLimit)
	offset, offsetErr := parseInt32Query(query.Get("offset"), 0)
	if limitErr != nil || offsetErr != nil {
		s.writeClientError(w, "limit and offset must be valid integers", http.StatusBadRequest)
		return
	}

	changes, err := s.locationBiz.GetCoordinateHistory(ctx, locationID, int(limit), int(offset))
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, changes)
}

// FindByCoordinates answers which location's geofence contains the given point.
// A point covered by no geofence is a 404, distinct from malformed input.
func (s *LocationsServer) FindByCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "FindByCoordinates")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	query := r.URL.Query()

	lat, lng, err := parseLatLngQuery(query.Get("latitude"), query.Get("longitude"))
	if err != nil {
		s.writeClientError(w, err.Error(), http.StatusBadRequest)
		return
	}

	match, err := s.proximityBiz.ByCoordinates(ctx, &models.ByCoordinatesRequest{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	if match == nil {
		s.writeClientError(w, "no location contains the given coordinates", http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, match)
}

// FindNearby returns locations within a radius of the given point, closest
// first. Omitted radius and max_results fall back to the service defaults;
// malformed values are rejected.
func (s *LocationsServer) FindNearby(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "FindNearby")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	query := r.URL.Query()

	lat, lng, err := parseLatLngQuery(query.Get("latitude"), query.Get("longitude"))
	if err != nil {
		s.writeClientError(w, err.Error(), http.StatusBadRequest)
		return
	}

	radius, radiusErr := parseFloatQuery(query.Get("radius_meters"), 0)
	if radiusErr != nil {
		s.writeClientError(w, "radius_meters must be a valid number", http.StatusBadRequest)
		return
	}
	maxResults, maxErr := parseInt32Query(query.Get("max_results"), 0)
	if maxErr != nil {
		s.writeClientError(w, "max_results must be a valid integer", http.StatusBadRequest)
		return
	}

	results, err := s.proximityBiz.Nearby(ctx, &models.NearbyLocationsRequest{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
		MaxResults:   maxResults,
	})
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, results)
}

// decodeBody reads and decodes JSON from the request body with a size limit.
func (s *LocationsServer) decodeBody(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, s.maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON writes a JSON response with the given status code.
func (s *LocationsServer) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeClientError writes a safe, generic error message to the client.
// Internal error details are never exposed.
func (s *LocationsServer) writeClientError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// handleBusinessError logs the full error server-side and returns a safe message to the client.
func (s *LocationsServer) handleBusinessError(
	ctx context.Context,
	w http.ResponseWriter,
	err error,
) {
	log := util.Log(ctx)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.writeClientError(w, "resource not found", http.StatusNotFound)
	case errors.Is(err, geo.ErrInvalidCoordinate), errors.Is(err, geo.ErrInvalidArgument):
		s.writeClientError(w, err.Error(), http.StatusBadRequest)
	case isValidationError(err):
		// Validation errors are safe to expose. They contain field names, not
		// internal details.
		s.writeClientError(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("internal error processing request")
		s.writeClientError(w, "internal server error", http.StatusInternalServerError)
	}
}

// isValidationError checks if an error is a validation error (safe to expose to clients).
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// Validation errors from the models layer contain these prefixes.
	for _, prefix := range []string{
		"invalid", "owner_id is required", "must be",
		"either query or owner_id",
	} {
		if len(msg) >= len(prefix) && msg[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// parseLatLngQuery parses the mandatory latitude/longitude query parameter pair.
func parseLatLngQuery(latStr, lngStr string) (float64, float64, error) {
	if latStr == "" || lngStr == "" {
		return 0, 0, errors.New("latitude and longitude query parameters are required")
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, errors.New("latitude and longitude must be valid numbers")
	}
	return lat, lng, nil
}

// parseInt32Query parses an optional integer query parameter. An empty value
// yields defaultVal; a malformed value is an error, never silently defaulted.
func parseInt32Query(s string, defaultVal int32) (int32, error) {
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	if v < math.MinInt32 {
		return math.MinInt32, nil
	}
	return int32(v), nil
}

// parseFloatQuery parses an optional float query parameter. An empty value
// yields defaultVal; a malformed value is an error.
func parseFloatQuery(s string, defaultVal float64) (float64, error) {
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
