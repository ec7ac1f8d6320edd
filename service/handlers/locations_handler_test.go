package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/fieldsync/service-locations/service/business/mocks"
	"github.com/fieldsync/service-locations/service/geo"
	"github.com/fieldsync/service-locations/service/handlers"
	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/observability"
)

type serverMocks struct {
	locationBiz  *mocks.MockLocationBusiness
	customerBiz  *mocks.MockCustomerBusiness
	proximityBiz *mocks.MockProximityBusiness
}

func newTestServer(t *testing.T) (*handlers.LocationsServer, *serverMocks) {
	t.Helper()
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	ctrl := gomock.NewController(t)
	m := &serverMocks{
		locationBiz:  mocks.NewMockLocationBusiness(ctrl),
		customerBiz:  mocks.NewMockCustomerBusiness(ctrl),
		proximityBiz: mocks.NewMockProximityBusiness(ctrl),
	}

	server := handlers.NewLocationsServer(
		nil, m.locationBiz, m.customerBiz, m.proximityBiz,
		observability.NewMetrics(), 0,
	)
	return server, m
}

func doRequest(t *testing.T, server *handlers.LocationsServer, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, target, &reqBody)
	rec := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rec, req)
	return rec
}

func f64(v float64) *float64 { return &v }

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFindByCoordinates(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		setupMock      func(m *serverMocks)
		expectedStatus int
	}{
		{
			name:   "point inside a geofence",
			target: "/v1/locations/by-coordinates?latitude=34.01003&longitude=-84.385296",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					ByCoordinates(gomock.Any(), &models.ByCoordinatesRequest{
						Latitude:  34.01003,
						Longitude: -84.385296,
					}).
					Return(&models.ContainingLocationAPI{
						Location:       &models.LocationAPI{ID: "loc_warehouse"},
						DistanceMeters: 12.5,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "point covered by no geofence",
			target: "/v1/locations/by-coordinates?latitude=34.02&longitude=-84.39",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					ByCoordinates(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "out of range latitude is rejected by business",
			target: "/v1/locations/by-coordinates?latitude=95&longitude=0",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					ByCoordinates(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: latitude out of range", geo.ErrInvalidCoordinate))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing longitude never reaches business",
			target:         "/v1/locations/by-coordinates?latitude=34.01",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed latitude never reaches business",
			target:         "/v1/locations/by-coordinates?latitude=abc&longitude=0",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t)
			if tc.setupMock != nil {
				tc.setupMock(m)
			}

			rec := doRequest(t, server, http.MethodGet, tc.target, nil)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestFindByCoordinatesMissDistinctFromBadRequest(t *testing.T) {
	server, m := newTestServer(t)
	m.proximityBiz.EXPECT().ByCoordinates(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := doRequest(t, server, http.MethodGet,
		"/v1/locations/by-coordinates?latitude=0&longitude=0", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no location contains")
}

func TestFindNearby(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		setupMock      func(m *serverMocks)
		expectedStatus int
	}{
		{
			name:   "omitted radius and max_results pass through as zero",
			target: "/v1/locations/nearby?latitude=0&longitude=0",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					Nearby(gomock.Any(), &models.NearbyLocationsRequest{
						Latitude:  0,
						Longitude: 0,
					}).
					Return([]*models.NearbyLocationAPI{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "explicit radius and max_results",
			target: "/v1/locations/nearby?latitude=0&longitude=0&radius_meters=2500&max_results=3",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					Nearby(gomock.Any(), &models.NearbyLocationsRequest{
						Latitude:     0,
						Longitude:    0,
						RadiusMeters: 2500,
						MaxResults:   3,
					}).
					Return([]*models.NearbyLocationAPI{
						{Location: &models.LocationAPI{ID: "loc_near"}, DistanceMeters: 420},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "excessive max_results rejected by business",
			target: "/v1/locations/nearby?latitude=0&longitude=0&max_results=500",
			setupMock: func(m *serverMocks) {
				m.proximityBiz.EXPECT().
					Nearby(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: max_results 500 exceeds maximum 100", geo.ErrInvalidArgument))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed radius never reaches business",
			target:         "/v1/locations/nearby?latitude=0&longitude=0&radius_meters=wide",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed max_results never reaches business",
			target:         "/v1/locations/nearby?latitude=0&longitude=0&max_results=lots",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t)
			if tc.setupMock != nil {
				tc.setupMock(m)
			}

			rec := doRequest(t, server, http.MethodGet, tc.target, nil)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestUpdateCoordinates(t *testing.T) {
	testCases := []struct {
		name           string
		body           any
		setupMock      func(m *serverMocks)
		expectedStatus int
	}{
		{
			name: "valid tuple",
			body: &models.UpdateCoordinatesRequest{
				Latitude:        f64(34.01),
				Longitude:       f64(-84.38),
				GeofenceRadiusM: f64(300),
			},
			setupMock: func(m *serverMocks) {
				m.locationBiz.EXPECT().
					UpdateCoordinates(gomock.Any(), gomock.Any()).
					Return(&models.LocationAPI{ID: "loc_1", Latitude: f64(34.01)}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "half-set pair rejected",
			body: &models.UpdateCoordinatesRequest{Latitude: f64(34.01)},
			setupMock: func(m *serverMocks) {
				m.locationBiz.EXPECT().
					UpdateCoordinates(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: latitude and longitude must be supplied together",
						geo.ErrInvalidCoordinate))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown location",
			body: &models.UpdateCoordinatesRequest{
				Latitude:  f64(34.01),
				Longitude: f64(-84.38),
			},
			setupMock: func(m *serverMocks) {
				m.locationBiz.EXPECT().
					UpdateCoordinates(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("location not found: %w", gorm.ErrRecordNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t)
			if tc.setupMock != nil {
				tc.setupMock(m)
			}

			rec := doRequest(t, server, http.MethodPut, "/v1/locations/loc_1/coordinates", tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestClearCoordinates(t *testing.T) {
	server, m := newTestServer(t)
	m.locationBiz.EXPECT().
		ClearCoordinates(gomock.Any(), "loc_1").
		Return(&models.LocationAPI{ID: "loc_1"}, nil)

	rec := doRequest(t, server, http.MethodDelete, "/v1/locations/loc_1/coordinates", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UpdateCoordinatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.Latitude)
	assert.Nil(t, resp.Data.GeofenceRadiusM)
}

func TestLocationCRUDStatusMapping(t *testing.T) {
	t.Run("create returns 201", func(t *testing.T) {
		server, m := newTestServer(t)
		m.locationBiz.EXPECT().
			CreateLocation(gomock.Any(), gomock.Any()).
			Return(&models.LocationAPI{ID: "loc_new"}, nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/locations", &models.CreateLocationRequest{
			Data: &models.LocationAPI{OwnerID: "owner_1", Name: "Main Warehouse"},
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create with malformed body returns 400", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/locations", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		server.NewRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get missing location returns 404", func(t *testing.T) {
		server, m := newTestServer(t)
		m.locationBiz.EXPECT().
			GetLocation(gomock.Any(), "loc_missing").
			Return(nil, fmt.Errorf("get location: %w", gorm.ErrRecordNotFound))

		rec := doRequest(t, server, http.MethodGet, "/v1/locations/loc_missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		server, m := newTestServer(t)
		m.locationBiz.EXPECT().DeleteLocation(gomock.Any(), "loc_1").Return(nil)

		rec := doRequest(t, server, http.MethodDelete, "/v1/locations/loc_1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("search with malformed limit returns 400", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(t, server, http.MethodGet, "/v1/locations?owner_id=o1&limit=many", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal errors are masked as 500", func(t *testing.T) {
		server, m := newTestServer(t)
		m.locationBiz.EXPECT().
			GetLocation(gomock.Any(), "loc_1").
			Return(nil, fmt.Errorf("get location: connection refused"))

		rec := doRequest(t, server, http.MethodGet, "/v1/locations/loc_1", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})
}

func TestCustomerCRUDStatusMapping(t *testing.T) {
	t.Run("create returns 201", func(t *testing.T) {
		server, m := newTestServer(t)
		m.customerBiz.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(&models.CustomerAPI{ID: "cust_new"}, nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/customers", &models.CreateCustomerRequest{
			Data: &models.CustomerAPI{OwnerID: "owner_1", Name: "Acme Ltd"},
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid email maps to 400", func(t *testing.T) {
		server, m := newTestServer(t)
		m.customerBiz.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("invalid customer email: missing @"))

		rec := doRequest(t, server, http.MethodPost, "/v1/customers", &models.CreateCustomerRequest{
			Data: &models.CustomerAPI{OwnerID: "owner_1", Name: "Acme Ltd", Email: "nope"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get missing customer returns 404", func(t *testing.T) {
		server, m := newTestServer(t)
		m.customerBiz.EXPECT().
			GetCustomer(gomock.Any(), "cust_missing").
			Return(nil, fmt.Errorf("get customer: %w", gorm.ErrRecordNotFound))

		rec := doRequest(t, server, http.MethodGet, "/v1/customers/cust_missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetCoordinateHistory(t *testing.T) {
	server, m := newTestServer(t)
	m.locationBiz.EXPECT().
		GetCoordinateHistory(gomock.Any(), "loc_1", 5, 0).
		Return([]*models.CoordinateChangeAPI{
			{ID: "cc_1", LocationID: "loc_1", NewLatitude: f64(34.01)},
		}, nil)

	rec := doRequest(t, server, http.MethodGet,
		"/v1/locations/loc_1/coordinate-changes?limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var changes []*models.CoordinateChangeAPI
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changes))
	require.Len(t, changes, 1)
	assert.Equal(t, "cc_1", changes[0].ID)
}
