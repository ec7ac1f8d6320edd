package main

import (
	"context"
	"net/http"

	"github.com/pitabwire/frame"
	frconfig "github.com/pitabwire/frame/config"
	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/security"
	securityhttp "github.com/pitabwire/frame/security/interceptors/httptor"
	"github.com/pitabwire/util"

	lconfig "github.com/fieldsync/service-locations/config"
	"github.com/fieldsync/service-locations/service/business"
	"github.com/fieldsync/service-locations/service/events"
	"github.com/fieldsync/service-locations/service/handlers"
	"github.com/fieldsync/service-locations/service/observability"
	"github.com/fieldsync/service-locations/service/repository"
)

func main() {
	ctx := context.Background()

	cfg, err := frconfig.LoadWithOIDC[lconfig.LocationsConfig](ctx)
	if err != nil {
		util.Log(ctx).With("err", err).Error("could not process configs")
		return
	}

	if cfg.Name() == "" {
		cfg.ServiceName = "service_locations"
	}

	ctx, svc := frame.NewServiceWithContext(
		ctx,
		frame.WithConfig(&cfg),
		frame.WithRegisterServerOauth2Client(),
		frame.WithDatastore(),
	)
	defer svc.Stop(ctx)
	log := svc.Log(ctx)

	dbManager := svc.DatastoreManager()

	// Handle database migration if requested.
	if cfg.DoDatabaseMigrate() {
		if mErr := repository.Migrate(ctx, dbManager, cfg.GetDatabaseMigrationPath()); mErr != nil {
			log.WithError(mErr).Fatal("could not migrate database")
		}
		return
	}

	// Initialize repositories.
	dbPool := dbManager.GetPool(ctx, datastore.DefaultPoolName)
	workMan, evtsMan := svc.WorkManager(), svc.EventsManager()

	locationRepo := repository.NewLocationRepository(ctx, dbPool, workMan)
	customerRepo := repository.NewCustomerRepository(ctx, dbPool, workMan)
	changeRepo := repository.NewCoordinateChangeRepository(ctx, dbPool, workMan)

	// Initialize observability.
	metrics := observability.NewMetrics()

	// Initialize business layer with config-driven parameters.
	locationBiz := business.NewLocationBusiness(evtsMan, locationRepo, changeRepo)
	customerBiz := business.NewCustomerBusiness(evtsMan, customerRepo, locationRepo)
	proximityBiz := business.NewProximityBusiness(
		locationRepo,
		metrics,
		cfg.ProximityBusinessConfig(),
	)

	// Setup HTTP handler with authentication.
	sm := svc.SecurityManager()

	locServer := handlers.NewLocationsServer(
		svc, locationBiz, customerBiz, proximityBiz, metrics,
		cfg.MaxRequestBodyBytes,
	)

	// Health check is unauthenticated; all other routes require authentication.
	healthMux := http.NewServeMux()
	healthMux.HandleFunc("GET /healthz", locServer.HealthCheck)

	authenticatedRouter := authenticateRouter(ctx, sm, locServer.NewRouter())

	mux := http.NewServeMux()
	mux.Handle("/healthz", healthMux)
	mux.Handle("/", authenticatedRouter)

	// Register event consumers and start service.
	svc.Init(ctx,
		frame.WithHTTPHandler(mux),
		frame.WithRegisterEvents(
			events.NewCoordinateChangeConsumer(changeRepo, metrics),
		),
	)

	if runErr := svc.Run(ctx, ""); runErr != nil {
		log.WithError(runErr).Fatal("could not run server")
	}
}

// authenticateRouter wraps the given handler with OAuth2 authentication middleware.
func authenticateRouter(
	ctx context.Context,
	sm security.Manager,
	handler http.Handler,
) http.Handler {
	authenticator := sm.GetAuthenticator(ctx)
	return securityhttp.AuthenticationMiddleware(handler, authenticator)
}
