package repository

import (
	"context"

	"github.com/pitabwire/frame/datastore"

	"github.com/fieldsync/service-locations/service/models"
)

// Migrate runs database migrations for the locations service.
// GORM auto-migrate handles all columns and indexes; the decimal coordinate
// columns are declared on the models so no raw SQL migration is required.
func Migrate(ctx context.Context, dbManager datastore.Manager, migrationPath string) error {
	dbPool := dbManager.GetPool(ctx, datastore.DefaultMigrationPoolName)

	return dbManager.Migrate(ctx, dbPool, migrationPath,
		&models.Location{},
		&models.Customer{},
		&models.CoordinateChange{},
	)
}
