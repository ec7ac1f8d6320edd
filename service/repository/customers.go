package repository

import (
	"context"
	"fmt"

	"github.com/pitabwire/frame/datastore"
	"github.com/pitabwire/frame/datastore/pool"
	"github.com/pitabwire/frame/workerpool"

	"github.com/fieldsync/service-locations/service/models"
)

type customerRepository struct {
	datastore.BaseRepository[*models.Customer]
}

// NewCustomerRepository creates a new repository for customers.
func NewCustomerRepository(ctx context.Context, dbPool pool.Pool, workMan workerpool.Manager) CustomerRepository {
	return &customerRepository{
		BaseRepository: datastore.NewBaseRepository[*models.Customer](
			ctx, dbPool, workMan, func() *models.Customer { return &models.Customer{} },
		),
	}
}

// SearchByOwner returns customers owned by the given owner, with a limit.
func (r *customerRepository) SearchByOwner(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]*models.Customer, error) {
	var customers []*models.Customer
	db := r.Pool().DB(ctx, true)
	query := db.Where("owner_id = ? AND deleted_at IS NULL", ownerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&customers)
	if result.Error != nil {
		return nil, fmt.Errorf("search customers by owner %s: %w", ownerID, result.Error)
	}
	return customers, nil
}

// SearchByQuery performs text search on customer name and email.
func (r *customerRepository) SearchByQuery(
	ctx context.Context,
	query string,
	limit int,
) ([]*models.Customer, error) {
	var customers []*models.Customer
	db := r.Pool().DB(ctx, true)
	likeQuery := "%" + escapeLikeWildcards(query) + "%"
	result := db.Where(
		"deleted_at IS NULL AND (name ILIKE ? OR email ILIKE ?)",
		likeQuery, likeQuery,
	).Order("created_at DESC").Limit(limit).Find(&customers)
	if result.Error != nil {
		return nil, fmt.Errorf("search customers by query %q: %w", query, result.Error)
	}
	return customers, nil
}
