package business

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/pitabwire/frame/events"
	"github.com/pitabwire/util"

	"github.com/fieldsync/service-locations/service/models"
	"github.com/fieldsync/service-locations/service/repository"
)

// CustomerChangedEventName is the internal frame event name for customer mutations.
const CustomerChangedEventName = "customer.changed"

type customerBusiness struct {
	eventsMan    events.Manager
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
}

// NewCustomerBusiness creates a new CustomerBusiness.
func NewCustomerBusiness(
	eventsMan events.Manager,
	customerRepo repository.CustomerRepository,
	locationRepo repository.LocationRepository,
) CustomerBusiness {
	return &customerBusiness{
		eventsMan:    eventsMan,
		customerRepo: customerRepo,
		locationRepo: locationRepo,
	}
}

func (b *customerBusiness) CreateCustomer(
	ctx context.Context,
	req *models.CreateCustomerRequest,
) (*models.CustomerAPI, error) {
	log := util.Log(ctx)

	if req == nil || req.Data == nil {
		return nil, errors.New("create customer request data is nil")
	}

	apiData := req.Data

	if err := models.ValidateCustomerName(apiData.Name); err != nil {
		return nil, fmt.Errorf("invalid customer name: %w", err)
	}
	if apiData.Email != "" {
		if err := models.ValidateEmail(apiData.Email); err != nil {
			return nil, fmt.Errorf("invalid customer email: %w", err)
		}
	}
	if apiData.OwnerID == "" {
		return nil, errors.New("owner_id is required")
	}

	// A default location, when supplied, must reference an existing location.
	if apiData.DefaultLocationID != "" {
		if _, err := b.locationRepo.GetByID(ctx, apiData.DefaultLocationID); err != nil {
			return nil, fmt.Errorf("default location not found: %w", err)
		}
	}

	customer := &models.Customer{
		OwnerID:           apiData.OwnerID,
		Name:              apiData.Name,
		Email:             apiData.Email,
		Phone:             apiData.Phone,
		DefaultLocationID: apiData.DefaultLocationID,
		State:             models.StateActive,
		Extras:            models.StructToJSONMap(apiData.Extras),
	}
	customer.GenID(ctx)

	if err := b.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	b.emitCustomerChanged(ctx, customer.GetID(), customer.OwnerID, "created")

	log.Info("customer created", "customer_id", customer.GetID(), "name", customer.Name)
	return customer.ToAPI(), nil
}

func (b *customerBusiness) UpdateCustomer(
	ctx context.Context,
	req *models.UpdateCustomerRequest,
) (*models.CustomerAPI, error) {
	log := util.Log(ctx)

	if req == nil || req.ID == "" {
		return nil, errors.New("update customer request requires an ID")
	}

	customer, err := b.customerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	if req.Name != "" {
		if vErr := models.ValidateCustomerName(req.Name); vErr != nil {
			return nil, fmt.Errorf("invalid customer name: %w", vErr)
		}
		customer.Name = req.Name
	}
	if req.Email != "" {
		if vErr := models.ValidateEmail(req.Email); vErr != nil {
			return nil, fmt.Errorf("invalid customer email: %w", vErr)
		}
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.DefaultLocationID != "" {
		if _, vErr := b.locationRepo.GetByID(ctx, req.DefaultLocationID); vErr != nil {
			return nil, fmt.Errorf("default location not found: %w", vErr)
		}
		customer.DefaultLocationID = req.DefaultLocationID
	}
	if req.Extras != nil {
		existing := customer.Extras
		if existing == nil {
			existing = models.StructToJSONMap(nil)
		}
		maps.Copy(existing, models.StructToJSONMap(req.Extras))
		customer.Extras = existing
	}

	if _, err = b.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	persisted, err := b.customerRepo.GetByID(ctx, customer.GetID())
	if err != nil {
		return nil, fmt.Errorf("reload updated customer: %w", err)
	}

	b.emitCustomerChanged(ctx, persisted.GetID(), persisted.OwnerID, "updated")

	log.Info("customer updated", "customer_id", persisted.GetID())
	return persisted.ToAPI(), nil
}

func (b *customerBusiness) DeleteCustomer(ctx context.Context, customerID string) error {
	log := util.Log(ctx)

	customer, err := b.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	customer.State = models.StateDeleted
	if _, err = b.customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("soft delete customer: %w", err)
	}

	b.emitCustomerChanged(ctx, customer.GetID(), customer.OwnerID, "deleted")

	log.Info("customer deleted", "customer_id", customer.GetID())
	return nil
}

func (b *customerBusiness) GetCustomer(ctx context.Context, customerID string) (*models.CustomerAPI, error) {
	customer, err := b.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer.ToAPI(), nil
}

func (b *customerBusiness) SearchCustomers(
	ctx context.Context,
	query string,
	ownerID string,
	limit int,
) ([]*models.CustomerAPI, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var customers []*models.Customer
	var err error

	switch {
	case ownerID != "":
		customers, err = b.customerRepo.SearchByOwner(ctx, ownerID, limit)
	case query != "":
		customers, err = b.customerRepo.SearchByQuery(ctx, query, limit)
	default:
		return nil, errors.New("either query or owner_id is required for customer search")
	}

	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}

	result := make([]*models.CustomerAPI, 0, len(customers))
	for _, c := range customers {
		result = append(result, c.ToAPI())
	}
	return result, nil
}

func (b *customerBusiness) emitCustomerChanged(ctx context.Context, customerID, ownerID, action string) {
	event := &models.CustomerChangedEvent{
		CustomerID: customerID,
		OwnerID:    ownerID,
		Action:     action,
	}

	if err := b.eventsMan.Emit(ctx, CustomerChangedEventName, event); err != nil {
		util.Log(ctx).WithError(err).Error("failed to emit customer changed event",
			"customer_id", customerID,
			"action", action,
		)
	}
}
