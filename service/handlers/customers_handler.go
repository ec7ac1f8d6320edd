package handlers

import (
	"net/http"

	"github.com/fieldsync/service-locations/service/models"
)

// CreateCustomer handles customer creation.
func (s *LocationsServer) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "CreateCustomer")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	var req models.CreateCustomerRequest
	if err := s.decodeBody(r, &req); err != nil {
		spanErr = err
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := s.customerBiz.CreateCustomer(ctx, &req)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, &models.CreateCustomerResponse{Data: customer})
}

// GetCustomer retrieves a customer by ID.
func (s *LocationsServer) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "GetCustomer")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	customerID := r.PathValue("id")
	if customerID == "" {
		s.writeClientError(w, "customer id is required", http.StatusBadRequest)
		return
	}

	customer, err := s.customerBiz.GetCustomer(ctx, customerID)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, customer)
}

func (s *LocationsServer) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "UpdateCustomer")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	customerID := r.PathValue("id")
	if customerID == "" {
		s.writeClientError(w, "customer id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCustomerRequest
	if err := s.decodeBody(r, &req); err != nil {
		spanErr = err
		s.writeClientError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = customerID

	customer, err := s.customerBiz.UpdateCustomer(ctx, &req)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &models.UpdateCustomerResponse{Data: customer})
}

// DeleteCustomer handles customer soft deletion.
func (s *LocationsServer) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "DeleteCustomer")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	customerID := r.PathValue("id")
	if customerID == "" {
		s.writeClientError(w, "customer id is required", http.StatusBadRequest)
		return
	}

	if err := s.customerBiz.DeleteCustomer(ctx, customerID); err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchCustomers handles customer search by query text or owner ID.
func (s *LocationsServer) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, span := s.metrics.StartSpan(ctx, "SearchCustomers")
	var spanErr error
	defer func() { s.metrics.EndSpan(ctx, span, spanErr) }()

	query := r.URL.Query()

	limit, err := parseInt32Query(query.Get("limit"), defaultHandlerSearchLimit)
	if err != nil {
		s.writeClientError(w, "limit must be a valid integer", http.StatusBadRequest)
		return
	}

	customers, err := s.customerBiz.SearchCustomers(
		ctx, query.Get("query"), query.Get("owner_id"), int(limit),
	)
	if err != nil {
		spanErr = err
		s.handleBusinessError(ctx, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, customers)
}
