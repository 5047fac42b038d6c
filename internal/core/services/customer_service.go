package services

import (
	"context"
	"fmt"

	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
	"github.com/dashbill/invoice_dashboard_app/internal/dto"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

// ListCustomers retrieves all customers for the invoice form dropdown.
func (s *customerService) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers in service: %w", err)
	}
	// Return empty slice if no customers found, not nil
	if customers == nil {
		return []dto.CustomerResponse{}, nil
	}
	return dto.ToListCustomerResponse(customers), nil
}
