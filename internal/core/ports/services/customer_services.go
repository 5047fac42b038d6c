package services

import (
	"context"

	"github.com/dashbill/invoice_dashboard_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// ListCustomers retrieves all customers for the invoice form dropdown.
	ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
}
