package repositories

import (
	"context"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// ListCustomers retrieves all customers, ordered by name, for the invoice
	// form's customer dropdown.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
}
