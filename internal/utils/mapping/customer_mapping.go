package mapping

import (
	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	"github.com/dashbill/invoice_dashboard_app/internal/models"
)

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		ImageURL:   m.ImageURL,
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
