package dto

import "github.com/dashbill/invoice_dashboard_app/internal/core/domain"

// CustomerResponse defines the data returned for a customer, as consumed by
// the invoice form's customer dropdown.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"imageURL"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		ImageURL:   c.ImageURL,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
