package dto

import (
	"time"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
)

// InvoiceFormData carries the raw string values extracted from a submitted
// invoice form, one entry per consumed field name. No parsing has happened yet;
// absent fields arrive as empty strings.
type InvoiceFormData struct {
	CustomerID string // form field "customerId"
	Amount     string // form field "amount"
	Status     string // form field "status"
}

// FieldErrors maps a form field name to the ordered validation messages it
// accumulated. A field with no violations is absent from the map.
type FieldErrors map[string][]string

// InvoiceState is the structured result returned to the caller when a create
// or update operation does not complete. A nil state means success.
type InvoiceState struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// InvoiceResponse defines the data returned for a single invoice.
type InvoiceResponse struct {
	InvoiceID   string `json:"invoiceID"`
	CustomerID  string `json:"customerID"`
	AmountCents int64  `json:"amountCents"`
	Status      string `json:"status"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		CustomerID:  inv.CustomerID,
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		Date:        inv.Date.Format(time.DateOnly),
	}
}

// InvoiceListItem is one row of the dashboard listing view: the invoice plus
// the customer columns the table displays.
type InvoiceListItem struct {
	InvoiceResponse
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerImageURL string `json:"customerImageURL"`
}

// ToInvoiceListItem converts a domain.InvoiceWithCustomer to its DTO.
func ToInvoiceListItem(row *domain.InvoiceWithCustomer) InvoiceListItem {
	return InvoiceListItem{
		InvoiceResponse:  ToInvoiceResponse(&row.Invoice),
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerImageURL: row.CustomerImageURL,
	}
}

// ListInvoicesParams defines query parameters for the listing view.
type ListInvoicesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListInvoicesResponse wraps the listing rows.
type ListInvoicesResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
}
