package domain

import "time"

// InvoiceStatus is the payment state of an invoice. The set is closed; no
// other value may reach storage.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s InvoiceStatus) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice represents a customer invoice within the core domain.
// This is the primary representation used by services.
type Invoice struct {
	InvoiceID   string        `json:"invoiceID"`   // Primary Key (UUID), assigned once at creation
	CustomerID  string        `json:"customerID"`  // FK -> customers.customer_id (NON-NULL)
	AmountCents int64         `json:"amountCents"` // Amount in minor currency units; always > 0
	Status      InvoiceStatus `json:"status"`      // pending | paid
	Date        time.Time     `json:"date"`        // Creation date (date precision); never modified on update
}

// InvoiceWithCustomer is the listing-view read model: an invoice joined with
// the customer columns the dashboard table displays.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerImageURL string `json:"customerImageURL"`
}
