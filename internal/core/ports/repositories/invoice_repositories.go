package repositories

import (
	"context"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesWithCustomer retrieves a page of the listing view, newest
	// invoices first, each row joined with its customer.
	ListInvoicesWithCustomer(ctx context.Context, limit int, offset int) ([]domain.InvoiceWithCustomer, error)
}

// InvoiceWriter defines write operations for invoice data.
// Each method issues exactly one parameterized statement.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice rewrites customer_id, amount and status for the row
	// matching invoice.InvoiceID. The date column is never touched. A match
	// on zero rows is not an error.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes the row matching invoiceID. Deleting a row that
	// does not exist is not an error.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
