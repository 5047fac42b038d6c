package services

import (
	"context"

	"github.com/dashbill/invoice_dashboard_app/internal/dto"
)

// ListingViewPath is the logical path of the invoice listing view. Write
// operations invalidate it; the transport redirects to it after a successful
// create or update.
const ListingViewPath = "/dashboard/invoices"

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoice retrieves a single invoice for the edit form.
	GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error)

	// ListInvoices retrieves the dashboard listing view, served from the
	// rendered-view cache when it is warm.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines the form-submission operations. Create and update
// return a non-nil InvoiceState when the operation stops short of success
// (validation or persistence failure); a nil state means the write landed and
// the listing view was invalidated.
type InvoiceWriterSvc interface {
	// CreateInvoice validates the form, assigns identity and creation date,
	// and inserts the invoice.
	CreateInvoice(ctx context.Context, form dto.InvoiceFormData) *dto.InvoiceState

	// UpdateInvoice validates the form and rewrites the mutable columns of
	// the identified invoice. A nonexistent id is treated as success.
	UpdateInvoice(ctx context.Context, invoiceID string, form dto.InvoiceFormData) *dto.InvoiceState

	// DeleteInvoice removes the identified invoice. Persistence failures are
	// logged and swallowed; the listing view is invalidated in all cases, so
	// there is nothing to report to the caller.
	DeleteInvoice(ctx context.Context, invoiceID string)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
