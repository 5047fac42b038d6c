package mapping

import (
	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	"github.com/dashbill/invoice_dashboard_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		CustomerID:  d.CustomerID,
		AmountCents: d.AmountCents,
		Status:      models.InvoiceStatus(d.Status),
		Date:        d.Date,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		CustomerID:  m.CustomerID,
		AmountCents: m.AmountCents,
		Status:      domain.InvoiceStatus(m.Status),
		Date:        m.Date,
	}
}
