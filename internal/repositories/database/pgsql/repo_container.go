package pgsql

import (
	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		InvoiceRepo:  invoiceRepo,
		CustomerRepo: customerRepo,
	}
}
