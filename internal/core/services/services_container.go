package services

import (
	"time"

	portscache "github.com/dashbill/invoice_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, viewCache portscache.ViewCache, listingTTL time.Duration) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:  NewInvoiceService(repos.InvoiceRepo, viewCache, listingTTL),
		Customer: NewCustomerService(repos.CustomerRepo),
	}
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.InvoiceSvcFacade  = (*invoiceService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
)
