package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	portscache "github.com/dashbill/invoice_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/dashbill/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
	"github.com/dashbill/invoice_dashboard_app/internal/core/validation"
	"github.com/dashbill/invoice_dashboard_app/internal/dto"
	"github.com/dashbill/invoice_dashboard_app/internal/middleware"
	"github.com/google/uuid"
)

// Summary messages returned alongside field errors or on persistence failure.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgCreateDBError       = "Database error: Failed to create invoice"
	MsgUpdateMissingFields = "Missing fields. Failed to update invoice"
	MsgUpdateDBError       = "Database error, unable to update invoice"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	viewCache   portscache.ViewCache
	listingTTL  time.Duration
	now         func() time.Time
	newID       func() string
}

// InvoiceServiceOption configures optional invoice service collaborators.
type InvoiceServiceOption func(*invoiceService)

// WithClock overrides the creation-date clock (used by tests).
func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) { s.now = now }
}

// WithIDGenerator overrides the invoice ID generator (used by tests).
func WithIDGenerator(newID func() string) InvoiceServiceOption {
	return func(s *invoiceService) { s.newID = newID }
}

// NewInvoiceService creates the invoice service. The repository and view
// cache are required collaborators; identity generation and the clock default
// to uuid.NewString and time.Now.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, viewCache portscache.ViewCache, listingTTL time.Duration, opts ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	s := &invoiceService{
		invoiceRepo: invoiceRepo,
		viewCache:   viewCache,
		listingTTL:  listingTTL,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice runs the create pipeline: validate, assign identity and date,
// insert, invalidate the listing view. A non-nil state means the pipeline
// stopped before the cache invalidation and nothing was persisted past the
// reported step.
func (s *invoiceService) CreateInvoice(ctx context.Context, form dto.InvoiceFormData) *dto.InvoiceState {
	logger := middleware.GetLoggerFromCtx(ctx)

	validated, fieldErrs := validation.ValidateInvoiceForm(form)
	if fieldErrs != nil {
		return &dto.InvoiceState{Errors: fieldErrs, Message: MsgCreateMissingFields}
	}

	invoice := domain.Invoice{
		InvoiceID:   s.newID(),
		CustomerID:  validated.CustomerID,
		AmountCents: validated.AmountCents,
		Status:      validated.Status,
		Date:        dateOnly(s.now()),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID), slog.String("error", err.Error()))
		return &dto.InvoiceState{Message: MsgCreateDBError}
	}

	s.invalidateListing(ctx)
	return nil
}

// UpdateInvoice runs the update pipeline for an existing invoice. The date
// column is never rewritten. An id matching no row still counts as success.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, form dto.InvoiceFormData) *dto.InvoiceState {
	logger := middleware.GetLoggerFromCtx(ctx)

	validated, fieldErrs := validation.ValidateInvoiceForm(form)
	if fieldErrs != nil {
		return &dto.InvoiceState{Errors: fieldErrs, Message: MsgUpdateMissingFields}
	}

	invoice := domain.Invoice{
		InvoiceID:   invoiceID,
		CustomerID:  validated.CustomerID,
		AmountCents: validated.AmountCents,
		Status:      validated.Status,
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to update invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		return &dto.InvoiceState{Message: MsgUpdateDBError}
	}

	s.invalidateListing(ctx)
	return nil
}

// DeleteInvoice removes the invoice. A persistence failure is logged and
// swallowed; the listing view is invalidated regardless, so the caller's
// re-render always recomputes.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		logger.Error("Failed to delete invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
	}

	s.invalidateListing(ctx)
}

// GetInvoice retrieves a single invoice for the edit form.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToInvoiceResponse(invoice)
	return &resp, nil
}

// ListInvoices serves the dashboard listing. The default page is read through
// the view cache; cache trouble degrades to a direct database read and never
// fails the request.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	cacheable := params == defaultListingParams

	if cacheable {
		if resp := s.cachedListing(ctx, logger); resp != nil {
			return resp, nil
		}
	}

	rows, err := s.invoiceRepo.ListInvoicesWithCustomer(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListInvoicesResponse{Invoices: make([]dto.InvoiceListItem, len(rows))}
	for i := range rows {
		resp.Invoices[i] = dto.ToInvoiceListItem(&rows[i])
	}

	if cacheable {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.viewCache.Set(ctx, portssvc.ListingViewPath, payload, s.listingTTL); err != nil {
				logger.Warn("Failed to cache invoice listing", slog.String("error", err.Error()))
			}
		}
	}

	return resp, nil
}

// defaultListingParams is the page the cached listing view renders.
var defaultListingParams = dto.ListInvoicesParams{Limit: 20, Offset: 0}

// cachedListing returns the cached default page, or nil when it must be
// recomputed.
func (s *invoiceService) cachedListing(ctx context.Context, logger *slog.Logger) *dto.ListInvoicesResponse {
	payload, err := s.viewCache.Get(ctx, portssvc.ListingViewPath)
	if err != nil {
		// A miss is expected after invalidation; anything else is treated
		// as a miss too.
		return nil
	}
	var resp dto.ListInvoicesResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		logger.Warn("Discarding undecodable cached listing", slog.String("error", err.Error()))
		return nil
	}
	return &resp
}

// invalidateListing marks the listing view stale. Failures are logged only:
// the write has already landed and must not be reported as failed.
func (s *invoiceService) invalidateListing(ctx context.Context) {
	if err := s.viewCache.Invalidate(ctx, portssvc.ListingViewPath); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to invalidate invoice listing", slog.String("error", err.Error()))
	}
}

// dateOnly truncates t to calendar-date precision.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
