package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dashbill/invoice_dashboard_app/internal/apperrors"
	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
	"github.com/dashbill/invoice_dashboard_app/internal/core/services"
	"github.com/dashbill/invoice_dashboard_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesWithCustomer(ctx context.Context, limit int, offset int) ([]domain.InvoiceWithCustomer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceWithCustomer), args.Error(1)
}

// --- Mock ViewCache ---
type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) Get(ctx context.Context, viewPath string) ([]byte, error) {
	args := m.Called(ctx, viewPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockViewCache) Set(ctx context.Context, viewPath string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, viewPath, payload, ttl)
	return args.Error(0)
}

func (m *MockViewCache) Invalidate(ctx context.Context, viewPath string) error {
	args := m.Called(ctx, viewPath)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockInvoiceRepository
	mockCache *MockViewCache
	service   portssvc.InvoiceSvcFacade
	fixedNow  time.Time
	fixedID   string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockCache = new(MockViewCache)
	suite.fixedNow = time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	suite.fixedID = uuid.NewString()
	suite.service = services.NewInvoiceService(
		suite.mockRepo,
		suite.mockCache,
		5*time.Minute,
		services.WithClock(func() time.Time { return suite.fixedNow }),
		services.WithIDGenerator(func() string { return suite.fixedID }),
	)
}

func validForm() dto.InvoiceFormData {
	return dto.InvoiceFormData{
		CustomerID: uuid.NewString(),
		Amount:     "10.50",
		Status:     "pending",
	}
}

// --- CreateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	form := validForm()
	wantDate := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == suite.fixedID &&
			inv.CustomerID == form.CustomerID &&
			inv.AmountCents == 1050 &&
			inv.Status == domain.StatusPending &&
			inv.Date.Equal(wantDate)
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Once()

	state := suite.service.CreateInvoice(ctx, form)

	suite.Nil(state)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockCache.AssertNumberOfCalls(suite.T(), "Invalidate", 1)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ValidationFailure_NoSideEffects() {
	ctx := context.Background()
	form := validForm()
	form.Amount = "0"

	state := suite.service.CreateInvoice(ctx, form)

	suite.Require().NotNil(state)
	suite.Equal("Missing Fields. Failed to Create Invoice.", state.Message)
	suite.Equal([]string{"Please enter an amount greater than $0."}, state.Errors["amount"])
	// No persistence call and no invalidation may occur on validation failure.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
	suite.mockCache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PersistenceFailure() {
	ctx := context.Background()
	form := validForm()

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(assert.AnError).Once()

	state := suite.service.CreateInvoice(ctx, form)

	suite.Require().NotNil(state)
	suite.Equal("Database error: Failed to create invoice", state.Message)
	suite.Empty(state.Errors)
	suite.mockCache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything, mock.Anything)
}

// --- UpdateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	form := validForm()
	form.Amount = "5"
	form.Status = "paid"

	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		// The date stays zero: the update statement never touches it.
		return inv.InvoiceID == invoiceID &&
			inv.CustomerID == form.CustomerID &&
			inv.AmountCents == 500 &&
			inv.Status == domain.StatusPaid &&
			inv.Date.IsZero()
	})).Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Once()

	state := suite.service.UpdateInvoice(ctx, invoiceID, form)

	suite.Nil(state)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ValidationFailure() {
	ctx := context.Background()
	form := dto.InvoiceFormData{CustomerID: "", Amount: "-3", Status: "unknown"}

	state := suite.service.UpdateInvoice(ctx, uuid.NewString(), form)

	suite.Require().NotNil(state)
	suite.Equal("Missing fields. Failed to update invoice", state.Message)
	suite.Len(state.Errors, 3)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
	suite.mockCache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_PersistenceFailure() {
	ctx := context.Background()

	suite.mockRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(assert.AnError).Once()

	state := suite.service.UpdateInvoice(ctx, uuid.NewString(), validForm())

	suite.Require().NotNil(state)
	suite.Equal("Database error, unable to update invoice", state.Message)
	suite.mockCache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NonexistentIDIsSuccess() {
	ctx := context.Background()
	// The repository reports zero affected rows as plain success; the
	// pipeline completes and invalidates as usual.
	suite.mockRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Once()

	state := suite.service.UpdateInvoice(ctx, uuid.NewString(), validForm())

	suite.Nil(state)
	suite.mockCache.AssertExpectations(suite.T())
}

// --- DeleteInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("DeleteInvoice", ctx, invoiceID).Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Once()

	suite.service.DeleteInvoice(ctx, invoiceID)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_PersistenceFailureIsSwallowed() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("DeleteInvoice", ctx, invoiceID).Return(assert.AnError).Once()
	// The cache is still invalidated when the statement fails.
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Once()

	suite.NotPanics(func() {
		suite.service.DeleteInvoice(ctx, invoiceID)
	})
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Idempotent() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	// Second delete affects zero rows; the repository treats that as success.
	suite.mockRepo.On("DeleteInvoice", ctx, invoiceID).Return(nil).Twice()
	suite.mockCache.On("Invalidate", ctx, portssvc.ListingViewPath).Return(nil).Twice()

	suite.service.DeleteInvoice(ctx, invoiceID)
	suite.service.DeleteInvoice(ctx, invoiceID)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListInvoices Tests ---

func listingRows() []domain.InvoiceWithCustomer {
	return []domain.InvoiceWithCustomer{
		{
			Invoice: domain.Invoice{
				InvoiceID:   uuid.NewString(),
				CustomerID:  uuid.NewString(),
				AmountCents: 1050,
				Status:      domain.StatusPending,
				Date:        time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC),
			},
			CustomerName:  "Amy Burns",
			CustomerEmail: "amy@burns.com",
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_CacheHitSkipsRepository() {
	ctx := context.Background()
	cached := dto.ListInvoicesResponse{Invoices: []dto.InvoiceListItem{{CustomerName: "Cached Customer"}}}
	payload, err := json.Marshal(&cached)
	suite.Require().NoError(err)

	suite.mockCache.On("Get", ctx, portssvc.ListingViewPath).Return(payload, nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: 20, Offset: 0})

	suite.Require().NoError(err)
	suite.Equal(&cached, resp)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListInvoicesWithCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_CacheMissQueriesAndCaches() {
	ctx := context.Background()
	rows := listingRows()

	suite.mockCache.On("Get", ctx, portssvc.ListingViewPath).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ListInvoicesWithCustomer", ctx, 20, 0).Return(rows, nil).Once()
	suite.mockCache.On("Set", ctx, portssvc.ListingViewPath, mock.AnythingOfType("[]uint8"), 5*time.Minute).Return(nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: 20, Offset: 0})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Invoices, 1)
	suite.Equal("Amy Burns", resp.Invoices[0].CustomerName)
	suite.Equal(int64(1050), resp.Invoices[0].AmountCents)
	suite.Equal("2026-08-27", resp.Invoices[0].Date)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_CacheErrorFallsThroughToRepository() {
	ctx := context.Background()

	suite.mockCache.On("Get", ctx, portssvc.ListingViewPath).Return(nil, assert.AnError).Once()
	suite.mockRepo.On("ListInvoicesWithCustomer", ctx, 20, 0).Return(listingRows(), nil).Once()
	suite.mockCache.On("Set", ctx, portssvc.ListingViewPath, mock.AnythingOfType("[]uint8"), 5*time.Minute).Return(nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: 20, Offset: 0})

	suite.Require().NoError(err)
	suite.Len(resp.Invoices, 1)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_NonDefaultPageBypassesCache() {
	ctx := context.Background()

	suite.mockRepo.On("ListInvoicesWithCustomer", ctx, 10, 20).Return(listingRows(), nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: 10, Offset: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Invoices, 1)
	suite.mockCache.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestGetInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.Invoice{
		InvoiceID:   invoiceID,
		CustomerID:  uuid.NewString(),
		AmountCents: 500,
		Status:      domain.StatusPaid,
		Date:        time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(stored, nil).Once()

	resp, err := suite.service.GetInvoice(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Equal(invoiceID, resp.InvoiceID)
	suite.Equal("2026-08-01", resp.Date)
	suite.Equal("paid", resp.Status)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
