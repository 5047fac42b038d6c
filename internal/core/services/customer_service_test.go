package services_test

import (
	"context"
	"testing"

	"github.com/dashbill/invoice_dashboard_app/internal/core/domain"
	"github.com/dashbill/invoice_dashboard_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func TestListCustomers_Success(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := services.NewCustomerService(mockRepo)
	ctx := context.Background()

	stored := []domain.Customer{
		{CustomerID: uuid.NewString(), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{CustomerID: uuid.NewString(), Name: "Balazs Orban", Email: "balazs@orban.net"},
	}
	mockRepo.On("ListCustomers", ctx).Return(stored, nil).Once()

	customers, err := svc.ListCustomers(ctx)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, stored[0].CustomerID, customers[0].CustomerID)
	assert.Equal(t, "Amy Burns", customers[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestListCustomers_EmptyIsNotNil(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := services.NewCustomerService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListCustomers", ctx).Return(nil, nil).Once()

	customers, err := svc.ListCustomers(ctx)

	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestListCustomers_RepositoryError(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := services.NewCustomerService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListCustomers", ctx).Return(nil, assert.AnError).Once()

	customers, err := svc.ListCustomers(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, customers)
}
