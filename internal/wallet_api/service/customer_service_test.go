package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chari-wallet-mock/internal/domain/customer"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Register(ctx context.Context, phoneNumber string, reg customer.Registration) (*customer.Customer, error) {
	args := m.Called(ctx, phoneNumber, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Confirm(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CreatePIN(ctx context.Context, phoneNumber, pin string) (*customer.Customer, error) {
	args := m.Called(ctx, phoneNumber, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Authenticate(ctx context.Context, phoneNumber, pin string) (customer.LoginResult, error) {
	args := m.Called(ctx, phoneNumber, pin)
	return args.Get(0).(customer.LoginResult), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, phoneNumber string) error {
	args := m.Called(ctx, phoneNumber)
	return args.Error(0)
}

func (m *MockCustomerRepository) Transfer(ctx context.Context, senderPhone, recipientPhone string, amount decimal.Decimal) (*customer.TransferReceipt, error) {
	args := m.Called(ctx, senderPhone, recipientPhone, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.TransferReceipt), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func TestCustomerServiceImpl_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")

		confirmed := customer.New("+212600000009", customer.Registration{FirstName: "A", LastName: "B"})
		confirmed.Status = customer.StatusConfirmedNoPIN
		mockRepo.On("Confirm", ctx, "+212600000009").Return(confirmed, nil).Once()

		c, err := service.Confirm(ctx, "+212600000009", "123456")

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, customer.StatusConfirmedNoPIN, c.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("WrongCodeNeverReachesRepository", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")

		c, err := service.Confirm(ctx, "+212600000009", "000000")

		assert.ErrorIs(t, err, ErrInvalidConfirmationCode)
		assert.Nil(t, c)
		mockRepo.AssertNotCalled(t, "Confirm", ctx, "+212600000009")
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepositoryErrorPassesThrough", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Confirm", ctx, "+212600000001").Return(nil, customer.ErrAlreadyConfirmed).Once()

		_, err := service.Confirm(ctx, "+212600000001", "123456")

		assert.ErrorIs(t, err, customer.ErrAlreadyConfirmed)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")

		reg := customer.Registration{FirstName: "Amine", LastName: "Sefrioui", CIN: "Z998877", WalletType: "P", RegisteredAt: time.Now()}
		created := customer.New("+212600000009", reg)
		mockRepo.On("Register", ctx, "+212600000009", reg).Return(created, nil).Once()

		c, err := service.Register(ctx, "+212600000009", reg)

		assert.NoError(t, err)
		assert.Equal(t, customer.StatusNotConfirmed, c.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		repoError := errors.New("store failure")
		mockRepo.On("Register", ctx, "+212600000009", mock.Anything).Return(nil, repoError).Once()

		c, err := service.Register(ctx, "+212600000009", customer.Registration{})

		assert.Equal(t, repoError, err)
		assert.Nil(t, c)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerServiceImpl_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Authenticate", ctx, "+212600000001", "1234").
			Return(customer.LoginResult{Logged: true, RemainingAttempts: 3}, nil).Once()

		result, err := service.Login(ctx, "+212600000001", "1234")

		assert.NoError(t, err)
		assert.True(t, result.Logged)
		mockRepo.AssertExpectations(t)
	})

	t.Run("WrongPINIsNotAnError", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Authenticate", ctx, "+212600000001", "0000").
			Return(customer.LoginResult{Logged: false, RemainingAttempts: 2}, nil).Once()

		result, err := service.Login(ctx, "+212600000001", "0000")

		assert.NoError(t, err)
		assert.False(t, result.Logged)
		assert.Equal(t, 2, result.RemainingAttempts)
		mockRepo.AssertExpectations(t)
	})

	t.Run("LockedCustomer", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Authenticate", ctx, "+212600000005", "1234").
			Return(customer.LoginResult{}, customer.ErrLocked).Once()

		_, err := service.Login(ctx, "+212600000005", "1234")

		assert.ErrorIs(t, err, customer.ErrLocked)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerServiceImpl_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")

		amount := decimal.NewFromInt(150)
		receipt := &customer.TransferReceipt{
			SenderPhone:      "+212600000001",
			RecipientPhone:   "+212600000002",
			Amount:           amount,
			SenderBalance:    decimal.NewFromInt(100),
			RecipientBalance: decimal.NewFromInt(150),
		}
		mockRepo.On("Transfer", ctx, "+212600000001", "+212600000002", amount).Return(receipt, nil).Once()

		got, err := service.Transfer(ctx, "+212600000001", "+212600000002", amount)

		assert.NoError(t, err)
		assert.Equal(t, receipt, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Transfer", ctx, "+212600000001", "+212600000002", mock.Anything).
			Return(nil, customer.ErrInsufficientBalance).Once()

		got, err := service.Transfer(ctx, "+212600000001", "+212600000002", decimal.NewFromInt(999999))

		assert.ErrorIs(t, err, customer.ErrInsufficientBalance)
		assert.Nil(t, got)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerServiceImpl_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Delete", ctx, "+212600000001").Return(nil).Once()

		assert.NoError(t, service.Unregister(ctx, "+212600000001"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		mockRepo := new(MockCustomerRepository)
		service := NewCustomerService(testLogger(), mockRepo, "123456")
		mockRepo.On("Delete", ctx, "+212600000099").
			Return(customer.ErrNotFound{PhoneNumber: "+212600000099"}).Once()

		err := service.Unregister(ctx, "+212600000099")
		assert.ErrorIs(t, err, customer.ErrNotFound{})
		mockRepo.AssertExpectations(t)
	})
}

var _ customer.Repository = (*MockCustomerRepository)(nil)
