package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/customer"
)

// ErrInvalidConfirmationCode indicates a confirmation attempt with the wrong
// code. The expected code is fixed per deployment, not per customer.
var ErrInvalidConfirmationCode = errors.New("invalid confirmation code")

// CustomerServiceImpl implements the CustomerService interface
type CustomerServiceImpl struct {
	customers        customer.Repository
	confirmationCode string
	logger           *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(logger *slog.Logger, customers customer.Repository, confirmationCode string) CustomerService {
	return &CustomerServiceImpl{
		customers:        customers,
		confirmationCode: confirmationCode,
		logger:           logger,
	}
}

// Register creates the customer, replacing any existing aggregate under the
// same phone number
func (s *CustomerServiceImpl) Register(ctx context.Context, phoneNumber string, reg customer.Registration) (*customer.Customer, error) {
	c, err := s.customers.Register(ctx, phoneNumber, reg)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Customer registered", "phone_number", phoneNumber)
	return c, nil
}

// Confirm checks the confirmation code and advances the customer
func (s *CustomerServiceImpl) Confirm(ctx context.Context, phoneNumber, code string) (*customer.Customer, error) {
	if code != s.confirmationCode {
		return nil, ErrInvalidConfirmationCode
	}
	return s.customers.Confirm(ctx, phoneNumber)
}

// CreatePIN stores the PIN and activates the customer
func (s *CustomerServiceImpl) CreatePIN(ctx context.Context, phoneNumber, pin string) (*customer.Customer, error) {
	return s.customers.CreatePIN(ctx, phoneNumber, pin)
}

// Login runs a PIN check against the stored customer
func (s *CustomerServiceImpl) Login(ctx context.Context, phoneNumber, pin string) (customer.LoginResult, error) {
	result, err := s.customers.Authenticate(ctx, phoneNumber, pin)
	if err != nil {
		return customer.LoginResult{}, err
	}
	if !result.Logged {
		s.logger.Info("Login attempt failed",
			"phone_number", phoneNumber,
			"remaining_attempts", result.RemainingAttempts,
		)
	}
	return result, nil
}

// Status retrieves the customer aggregate for status reporting
func (s *CustomerServiceImpl) Status(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	return s.customers.GetByPhone(ctx, phoneNumber)
}

// Balance retrieves the customer aggregate for balance reporting
func (s *CustomerServiceImpl) Balance(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	return s.customers.GetByPhone(ctx, phoneNumber)
}

// Unregister removes the customer fixture entirely
func (s *CustomerServiceImpl) Unregister(ctx context.Context, phoneNumber string) error {
	if err := s.customers.Delete(ctx, phoneNumber); err != nil {
		return err
	}
	s.logger.Info("Customer unregistered", "phone_number", phoneNumber)
	return nil
}

// Transfer moves the amount between two customers atomically
func (s *CustomerServiceImpl) Transfer(ctx context.Context, senderPhone, recipientPhone string, amount decimal.Decimal) (*customer.TransferReceipt, error) {
	receipt, err := s.customers.Transfer(ctx, senderPhone, recipientPhone, amount)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Transfer executed",
		"sender", senderPhone,
		"recipient", recipientPhone,
		"amount", amount.InexactFloat64(),
	)
	return receipt, nil
}
