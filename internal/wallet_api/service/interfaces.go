package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/operation"
	"github.com/chari-wallet-mock/internal/domain/transaction"
	"github.com/chari-wallet-mock/internal/pagination"
)

// CustomerService defines the interface for customer lifecycle, balance and
// transfer operations
type CustomerService interface {
	// Register creates the customer, replacing any existing aggregate under
	// the same phone number
	Register(ctx context.Context, phoneNumber string, reg customer.Registration) (*customer.Customer, error)

	// Confirm checks the confirmation code and advances the customer
	// Returns ErrInvalidConfirmationCode when the code does not match
	Confirm(ctx context.Context, phoneNumber, code string) (*customer.Customer, error)

	// CreatePIN stores the PIN and activates the customer
	CreatePIN(ctx context.Context, phoneNumber, pin string) (*customer.Customer, error)

	// Login runs a PIN check; a wrong PIN is a result, not an error
	Login(ctx context.Context, phoneNumber, pin string) (customer.LoginResult, error)

	// Status retrieves the customer aggregate for status reporting
	// Returns customer.ErrNotFound for unregistered phone numbers
	Status(ctx context.Context, phoneNumber string) (*customer.Customer, error)

	// Balance retrieves the customer aggregate for balance reporting
	Balance(ctx context.Context, phoneNumber string) (*customer.Customer, error)

	// Unregister removes the customer fixture entirely
	Unregister(ctx context.Context, phoneNumber string) error

	// Transfer moves the amount between two customers atomically
	Transfer(ctx context.Context, senderPhone, recipientPhone string, amount decimal.Decimal) (*customer.TransferReceipt, error)
}

// TransactionService defines the interface for history reads and their
// operation projections
type TransactionService interface {
	// ListTransactions returns one page of the newest-first history after
	// applying the optional type and status filters
	ListTransactions(ctx context.Context, phoneNumber string, q pagination.Query, typeFilter, statusFilter string) ([]transaction.Transaction, pagination.Meta, error)

	// GetTransaction retrieves one transaction by its full id (TXN_007) or
	// its bare numeric suffix (7)
	GetTransaction(ctx context.Context, phoneNumber, id string) (*transaction.Transaction, error)

	// ListOperations returns one page of the operation view. Filters apply
	// before pagination; operation ids are 1-based positions within the page
	ListOperations(ctx context.Context, phoneNumber string, q pagination.Query, typeCode, statusCode *int) ([]operation.Operation, pagination.Meta, error)

	// GetOperation resolves id against transaction numeric ids first, then
	// falls back to the 1-based position in the newest-first history
	GetOperation(ctx context.Context, phoneNumber string, id int) (*operation.Operation, error)
}

// BeneficiaryService defines the interface for beneficiary operations
type BeneficiaryService interface {
	// List returns one page of saved beneficiaries
	List(ctx context.Context, q pagination.Query) ([]*beneficiary.Beneficiary, pagination.Meta, error)

	// Create validates and stores a new beneficiary
	Create(ctx context.Context, name, phoneNumber, rib, email string) (*beneficiary.Beneficiary, error)
}
