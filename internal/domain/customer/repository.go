package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines the customer fixture operations
type Repository interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*Customer, error)
	Register(ctx context.Context, phoneNumber string, reg Registration) (*Customer, error)
	Confirm(ctx context.Context, phoneNumber string) (*Customer, error)
	CreatePIN(ctx context.Context, phoneNumber, pin string) (*Customer, error)
	Authenticate(ctx context.Context, phoneNumber, pin string) (LoginResult, error)
	Delete(ctx context.Context, phoneNumber string) error

	// Transfer moves the amount between two customers atomically, appending
	// the matching TRANSFER_OUT and TRANSFER_IN records to both histories.
	Transfer(ctx context.Context, senderPhone, recipientPhone string, amount decimal.Decimal) (*TransferReceipt, error)
}

// LoginResult reports the outcome of a PIN check.
type LoginResult struct {
	Logged            bool
	RemainingAttempts int
}

// TransferReceipt reports the balances and records written by a transfer.
type TransferReceipt struct {
	SenderPhone      string
	RecipientPhone   string
	Amount           decimal.Decimal
	FeesAmount       decimal.Decimal
	Currency         string
	SenderBalance    decimal.Decimal
	RecipientBalance decimal.Decimal
	ExecutedAt       time.Time
}

// ErrNotFound indicates no customer is registered under the phone number
type ErrNotFound struct {
	PhoneNumber string
}

func (e ErrNotFound) Error() string {
	return "customer not found: " + e.PhoneNumber
}

// Is implements the errors.Is interface for ErrNotFound
func (e ErrNotFound) Is(target error) bool {
	t, ok := target.(ErrNotFound)
	if !ok {
		return false
	}
	// An empty target phone number matches any ErrNotFound
	if t.PhoneNumber == "" {
		return true
	}
	return e.PhoneNumber == t.PhoneNumber
}
