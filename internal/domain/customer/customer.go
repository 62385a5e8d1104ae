package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/transaction"
)

// Common errors
var (
	ErrAlreadyConfirmed    = errors.New("customer is already confirmed")
	ErrNotConfirmed        = errors.New("customer is not confirmed yet")
	ErrPINExists           = errors.New("customer PIN is already created")
	ErrNoPIN               = errors.New("customer PIN is not created yet")
	ErrLocked              = errors.New("customer is locked")
	ErrInsufficientBalance = errors.New("insufficient balance for transfer")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrSelfTransfer        = errors.New("sender and recipient must differ")
)

// Status encodes the lifecycle position of a wallet customer. The NotFound
// value is never stored: an unregistered phone number is represented by the
// absence of a record, and only surfaces as a status on read.
type Status int

const (
	StatusNotFound Status = iota
	StatusNotConfirmed
	StatusConfirmedNoPIN
	StatusActive
	StatusTemporarilyLocked
	StatusPermanentlyLocked
)

// Message returns the display string the status endpoint reports.
func (s Status) Message() string {
	switch s {
	case StatusNotConfirmed:
		return "Customer registered, confirmation pending"
	case StatusConfirmedNoPIN:
		return "Customer confirmed, PIN not created"
	case StatusActive:
		return "Customer active"
	case StatusTemporarilyLocked:
		return "Customer temporarily locked"
	case StatusPermanentlyLocked:
		return "Customer permanently locked"
	default:
		return "Customer not found"
	}
}

// Locked reports whether the status blocks authentication.
func (s Status) Locked() bool {
	return s == StatusTemporarilyLocked || s == StatusPermanentlyLocked
}

// MaxLoginAttempts is the failed-PIN budget before a temporary lock.
const MaxLoginAttempts = 3

// Registration holds the identity data captured when a customer registers.
// Re-registration overwrites the whole aggregate, registration included.
type Registration struct {
	FirstName    string
	LastName     string
	CIN          string
	WalletType   string
	RegisteredAt time.Time
}

// Customer is the single aggregate behind one phone number: lifecycle
// status, registration data, PIN, balance and the newest-first transaction
// history all live together so they can never drift apart.
type Customer struct {
	PhoneNumber       string
	Status            Status
	Registration      Registration
	PIN               string
	Balance           decimal.Decimal
	Currency          string
	RemainingAttempts int
	Transactions      []transaction.Transaction
}

// New registers a fresh customer awaiting confirmation.
func New(phoneNumber string, reg Registration) *Customer {
	return &Customer{
		PhoneNumber:       phoneNumber,
		Status:            StatusNotConfirmed,
		Registration:      reg,
		Balance:           decimal.Zero,
		Currency:          transaction.Currency,
		RemainingAttempts: MaxLoginAttempts,
	}
}

// Confirm moves a registered customer to the confirmed state.
func (c *Customer) Confirm() error {
	if c.Status.Locked() {
		return ErrLocked
	}
	if c.Status != StatusNotConfirmed {
		return ErrAlreadyConfirmed
	}
	c.Status = StatusConfirmedNoPIN
	return nil
}

// CreatePIN stores the PIN and activates the customer.
func (c *Customer) CreatePIN(pin string) error {
	switch {
	case c.Status.Locked():
		return ErrLocked
	case c.Status == StatusNotConfirmed:
		return ErrNotConfirmed
	case c.Status != StatusConfirmedNoPIN:
		return ErrPINExists
	}
	c.PIN = pin
	c.Status = StatusActive
	c.RemainingAttempts = MaxLoginAttempts
	return nil
}

// Authenticate checks the PIN against the stored one. A success refills the
// attempt budget; a failure burns one attempt and locks the customer when
// the budget hits zero. The boolean result is the login outcome, not an
// error: a wrong PIN is normal traffic.
func (c *Customer) Authenticate(pin string) (bool, error) {
	switch {
	case c.Status.Locked():
		return false, ErrLocked
	case c.Status == StatusNotConfirmed:
		return false, ErrNotConfirmed
	case c.Status == StatusConfirmedNoPIN:
		return false, ErrNoPIN
	}

	if pin == c.PIN {
		c.RemainingAttempts = MaxLoginAttempts
		return true, nil
	}

	c.RemainingAttempts--
	if c.RemainingAttempts <= 0 {
		c.RemainingAttempts = 0
		c.Status = StatusTemporarilyLocked
	}
	return false, nil
}

// Credit adds the amount to the balance.
func (c *Customer) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// Debit subtracts the amount from the balance.
func (c *Customer) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// NextTransactionID returns the next dense identifier for this history.
func (c *Customer) NextTransactionID() string {
	return transaction.FormatID(len(c.Transactions) + 1)
}

// AppendTransaction prepends tx, keeping the history newest-first.
func (c *Customer) AppendTransaction(tx transaction.Transaction) {
	c.Transactions = append([]transaction.Transaction{tx}, c.Transactions...)
}
