// Package memory holds the process-wide fixture state. Nothing survives a
// restart: every read and write happens against maps guarded by a single
// RWMutex, which also keeps multi-leg updates such as transfers atomic.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/transaction"
)

// Interface guards
var (
	_ customer.Repository    = (*Store)(nil)
	_ beneficiary.Repository = (*Store)(nil)
)

// Store is the in-memory backend for all fixtures: customer aggregates keyed
// by phone number plus the shared beneficiary list. It is injected into the
// services rather than reached through a global, so tests can build isolated
// instances.
type Store struct {
	mu            sync.RWMutex
	customers     map[string]*customer.Customer
	beneficiaries []*beneficiary.Beneficiary
	nextBenefID   int64
}

// NewStore creates an empty fixture store.
func NewStore() *Store {
	return &Store{
		customers:   make(map[string]*customer.Customer),
		nextBenefID: 1,
	}
}

// Put installs a fully built aggregate, replacing any existing one. Used by
// the fixture seeder.
func (s *Store) Put(_ context.Context, c *customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.PhoneNumber] = cloneCustomer(c)
}

// GetByPhone returns a deep copy of the aggregate so callers can read it
// without holding the store lock.
func (s *Store) GetByPhone(_ context.Context, phoneNumber string) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[phoneNumber]
	if !ok {
		return nil, customer.ErrNotFound{PhoneNumber: phoneNumber}
	}
	return cloneCustomer(c), nil
}

// Register creates the customer, replacing any previous aggregate under the
// same phone number wholesale: balance, history and status start over.
func (s *Store) Register(_ context.Context, phoneNumber string, reg customer.Registration) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := customer.New(phoneNumber, reg)
	s.customers[phoneNumber] = c
	return cloneCustomer(c), nil
}

// Confirm advances the customer past the confirmation step.
func (s *Store) Confirm(_ context.Context, phoneNumber string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[phoneNumber]
	if !ok {
		return nil, customer.ErrNotFound{PhoneNumber: phoneNumber}
	}
	if err := c.Confirm(); err != nil {
		return nil, err
	}
	return cloneCustomer(c), nil
}

// CreatePIN stores the PIN and activates the customer.
func (s *Store) CreatePIN(_ context.Context, phoneNumber, pin string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[phoneNumber]
	if !ok {
		return nil, customer.ErrNotFound{PhoneNumber: phoneNumber}
	}
	if err := c.CreatePIN(pin); err != nil {
		return nil, err
	}
	return cloneCustomer(c), nil
}

// Authenticate runs a PIN check. It takes the write lock because failed
// attempts mutate the remaining-attempts budget.
func (s *Store) Authenticate(_ context.Context, phoneNumber, pin string) (customer.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[phoneNumber]
	if !ok {
		return customer.LoginResult{}, customer.ErrNotFound{PhoneNumber: phoneNumber}
	}
	logged, err := c.Authenticate(pin)
	if err != nil {
		return customer.LoginResult{}, err
	}
	return customer.LoginResult{Logged: logged, RemainingAttempts: c.RemainingAttempts}, nil
}

// Delete removes the aggregate entirely; the phone number reads as
// unregistered afterwards.
func (s *Store) Delete(_ context.Context, phoneNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[phoneNumber]; !ok {
		return customer.ErrNotFound{PhoneNumber: phoneNumber}
	}
	delete(s.customers, phoneNumber)
	return nil
}

// Transfer debits the sender and credits the recipient under one lock
// acquisition, so no reader can observe the money in flight. Both histories
// get a record whose description carries the counterparty phone number and
// whose BalanceAfter continues the balance-replay chain.
func (s *Store) Transfer(_ context.Context, senderPhone, recipientPhone string, amount decimal.Decimal) (*customer.TransferReceipt, error) {
	if !amount.IsPositive() {
		return nil, customer.ErrInvalidAmount
	}
	if senderPhone == recipientPhone {
		return nil, customer.ErrSelfTransfer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.customers[senderPhone]
	if !ok {
		return nil, customer.ErrNotFound{PhoneNumber: senderPhone}
	}
	recipient, ok := s.customers[recipientPhone]
	if !ok {
		return nil, customer.ErrNotFound{PhoneNumber: recipientPhone}
	}

	if err := sender.Debit(amount); err != nil {
		return nil, err
	}
	if err := recipient.Credit(amount); err != nil {
		// Debit succeeded but credit cannot fail for a positive amount;
		// restore the sender anyway to keep the invariant obvious.
		sender.Balance = sender.Balance.Add(amount)
		return nil, err
	}

	now := time.Now()
	sender.AppendTransaction(transaction.Transaction{
		ID:           sender.NextTransactionID(),
		Type:         transaction.TypeTransferOut,
		Amount:       amount.Neg(),
		Currency:     transaction.Currency,
		Date:         now,
		Description:  "Transfer to " + recipientPhone,
		Status:       transaction.StatusCompleted,
		BalanceAfter: sender.Balance,
	})
	recipient.AppendTransaction(transaction.Transaction{
		ID:           recipient.NextTransactionID(),
		Type:         transaction.TypeTransferIn,
		Amount:       amount,
		Currency:     transaction.Currency,
		Date:         now,
		Description:  "Transfer from " + senderPhone,
		Status:       transaction.StatusCompleted,
		BalanceAfter: recipient.Balance,
	})

	return &customer.TransferReceipt{
		SenderPhone:      senderPhone,
		RecipientPhone:   recipientPhone,
		Amount:           amount,
		FeesAmount:       decimal.Zero,
		Currency:         transaction.Currency,
		SenderBalance:    sender.Balance,
		RecipientBalance: recipient.Balance,
		ExecutedAt:       now,
	}, nil
}

// List returns copies of every beneficiary, oldest first.
func (s *Store) List(_ context.Context) ([]*beneficiary.Beneficiary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*beneficiary.Beneficiary, len(s.beneficiaries))
	for i, b := range s.beneficiaries {
		cp := *b
		out[i] = &cp
	}
	return out, nil
}

// Create assigns the next id and stores the beneficiary.
func (s *Store) Create(_ context.Context, b *beneficiary.Beneficiary) (*beneficiary.Beneficiary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	stored.ID = s.nextBenefID
	s.nextBenefID++
	s.beneficiaries = append(s.beneficiaries, &stored)

	cp := stored
	return &cp, nil
}

// cloneCustomer deep-copies an aggregate so readers never alias the slice
// the store keeps mutating.
func cloneCustomer(c *customer.Customer) *customer.Customer {
	cp := *c
	cp.Transactions = append([]transaction.Transaction(nil), c.Transactions...)
	return &cp
}
