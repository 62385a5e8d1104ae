package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/operation"
	"github.com/chari-wallet-mock/internal/domain/transaction"
	"github.com/chari-wallet-mock/internal/pagination"
)

// TransactionServiceImpl implements the TransactionService interface. Both
// the raw history and the operation view read from the same records; the
// operation shape is derived per request and never stored.
type TransactionServiceImpl struct {
	customers customer.Repository
	logger    *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(logger *slog.Logger, customers customer.Repository) TransactionService {
	return &TransactionServiceImpl{
		customers: customers,
		logger:    logger,
	}
}

// ListTransactions returns one page of the newest-first history after
// applying the optional type and status filters
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, phoneNumber string, q pagination.Query, typeFilter, statusFilter string) ([]transaction.Transaction, pagination.Meta, error) {
	c, err := s.customers.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	filtered := transaction.Filter(c.Transactions, typeFilter, statusFilter)
	return pagination.Slice(filtered, q)
}

// GetTransaction retrieves one transaction by its full id or its bare
// numeric suffix
func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, phoneNumber, id string) (*transaction.Transaction, error) {
	c, err := s.customers.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	for i := range c.Transactions {
		if c.Transactions[i].ID == id {
			tx := c.Transactions[i]
			return &tx, nil
		}
	}
	// A bare numeric id addresses the TXN suffix.
	if n, convErr := strconv.Atoi(id); convErr == nil && n > 0 {
		for i := range c.Transactions {
			if transaction.NumericID(c.Transactions[i].ID) == n {
				tx := c.Transactions[i]
				return &tx, nil
			}
		}
	}
	return nil, transaction.ErrNotFound{ID: id}
}

// ListOperations returns one page of the operation view. Records are
// filtered first so the pagination metadata counts what the filters kept,
// then only the returned page is transformed.
func (s *TransactionServiceImpl) ListOperations(ctx context.Context, phoneNumber string, q pagination.Query, typeCode, statusCode *int) ([]operation.Operation, pagination.Meta, error) {
	c, err := s.customers.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	filtered := operation.FilterTransactions(c.Transactions, typeCode, statusCode)
	page, meta, err := pagination.Slice(filtered, q)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	ops := make([]operation.Operation, len(page))
	for i, tx := range page {
		ops[i] = operation.FromTransaction(tx, c.PhoneNumber, i+1)
	}
	return ops, meta, nil
}

// GetOperation resolves id against transaction numeric ids first, then falls
// back to the 1-based position in the newest-first history
func (s *TransactionServiceImpl) GetOperation(ctx context.Context, phoneNumber string, id int) (*operation.Operation, error) {
	c, err := s.customers.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	for _, tx := range c.Transactions {
		if transaction.NumericID(tx.ID) == id {
			op := operation.FromTransaction(tx, c.PhoneNumber, id)
			return &op, nil
		}
	}
	if id >= 1 && id <= len(c.Transactions) {
		op := operation.FromTransaction(c.Transactions[id-1], c.PhoneNumber, id)
		return &op, nil
	}
	return nil, operation.ErrNotFound{ID: id}
}
