package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/transaction"
	"github.com/chari-wallet-mock/internal/pagination"
	"github.com/chari-wallet-mock/internal/wallet_api/service"
)

// TransactionHandler handles HTTP requests for raw transaction histories
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// List returns one page of a customer's history, newest first. Optional
// type and status filters apply before pagination so the metadata counts
// the filtered collection.
func (h *TransactionHandler) List(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}

	q := pagination.Query{
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
		Page:   c.Query("page"),
	}

	txs, meta, err := h.transactionService.ListTransactions(c.Request.Context(), phoneNumber, q, c.Query("type"), c.Query("status"))
	if err != nil {
		h.respondTransactionError(c, err)
		return
	}

	items := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = newTransactionResponse(tx)
	}
	RespondOK(c, TransactionListResponse{
		PhoneNumber:  phoneNumber,
		Transactions: items,
		Pagination:   meta,
	})
}

// GetByID retrieves a single transaction by its identifier, accepting both
// the full TXN_007 form and the bare numeric suffix
func (h *TransactionHandler) GetByID(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), phoneNumber, c.Param("id"))
	if err != nil {
		h.respondTransactionError(c, err)
		return
	}

	RespondOK(c, newTransactionResponse(*tx))
}

// respondTransactionError translates lookup errors into the wire taxonomy
func (h *TransactionHandler) respondTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrNotFound{}):
		RespondNotFound(c, "Customer not found")
	case errors.Is(err, transaction.ErrNotFound{}):
		RespondNotFound(c, "Transaction not found")
	case errors.Is(err, pagination.ErrInvalidLimit):
		RespondBadRequest(c, "limit must be greater than zero")
	default:
		h.logger.Error("Unhandled transaction error", "error", err)
		RespondInternalError(c)
	}
}
