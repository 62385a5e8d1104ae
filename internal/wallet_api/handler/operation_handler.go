package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/operation"
	"github.com/chari-wallet-mock/internal/pagination"
	"github.com/chari-wallet-mock/internal/wallet_api/service"
)

// OperationHandler handles HTTP requests for the partner-facing operation
// view of transaction histories
type OperationHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(logger *slog.Logger, transactionService service.TransactionService) *OperationHandler {
	return &OperationHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// List returns one page of operations. This endpoint speaks the partner's
// dialect: pageSize/pageNumber instead of limit/page, numeric type and
// status filters instead of the transaction-level strings.
func (h *OperationHandler) List(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}

	typeCode, ok := optionalCode(c.Query("operationType"))
	if !ok {
		RespondBadRequest(c, "operationType must be numeric")
		return
	}
	statusCode, ok := optionalCode(c.Query("transactionStatus"))
	if !ok {
		RespondBadRequest(c, "transactionStatus must be numeric")
		return
	}

	q := pagination.Query{
		Limit:  c.Query("pageSize"),
		Offset: c.Query("offset"),
		Page:   c.Query("pageNumber"),
	}

	ops, meta, err := h.transactionService.ListOperations(c.Request.Context(), phoneNumber, q, typeCode, statusCode)
	if err != nil {
		h.respondOperationError(c, err)
		return
	}

	items := make([]OperationResponse, len(ops))
	for i, op := range ops {
		items[i] = newOperationResponse(op)
	}
	RespondOK(c, OperationListResponse{
		PhoneNumber: phoneNumber,
		Operations:  items,
		Pagination:  meta,
	})
}

// GetByID retrieves a single operation. The id is matched against
// transaction numeric ids first and list positions second.
func (h *OperationHandler) GetByID(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}

	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id < 1 {
		RespondBadRequest(c, "operation id must be a positive number")
		return
	}

	op, err := h.transactionService.GetOperation(c.Request.Context(), phoneNumber, id)
	if err != nil {
		h.respondOperationError(c, err)
		return
	}

	RespondOK(c, newOperationResponse(*op))
}

// optionalCode parses an optional numeric query filter. An empty value is a
// nil filter; a non-numeric one is the caller's error.
func optionalCode(raw string) (*int, bool) {
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// respondOperationError translates lookup errors into the wire taxonomy
func (h *OperationHandler) respondOperationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrNotFound{}):
		RespondNotFound(c, "Customer not found")
	case errors.Is(err, operation.ErrNotFound{}):
		RespondNotFound(c, "Operation not found")
	case errors.Is(err, pagination.ErrInvalidLimit):
		RespondBadRequest(c, "pageSize must be greater than zero")
	default:
		h.logger.Error("Unhandled operation error", "error", err)
		RespondInternalError(c)
	}
}
