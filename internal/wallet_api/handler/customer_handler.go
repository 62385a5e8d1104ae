package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/wallet_api/service"
)

// CustomerHandler handles HTTP requests for the customer lifecycle, balance
// lookups and transfers
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(logger *slog.Logger, customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Register handles customer registration. Registering an already known phone
// number restarts that fixture from scratch.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !validPhone(req.PhoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}
	if !validWalletType(req.WalletType) {
		RespondBadRequest(c, "walletType must be a single uppercase letter")
		return
	}

	cust, err := h.customerService.Register(c.Request.Context(), req.PhoneNumber, customer.Registration{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CIN:          req.CIN,
		WalletType:   req.WalletType,
		RegisteredAt: time.Now(),
	})
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondCreated(c, newRegistrationResponse(cust))
}

// Confirm handles registration confirmation against the configured code
func (h *CustomerHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !validPhone(req.PhoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}

	cust, err := h.customerService.Confirm(c.Request.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, newStatusResponse(cust))
}

// CreatePIN handles PIN creation, the step that activates a confirmed customer
func (h *CustomerHandler) CreatePIN(c *gin.Context) {
	var req PINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !validPhone(req.PhoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}
	if !validPIN(req.PIN) {
		RespondBadRequest(c, "pin must be exactly 4 digits")
		return
	}

	cust, err := h.customerService.CreatePIN(c.Request.Context(), req.PhoneNumber, req.PIN)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, newStatusResponse(cust))
}

// Login handles a PIN check. A wrong PIN is a 200 with logged=false; only
// lifecycle violations and unknown customers are errors.
func (h *CustomerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !validPhone(req.PhoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}
	if !validPIN(req.PIN) {
		RespondBadRequest(c, "pin must be exactly 4 digits")
		return
	}

	result, err := h.customerService.Login(c.Request.Context(), req.PhoneNumber, req.PIN)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, LoginResponse{
		PhoneNumber:       req.PhoneNumber,
		Logged:            result.Logged,
		RemainingAttempts: result.RemainingAttempts,
	})
}

// Status reports the lifecycle status of a phone number. Unregistered
// numbers answer 204 rather than an error: not existing is a valid status.
func (h *CustomerHandler) Status(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}
	if !validPhone(phoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}

	cust, err := h.customerService.Status(c.Request.Context(), phoneNumber)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound{}) {
			RespondNoContent(c)
			return
		}
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, newStatusResponse(cust))
}

// Balance reports the current wallet balance
func (h *CustomerHandler) Balance(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}
	if !validPhone(phoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}

	cust, err := h.customerService.Balance(c.Request.Context(), phoneNumber)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, BalanceResponse{
		PhoneNumber: cust.PhoneNumber,
		Amount:      cust.Balance.InexactFloat64(),
		Currency:    cust.Currency,
	})
}

// Unregister removes a customer fixture so integration suites can clean up
// after themselves
func (h *CustomerHandler) Unregister(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		RespondBadRequest(c, "phoneNumber query parameter is required")
		return
	}
	if !validPhone(phoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}

	if err := h.customerService.Unregister(c.Request.Context(), phoneNumber); err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, UnregisterResponse{
		PhoneNumber:  phoneNumber,
		Unregistered: true,
	})
}

// Transfer executes a wallet-to-wallet transfer between two customers
func (h *CustomerHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !validPhone(req.SenderPhoneNumber) {
		RespondBadRequest(c, "senderPhoneNumber must match +<8..15 digits>")
		return
	}
	if !validPhone(req.RecipientPhoneNumber) {
		RespondBadRequest(c, "recipientPhoneNumber must match +<8..15 digits>")
		return
	}

	receipt, err := h.customerService.Transfer(c.Request.Context(), req.SenderPhoneNumber, req.RecipientPhoneNumber, decimal.NewFromFloat(req.Amount))
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	RespondOK(c, TransferResponse{
		SenderPhoneNumber:    receipt.SenderPhone,
		RecipientPhoneNumber: receipt.RecipientPhone,
		Amount:               receipt.Amount.InexactFloat64(),
		FeesAmount:           receipt.FeesAmount.InexactFloat64(),
		Currency:             receipt.Currency,
		SenderBalance:        receipt.SenderBalance.InexactFloat64(),
		RecipientBalance:     receipt.RecipientBalance.InexactFloat64(),
		Date:                 receipt.ExecutedAt.Format(time.RFC3339),
	})
}

// respondCustomerError translates domain errors into the wire taxonomy:
// unknown customers are 404s, lifecycle and balance violations are 400s
func (h *CustomerHandler) respondCustomerError(c *gin.Context, err error) {
	var notFound customer.ErrNotFound
	switch {
	case errors.As(err, &notFound):
		RespondNotFound(c, "Customer not found: "+notFound.PhoneNumber)
	case errors.Is(err, service.ErrInvalidConfirmationCode):
		RespondBadRequest(c, "Invalid confirmation code")
	case errors.Is(err, customer.ErrAlreadyConfirmed):
		RespondBadRequest(c, "Customer already confirmed")
	case errors.Is(err, customer.ErrNotConfirmed):
		RespondBadRequest(c, "Customer not confirmed yet")
	case errors.Is(err, customer.ErrPINExists):
		RespondBadRequest(c, "Customer PIN already created")
	case errors.Is(err, customer.ErrNoPIN):
		RespondBadRequest(c, "Customer PIN not created yet")
	case errors.Is(err, customer.ErrLocked):
		RespondBadRequest(c, "Customer is locked")
	case errors.Is(err, customer.ErrInsufficientBalance):
		RespondBadRequest(c, "Insufficient balance")
	case errors.Is(err, customer.ErrSelfTransfer):
		RespondBadRequest(c, "Sender and recipient must differ")
	case errors.Is(err, customer.ErrInvalidAmount):
		RespondBadRequest(c, "Amount must be positive")
	default:
		h.logger.Error("Unhandled customer error", "error", err)
		RespondInternalError(c)
	}
}
