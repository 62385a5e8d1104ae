package handler

import (
	"time"

	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/operation"
	"github.com/chari-wallet-mock/internal/domain/transaction"
	"github.com/chari-wallet-mock/internal/pagination"
)

// RegisterRequest represents a request to register a wallet customer
type RegisterRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	CIN         string `json:"cin" binding:"required"`
	WalletType  string `json:"walletType" binding:"required"`
}

// ConfirmRequest represents a request to confirm a registration
type ConfirmRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// PINRequest represents a request to create a customer PIN
type PINRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	PIN         string `json:"pin" binding:"required"`
}

// LoginRequest represents a PIN login attempt
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	PIN         string `json:"pin" binding:"required"`
}

// TransferRequest represents a wallet-to-wallet transfer order
type TransferRequest struct {
	SenderPhoneNumber    string  `json:"senderPhoneNumber" binding:"required"`
	RecipientPhoneNumber string  `json:"recipientPhoneNumber" binding:"required"`
	Amount               float64 `json:"amount" binding:"required,gt=0"`
}

// CreateBeneficiaryRequest represents a request to save a transfer destination
type CreateBeneficiaryRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	RIB         string `json:"rib"`
	Email       string `json:"email"`
}

// StatusResponse reports a customer's lifecycle position
type StatusResponse struct {
	PhoneNumber string `json:"phoneNumber"`
	Status      int    `json:"status"`
	Message     string `json:"message"`
}

// RegistrationResponse reports a customer's registration data alongside the
// lifecycle status
type RegistrationResponse struct {
	PhoneNumber      string `json:"phoneNumber"`
	Status           int    `json:"status"`
	Message          string `json:"message"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	CIN              string `json:"cin"`
	WalletType       string `json:"walletType"`
	RegistrationDate string `json:"registrationDate"`
}

// LoginResponse reports a PIN check outcome
type LoginResponse struct {
	PhoneNumber       string `json:"phoneNumber"`
	Logged            bool   `json:"logged"`
	RemainingAttempts int    `json:"remainingAttempts"`
}

// BalanceResponse reports a customer's current balance
type BalanceResponse struct {
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// UnregisterResponse confirms a fixture deletion
type UnregisterResponse struct {
	PhoneNumber  string `json:"phoneNumber"`
	Unregistered bool   `json:"unregistered"`
}

// TransferResponse reports an executed transfer with both resulting balances
type TransferResponse struct {
	SenderPhoneNumber    string  `json:"senderPhoneNumber"`
	RecipientPhoneNumber string  `json:"recipientPhoneNumber"`
	Amount               float64 `json:"amount"`
	FeesAmount           float64 `json:"feesAmount"`
	Currency             string  `json:"currency"`
	SenderBalance        float64 `json:"senderBalance"`
	RecipientBalance     float64 `json:"recipientBalance"`
	Date                 string  `json:"date"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	BalanceAfter float64 `json:"balanceAfter"`
}

// TransactionListResponse represents one page of a customer's history
type TransactionListResponse struct {
	PhoneNumber  string                `json:"phoneNumber"`
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   pagination.Meta       `json:"pagination"`
}

// OperationResponse represents an operation in API responses. Sender,
// receiver and beneficiary are deliberately nullable: a missing counterparty
// is part of the contract, not an omission.
type OperationResponse struct {
	OperationID          int     `json:"operationId"`
	OperationType        int     `json:"operationType"`
	TransactionReference string  `json:"transactionReference"`
	Amount               float64 `json:"amount"`
	FeesAmount           float64 `json:"feesAmount"`
	TotalAmount          float64 `json:"totalAmount"`
	Currency             string  `json:"currency"`
	Date                 string  `json:"date"`
	TransactionStatus    int     `json:"transactionStatus"`
	Sens                 int     `json:"sens"`
	Sender               *string `json:"sender"`
	Receiver             *string `json:"receiver"`
	Beneficiary          *string `json:"beneficiary"`
}

// OperationListResponse represents one page of the operation view
type OperationListResponse struct {
	PhoneNumber string              `json:"phoneNumber"`
	Operations  []OperationResponse `json:"operations"`
	Pagination  pagination.Meta     `json:"pagination"`
}

// BeneficiaryResponse represents a beneficiary in API responses
type BeneficiaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	RIB         string `json:"rib,omitempty"`
	Email       string `json:"email,omitempty"`
	CreatedAt   string `json:"createdAt"`
	Visible     bool   `json:"visible"`
}

// BeneficiaryListResponse represents one page of beneficiaries
type BeneficiaryListResponse struct {
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
	Pagination    pagination.Meta       `json:"pagination"`
}

// newStatusResponse builds the status view of a customer
func newStatusResponse(c *customer.Customer) StatusResponse {
	return StatusResponse{
		PhoneNumber: c.PhoneNumber,
		Status:      int(c.Status),
		Message:     c.Status.Message(),
	}
}

// newRegistrationResponse builds the registration view of a customer
func newRegistrationResponse(c *customer.Customer) RegistrationResponse {
	return RegistrationResponse{
		PhoneNumber:      c.PhoneNumber,
		Status:           int(c.Status),
		Message:          c.Status.Message(),
		FirstName:        c.Registration.FirstName,
		LastName:         c.Registration.LastName,
		CIN:              c.Registration.CIN,
		WalletType:       c.Registration.WalletType,
		RegistrationDate: c.Registration.RegisteredAt.Format(time.RFC3339),
	}
}

// newTransactionResponse maps a domain transaction onto its wire shape
func newTransactionResponse(tx transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Amount:       tx.Amount.InexactFloat64(),
		Currency:     tx.Currency,
		Date:         tx.Date.Format(time.RFC3339),
		Description:  tx.Description,
		Status:       string(tx.Status),
		BalanceAfter: tx.BalanceAfter.InexactFloat64(),
	}
}

// newOperationResponse maps a derived operation onto its wire shape
func newOperationResponse(op operation.Operation) OperationResponse {
	return OperationResponse{
		OperationID:          op.OperationID,
		OperationType:        op.OperationType,
		TransactionReference: op.TransactionReference,
		Amount:               op.Amount.InexactFloat64(),
		FeesAmount:           op.FeesAmount.InexactFloat64(),
		TotalAmount:          op.TotalAmount.InexactFloat64(),
		Currency:             op.Currency,
		Date:                 op.Date.Format(time.RFC3339),
		TransactionStatus:    op.TransactionStatus,
		Sens:                 op.Sens,
		Sender:               op.Sender,
		Receiver:             op.Receiver,
		Beneficiary:          op.Beneficiary,
	}
}

// newBeneficiaryResponse maps a beneficiary onto its wire shape
func newBeneficiaryResponse(b *beneficiary.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:          b.ID,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		RIB:         b.RIB,
		Email:       b.Email,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		Visible:     b.Visible,
	}
}
