package operation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/domain/transaction"
)

// Operation type codes in the partner-facing view. Both transfer directions
// collapse onto the same code.
const (
	TypeCodeUnknown     = 0
	TypeCodeCashIn      = 1
	TypeCodeCashOut     = 2
	TypeCodeTransfer    = 3
	TypeCodeBillPayment = 4
)

// Operation status codes. Anything not settled reads as pending.
const (
	StatusCodePending   = 1
	StatusCodeCompleted = 2
)

// Direction (sens) codes.
const (
	SensCredit = 1
	SensDebit  = 2
)

// Operation is the partner-facing projection of a Transaction. It is derived
// on every read and never stored; OperationID is positional, supplied by the
// caller. Sender, Receiver and Beneficiary stay nil when the underlying
// record carries no usable counterparty.
type Operation struct {
	OperationID          int
	OperationType        int
	TransactionReference string
	Amount               decimal.Decimal
	FeesAmount           decimal.Decimal
	TotalAmount          decimal.Decimal
	Currency             string
	Date                 time.Time
	TransactionStatus    int
	Sens                 int
	Sender               *string
	Receiver             *string
	Beneficiary          *string
}

var phonePattern = regexp.MustCompile(`\+\d{8,15}`)

// ExtractPhone returns the first phone-shaped substring of a transaction
// description. Absence is an expected outcome, not an error.
func ExtractPhone(description string) (string, bool) {
	m := phonePattern.FindString(description)
	return m, m != ""
}

// TypeCode maps a transaction type onto its operation view code.
func TypeCode(t transaction.Type) int {
	switch t {
	case transaction.TypeCashIn:
		return TypeCodeCashIn
	case transaction.TypeCashOut:
		return TypeCodeCashOut
	case transaction.TypeTransferIn, transaction.TypeTransferOut:
		return TypeCodeTransfer
	case transaction.TypeBillPayment:
		return TypeCodeBillPayment
	default:
		return TypeCodeUnknown
	}
}

// StatusCode maps a transaction status onto the view's numeric status.
func StatusCode(s transaction.Status) int {
	if s == transaction.StatusCompleted {
		return StatusCodeCompleted
	}
	return StatusCodePending
}

// Reference synthesizes the deterministic partner reference for a
// transaction: T, the doubled two-digit type code, the date down to the
// hour, and the numeric part of the transaction id.
func Reference(tx transaction.Transaction) string {
	code := TypeCode(tx.Type)
	return fmt.Sprintf("T%02d%02d-%s-%d", code, code, tx.Date.Format("06010215"), transaction.NumericID(tx.ID))
}

// FromTransaction derives the operation view of tx as seen by the owner of
// ownerPhone. Counterparty phone numbers are recovered from the description
// text when present; a failed extraction simply leaves the field nil.
func FromTransaction(tx transaction.Transaction, ownerPhone string, operationID int) Operation {
	op := Operation{
		OperationID:          operationID,
		OperationType:        TypeCode(tx.Type),
		TransactionReference: Reference(tx),
		Amount:               tx.Amount.Abs(),
		FeesAmount:           decimal.Zero,
		TotalAmount:          tx.Amount.Abs(),
		Currency:             tx.Currency,
		Date:                 tx.Date,
		TransactionStatus:    StatusCode(tx.Status),
		Sens:                 SensDebit,
	}
	if tx.Amount.IsPositive() {
		op.Sens = SensCredit
	}

	owner := ownerPhone
	description := tx.Description
	switch tx.Type {
	case transaction.TypeTransferOut:
		op.Sender = &owner
		if phone, ok := ExtractPhone(tx.Description); ok {
			op.Receiver = &phone
		}
		op.Beneficiary = &description
	case transaction.TypeTransferIn:
		op.Receiver = &owner
		if phone, ok := ExtractPhone(tx.Description); ok {
			op.Sender = &phone
		}
		op.Beneficiary = &description
	case transaction.TypeCashIn, transaction.TypeCashOut:
		// Self-referential: the owner moves their own cash.
		op.Sender = &owner
		op.Receiver = &owner
	case transaction.TypeBillPayment:
		op.Sender = &owner
	}
	return op
}

// FilterTransactions returns the transactions whose derived view matches the
// optional numeric operation type and status filters. A nil filter matches
// everything. Filtering happens on the raw records so pagination counts stay
// consistent with the projected page.
func FilterTransactions(txs []transaction.Transaction, typeCode, statusCode *int) []transaction.Transaction {
	if typeCode == nil && statusCode == nil {
		return txs
	}
	out := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if typeCode != nil && TypeCode(tx.Type) != *typeCode {
			continue
		}
		if statusCode != nil && StatusCode(tx.Status) != *statusCode {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// ErrNotFound indicates an operation id that matches neither a transaction's
// numeric id nor a position in the history
type ErrNotFound struct {
	ID int
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("operation not found: %d", e.ID)
}

// Is implements the errors.Is interface for ErrNotFound
func (e ErrNotFound) Is(target error) bool {
	t, ok := target.(ErrNotFound)
	if !ok {
		return false
	}
	// A zero target ID matches any ErrNotFound
	if t.ID == 0 {
		return true
	}
	return e.ID == t.ID
}
