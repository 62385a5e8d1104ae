package transaction

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the only currency the mock wallet deals in.
const Currency = "MAD"

// Type identifies the kind of movement a transaction records
type Type string

const (
	TypeCashIn      Type = "CASHIN"
	TypeCashOut     Type = "CASHOUT"
	TypeTransferIn  Type = "TRANSFER_IN"
	TypeTransferOut Type = "TRANSFER_OUT"
	TypeBillPayment Type = "BILL_PAYMENT"
)

// Types lists every transaction kind the generator can draw from.
var Types = []Type{TypeCashIn, TypeCashOut, TypeTransferIn, TypeTransferOut, TypeBillPayment}

// IsCredit reports whether the type increases the owner's balance.
func (t Type) IsCredit() bool {
	return t == TypeCashIn || t == TypeTransferIn
}

// Status defines transaction settlement states
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
)

// Transaction is one movement on a customer's wallet. Amount is signed:
// positive for credits, negative for debits. BalanceAfter snapshots the
// running balance at the moment the record was written, so replaying a
// history oldest-first from the seed balance reproduces every snapshot.
type Transaction struct {
	ID           string          `json:"id"`
	Type         Type            `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Status       Status          `json:"status"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// idPrefix is shared by every generated transaction identifier.
const idPrefix = "TXN_"

// FormatID builds the dense per-customer identifier, TXN_001 style.
func FormatID(n int) string {
	return fmt.Sprintf("%s%03d", idPrefix, n)
}

// NumericID extracts the numeric suffix of an identifier such as TXN_042.
// Identifiers without a parsable suffix yield 0.
func NumericID(id string) int {
	s := strings.TrimPrefix(id, idPrefix)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Filter returns the transactions matching the optional type and status
// filters. Empty filter values match everything; the status comparison is
// case-insensitive.
func Filter(txs []Transaction, typeFilter, statusFilter string) []Transaction {
	if typeFilter == "" && statusFilter == "" {
		return txs
	}
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if typeFilter != "" && string(tx.Type) != typeFilter {
			continue
		}
		if statusFilter != "" && !strings.EqualFold(string(tx.Status), statusFilter) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// ErrNotFound indicates a transaction id that is absent from a history
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return "transaction not found: " + e.ID
}

// Is implements the errors.Is interface for ErrNotFound
func (e ErrNotFound) Is(target error) bool {
	t, ok := target.(ErrNotFound)
	if !ok {
		return false
	}
	// An empty target ID matches any ErrNotFound
	if t.ID == "" {
		return true
	}
	return e.ID == t.ID
}
