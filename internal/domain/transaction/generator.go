package transaction

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount magnitudes are drawn uniformly from [minAmount, minAmount+amountSpread)
// and rounded to two decimal places.
const (
	minAmount    = 50.0
	amountSpread = 1000.0

	// completedShare is the probability a generated transaction settles.
	completedShare = 0.8
)

var descriptionsByType = map[Type][]string{
	TypeCashIn: {
		"Cash deposit at Chari agent",
		"Cash-in at partner kiosk",
		"Wallet top-up at agency",
	},
	TypeCashOut: {
		"Cash withdrawal at Chari agent",
		"ATM cash withdrawal",
		"Cash-out at partner kiosk",
	},
	TypeTransferIn: {
		"Transfer from %s",
		"Wallet transfer received from %s",
		"Incoming wallet transfer",
	},
	TypeTransferOut: {
		"Transfer to %s",
		"Wallet transfer sent to %s",
		"Outgoing wallet transfer",
	},
	TypeBillPayment: {
		"Electricity bill payment",
		"Water bill payment",
		"Mobile plan invoice",
		"Internet subscription payment",
	},
}

// Generator produces synthetic wallet histories from a seedable source so a
// given seed always yields the same fixtures. It is not safe for concurrent
// use; give each goroutine its own instance.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator anchored at now. Histories are spread over
// the count days preceding it.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate returns count synthetic transactions for one customer, newest
// first. Identifiers are dense (TXN_001 for the oldest record) and replaying
// the sequence oldest-first from startingBalance reproduces every
// BalanceAfter, so the first element's BalanceAfter is the customer's
// resulting balance.
func (g *Generator) Generate(count int, startingBalance decimal.Decimal) []Transaction {
	if count <= 0 {
		return []Transaction{}
	}

	txs := make([]Transaction, count)
	balance := startingBalance
	for i := 0; i < count; i++ {
		kind := Types[g.rng.Intn(len(Types))]
		amount := decimal.NewFromFloat(minAmount + g.rng.Float64()*amountSpread).Round(2)
		if !kind.IsCredit() {
			amount = amount.Neg()
		}
		balance = balance.Add(amount)

		status := StatusCompleted
		if g.rng.Float64() >= completedShare {
			status = StatusPending
		}

		// The oldest record sits count days back, the newest one day back,
		// at a random time of day.
		day := g.now.AddDate(0, 0, -(count - i))
		date := time.Date(day.Year(), day.Month(), day.Day(), g.rng.Intn(24), g.rng.Intn(60), 0, 0, day.Location())

		txs[i] = Transaction{
			ID:           FormatID(i + 1),
			Type:         kind,
			Amount:       amount,
			Currency:     Currency,
			Date:         date,
			Description:  g.description(kind),
			Status:       status,
			BalanceAfter: balance,
		}
	}

	// Present newest first.
	for l, r := 0, len(txs)-1; l < r; l, r = l+1, r-1 {
		txs[l], txs[r] = txs[r], txs[l]
	}
	return txs
}

func (g *Generator) description(kind Type) string {
	candidates := descriptionsByType[kind]
	d := candidates[g.rng.Intn(len(candidates))]
	if strings.Contains(d, "%s") {
		return fmt.Sprintf(d, g.counterpartyPhone())
	}
	return d
}

// counterpartyPhone builds a Moroccan-looking mobile number for transfer
// descriptions, the same shape the operation view extracts later.
func (g *Generator) counterpartyPhone() string {
	return fmt.Sprintf("+2126%08d", g.rng.Intn(100000000))
}
