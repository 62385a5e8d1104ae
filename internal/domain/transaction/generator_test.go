package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := decimal.NewFromInt(10000)

	t.Run("SameSeedSameHistory", func(t *testing.T) {
		a := NewGenerator(42, now).Generate(25, start)
		b := NewGenerator(42, now).Generate(25, start)
		assert.Equal(t, a, b, "identical seeds must produce identical histories")
	})

	t.Run("DifferentSeedsDiverge", func(t *testing.T) {
		a := NewGenerator(1, now).Generate(25, start)
		b := NewGenerator(2, now).Generate(25, start)
		assert.NotEqual(t, a, b)
	})

	t.Run("NewestFirstWithDenseIDs", func(t *testing.T) {
		txs := NewGenerator(7, now).Generate(10, start)
		require.Len(t, txs, 10)

		assert.Equal(t, "TXN_010", txs[0].ID, "newest record carries the highest id")
		assert.Equal(t, "TXN_001", txs[9].ID, "oldest record carries TXN_001")
		for i := 1; i < len(txs); i++ {
			assert.True(t, txs[i].Date.Before(txs[i-1].Date), "dates must strictly decrease down the list")
		}
	})

	t.Run("BalanceReplay", func(t *testing.T) {
		txs := NewGenerator(99, now).Generate(50, start)

		// Replaying signed amounts oldest-first must reproduce every snapshot.
		balance := start
		for i := len(txs) - 1; i >= 0; i-- {
			balance = balance.Add(txs[i].Amount)
			assert.True(t, balance.Equal(txs[i].BalanceAfter),
				"balance mismatch at %s: replayed %s, recorded %s", txs[i].ID, balance, txs[i].BalanceAfter)
		}
		assert.True(t, txs[0].BalanceAfter.Equal(balance), "newest snapshot is the resulting balance")
	})

	t.Run("AmountSignsFollowType", func(t *testing.T) {
		txs := NewGenerator(3, now).Generate(100, start)
		for _, tx := range txs {
			if tx.Type.IsCredit() {
				assert.True(t, tx.Amount.IsPositive(), "%s (%s) must be positive", tx.ID, tx.Type)
			} else {
				assert.True(t, tx.Amount.IsNegative(), "%s (%s) must be negative", tx.ID, tx.Type)
			}
			magnitude := tx.Amount.Abs()
			assert.True(t, magnitude.GreaterThanOrEqual(decimal.NewFromInt(50)), "magnitude below range: %s", magnitude)
			assert.True(t, magnitude.LessThan(decimal.NewFromInt(1051)), "magnitude above range: %s", magnitude)
			assert.True(t, magnitude.Equal(magnitude.Round(2)), "amounts are rounded to cents")
		}
	})

	t.Run("StatusesAndCurrency", func(t *testing.T) {
		txs := NewGenerator(11, now).Generate(200, start)
		completed := 0
		for _, tx := range txs {
			assert.Contains(t, []Status{StatusCompleted, StatusPending}, tx.Status)
			assert.Equal(t, Currency, tx.Currency)
			assert.NotEmpty(t, tx.Description)
			if tx.Status == StatusCompleted {
				completed++
			}
		}
		// Roughly 80% settle; with 200 draws anything outside this band
		// means the weighting broke.
		assert.Greater(t, completed, 120)
		assert.Less(t, completed, 200)
	})

	t.Run("DatesStayBeforeAnchor", func(t *testing.T) {
		txs := NewGenerator(5, now).Generate(30, start)
		for _, tx := range txs {
			assert.True(t, tx.Date.Before(now), "%s is not before the anchor", tx.ID)
		}
	})

	t.Run("ZeroCount", func(t *testing.T) {
		assert.Empty(t, NewGenerator(1, now).Generate(0, start))
	})
}
