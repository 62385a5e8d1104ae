// Package fixtures seeds the in-memory store with the customers and
// beneficiaries integration suites run against. One customer exists for
// every lifecycle status, so each flow can be exercised without setup calls.
package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"

	"github.com/chari-wallet-mock/internal/config"
	"github.com/chari-wallet-mock/internal/data/memory"
	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/domain/customer"
	"github.com/chari-wallet-mock/internal/domain/transaction"
)

// seedCustomer describes one canned customer. Funded customers get a
// generated transaction history; the rest start at zero.
type seedCustomer struct {
	phone      string
	firstName  string
	lastName   string
	cin        string
	walletType string
	status     customer.Status
	pin        string
	funded     bool
}

// Customers covers every reachable lifecycle status. The first two are the
// usual actors in transfer scenarios; both authenticate with PIN 1234.
var seedCustomers = []seedCustomer{
	{"+212600000001", "Youssef", "El Amrani", "AB123456", "P", customer.StatusActive, "1234", true},
	{"+212600000002", "Salma", "Bennani", "K457812", "P", customer.StatusActive, "1234", true},
	{"+212600000003", "Omar", "Tazi", "C884210", "P", customer.StatusNotConfirmed, "", false},
	{"+212600000004", "Fatima", "Zahra", "J120045", "P", customer.StatusConfirmedNoPIN, "", false},
	{"+212600000005", "Mehdi", "Alaoui", "BK55802", "P", customer.StatusTemporarilyLocked, "1234", true},
	{"+212600000006", "Nadia", "Berrada", "EE90332", "P", customer.StatusPermanentlyLocked, "1234", true},
}

var seedBeneficiaries = []beneficiary.Beneficiary{
	{Name: "Rachid Benjelloun", PhoneNumber: "+212661234567", Visible: true},
	{Name: "Imane Chraibi", RIB: "007810000123456789012345", Email: "imane.chraibi@example.com", Visible: true},
	{Name: "Karim Haddadi", PhoneNumber: "+212662998877", RIB: "230610000098765432109876", Visible: false},
}

// Seed populates the store. Histories are generated in parallel on a worker
// pool; each customer derives its own PRNG seed from the configured one, so
// results do not depend on scheduling order. A zero configured seed switches
// to a time-based one for callers who want fresh data on every start.
func Seed(ctx context.Context, logger *slog.Logger, cfg *config.Config, store *memory.Store) error {
	seed := cfg.Fixtures.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pool, err := ants.NewPool(cfg.WorkerPool.Size)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	startingBalance := decimal.NewFromFloat(cfg.Fixtures.StartingBalance)
	now := time.Now()

	var wg sync.WaitGroup
	for i, sc := range seedCustomers {
		wg.Add(1)
		i, sc := i, sc
		submitErr := pool.Submit(func() {
			defer wg.Done()
			store.Put(ctx, buildCustomer(sc, seed+int64(i), cfg.Fixtures.TransactionsPerCustomer, startingBalance, now))
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("submitting fixture task: %w", submitErr)
		}
	}
	wg.Wait()

	for i := range seedBeneficiaries {
		b := seedBeneficiaries[i]
		b.CreatedAt = now.AddDate(0, 0, -(len(seedBeneficiaries) - i))
		if _, err := store.Create(ctx, &b); err != nil {
			return fmt.Errorf("seeding beneficiary %q: %w", b.Name, err)
		}
	}

	logger.Info("Fixture store seeded",
		"customers", len(seedCustomers),
		"beneficiaries", len(seedBeneficiaries),
		"transactions_per_customer", cfg.Fixtures.TransactionsPerCustomer,
		"seed", seed,
	)
	return nil
}

// buildCustomer assembles one aggregate. The status and PIN are forced after
// construction so the seeder does not have to walk the whole lifecycle.
func buildCustomer(sc seedCustomer, seed int64, txCount int, startingBalance decimal.Decimal, now time.Time) *customer.Customer {
	c := customer.New(sc.phone, customer.Registration{
		FirstName:    sc.firstName,
		LastName:     sc.lastName,
		CIN:          sc.cin,
		WalletType:   sc.walletType,
		RegisteredAt: now.AddDate(0, 0, -(txCount + 1)),
	})
	c.Status = sc.status
	c.PIN = sc.pin
	if sc.status == customer.StatusTemporarilyLocked {
		c.RemainingAttempts = 0
	}

	if sc.funded {
		gen := transaction.NewGenerator(seed, now)
		c.Transactions = gen.Generate(txCount, startingBalance)
		c.Balance = startingBalance
		if len(c.Transactions) > 0 {
			c.Balance = c.Transactions[0].BalanceAfter
		}
	}
	return c
}

// Phones returns the seeded phone numbers in catalog order. Handy for
// smoke-testing a freshly started server.
func Phones() []string {
	phones := make([]string, len(seedCustomers))
	for i, sc := range seedCustomers {
		phones[i] = sc.phone
	}
	return phones
}
