package seeder

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/junitapp/banco-backend/internal/domain"
)

// DefaultBankName is the name of the demo bank created on startup
const DefaultBankName = "Banco del Estado"

// SeedAccount defines an account to be seeded
type SeedAccount struct {
	Owner   string
	Balance decimal.Decimal
}

// DefaultAccounts are the demo accounts every fresh bank starts with
var DefaultAccounts = []SeedAccount{
	{Owner: "Jhon Doe", Balance: decimal.RequireFromString("2500")},
	{Owner: "Andres", Balance: decimal.RequireFromString("1500.8989")},
}

// BankSeeder handles seeding of the demo bank and its accounts
type BankSeeder struct {
	repo     domain.BankRepository
	bankName string
	accounts []SeedAccount
}

// NewBankSeeder creates a new BankSeeder instance.
// An empty bankName falls back to DefaultBankName.
func NewBankSeeder(repo domain.BankRepository, bankName string) *BankSeeder {
	if bankName == "" {
		bankName = DefaultBankName
	}
	return &BankSeeder{
		repo:     repo,
		bankName: bankName,
		accounts: DefaultAccounts,
	}
}

// Seed ensures the demo bank exists and holds every seed account.
// Existing accounts are left as they are.
func (s *BankSeeder) Seed(ctx context.Context) error {
	bank, err := s.repo.GetByName(ctx, s.bankName)
	if err != nil {
		if !errors.Is(err, domain.ErrBankNotFound) {
			return err
		}

		// Bank doesn't exist, create it
		bank = domain.NewBank(s.bankName)
		if err := s.repo.Create(ctx, bank); err != nil {
			return err
		}
	}

	for _, seed := range s.accounts {
		bank.AddAccountIfAbsent(domain.NewAccount(seed.Owner, seed.Balance))
	}

	return nil
}
