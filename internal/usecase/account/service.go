package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/junitapp/banco-backend/internal/domain"
)

// OpenAccountInput represents the input for opening an account in a bank
type OpenAccountInput struct {
	BankName       string
	Owner          string
	InitialBalance decimal.Decimal
}

// MovementInput represents the input for a credit or a debit
type MovementInput struct {
	BankName string
	Owner    string
	Amount   decimal.Decimal
}

// AccountService handles account operations for banks held in the repository
type AccountService struct {
	BankRepo domain.BankRepository
}

// NewAccountService creates a new AccountService instance
func NewAccountService(bankRepo domain.BankRepository) *AccountService {
	return &AccountService{
		BankRepo: bankRepo,
	}
}

// OpenAccount creates an account and registers it with the bank.
// Owners are unique per bank at this level; the Bank itself does not check it.
func (s *AccountService) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if input.Owner == "" {
		return nil, fmt.Errorf("owner cannot be empty: %w", domain.ErrInvalidOwner)
	}
	if input.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("invalid initial balance %s: %w", input.InitialBalance, domain.ErrInvalidAmount)
	}

	bank, err := s.BankRepo.GetByName(ctx, input.BankName)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(input.Owner, input.InitialBalance)
	if !bank.AddAccountIfAbsent(account) {
		return nil, fmt.Errorf("owner %q in bank %q: %w", input.Owner, input.BankName, domain.ErrAccountExists)
	}

	return account, nil
}

// Credit adds money to an account
func (s *AccountService) Credit(ctx context.Context, input MovementInput) (*domain.Account, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("credit amount %s: %w", input.Amount, domain.ErrInvalidAmount)
	}

	account, err := s.GetAccount(ctx, input.BankName, input.Owner)
	if err != nil {
		return nil, err
	}

	account.Credit(input.Amount)
	return account, nil
}

// Debit takes money out of an account.
// domain.ErrInsufficientFunds is returned unwrapped.
func (s *AccountService) Debit(ctx context.Context, input MovementInput) (*domain.Account, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("debit amount %s: %w", input.Amount, domain.ErrInvalidAmount)
	}

	account, err := s.GetAccount(ctx, input.BankName, input.Owner)
	if err != nil {
		return nil, err
	}

	if err := account.Debit(input.Amount); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves the first account of owner in the named bank
func (s *AccountService) GetAccount(ctx context.Context, bankName, owner string) (*domain.Account, error) {
	bank, err := s.BankRepo.GetByName(ctx, bankName)
	if err != nil {
		return nil, err
	}

	account, ok := bank.FindAccount(owner)
	if !ok {
		return nil, fmt.Errorf("owner %q in bank %q: %w", owner, bankName, domain.ErrAccountNotFound)
	}
	return account, nil
}

// ListAccounts retrieves the accounts of the named bank in insertion order
func (s *AccountService) ListAccounts(ctx context.Context, bankName string) ([]*domain.Account, error) {
	bank, err := s.BankRepo.GetByName(ctx, bankName)
	if err != nil {
		return nil, err
	}
	return bank.Accounts(), nil
}

// ListBanks retrieves every bank ordered by name
func (s *AccountService) ListBanks(ctx context.Context) ([]*domain.Bank, error) {
	banks, err := s.BankRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}
