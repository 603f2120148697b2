package domain

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Account represents a person's account in the domain layer.
// The balance is an exact decimal; Debit never lets it go below zero.
type Account struct {
	mu      sync.Mutex
	owner   string
	balance decimal.Decimal
	bank    *Bank // managing bank, not owned
}

// NewAccount creates a new Account with the given owner and opening balance
func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{
		owner:   owner,
		balance: balance,
	}
}

// Owner returns the account owner's name
func (a *Account) Owner() string {
	return a.owner
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Bank returns the bank currently managing the account, or nil
func (a *Account) Bank() *Bank {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bank
}

// SetBank points the account at the bank that manages it.
// It does not add the account to the bank's collection.
func (a *Account) SetBank(b *Bank) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bank = b
}

// Credit adds amount to the balance
func (a *Account) Credit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
}

// Debit subtracts amount from the balance.
// Returns ErrInsufficientFunds and leaves the balance untouched if the result would be negative.
func (a *Account) Debit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	newBalance := a.balance.Sub(amount)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}
	a.balance = newBalance
	return nil
}

// Equal reports whether both accounts have the same owner and the same balance value.
// Balances are compared numerically, so 10.50 equals 10.5.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a == other {
		return true
	}

	// Snapshot each side separately; holding both locks at once could deadlock
	// against a concurrent other.Equal(a).
	owner, balance := a.snapshot()
	otherOwner, otherBalance := other.snapshot()
	return owner == otherOwner && balance.Equal(otherBalance)
}

// Key returns an identity string consistent with Equal.
// It changes whenever the balance changes: do not mutate an account while it is used as a map key.
func (a *Account) Key() string {
	owner, balance := a.snapshot()
	return owner + "\x00" + balance.String()
}

// String implements fmt.Stringer
func (a *Account) String() string {
	owner, balance := a.snapshot()
	return fmt.Sprintf("%s: %s", owner, balance.String())
}

func (a *Account) snapshot() (string, decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner, a.balance
}
