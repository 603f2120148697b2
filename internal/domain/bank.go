package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Bank represents a bank entity that keeps a list of accounts and moves money between them.
// The bank holds references only; it does not own the accounts' lifetime.
type Bank struct {
	mu       sync.RWMutex
	name     string
	accounts []*Account
}

// NewBank creates a new Bank with no accounts
func NewBank(name string) *Bank {
	return &Bank{
		name:     name,
		accounts: make([]*Account, 0),
	}
}

// Name returns the bank name
func (b *Bank) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// SetName renames the bank
func (b *Bank) SetName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
}

// AddAccount appends the account to the bank and sets its back-reference.
// Duplicates are not checked.
func (b *Bank) AddAccount(account *Account) {
	b.mu.Lock()
	b.accounts = append(b.accounts, account)
	b.mu.Unlock()

	account.SetBank(b)
}

// AddAccountIfAbsent adds the account unless the bank already holds one with the
// same owner. The check and the append happen under one lock.
// Returns false, leaving the account untouched, when the owner is taken.
func (b *Bank) AddAccountIfAbsent(account *Account) bool {
	b.mu.Lock()
	for _, existing := range b.accounts {
		if existing.Owner() == account.Owner() {
			b.mu.Unlock()
			return false
		}
	}
	b.accounts = append(b.accounts, account)
	b.mu.Unlock()

	account.SetBank(b)
	return true
}

// Accounts returns the accounts in insertion order.
// The slice is a copy; the accounts themselves are live.
func (b *Bank) Accounts() []*Account {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// FindAccount returns the first account owned by owner
func (b *Bank) FindAccount(owner string) (*Account, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, account := range b.accounts {
		if account.Owner() == owner {
			return account, true
		}
	}
	return nil, false
}

// Transfer debits from and then credits to.
// If the debit fails its error is returned as is and to is never credited.
// Neither account has to belong to this bank.
func (b *Bank) Transfer(from, to *Account, amount decimal.Decimal) error {
	if err := from.Debit(amount); err != nil {
		return err
	}
	to.Credit(amount)
	return nil
}
