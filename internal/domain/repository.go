package domain

import (
	"context"
)

// BankRepository defines the interface for looking banks up by name
type BankRepository interface {
	// Create registers a new bank under its current name
	// Returns ErrBankExists if the name is taken
	Create(ctx context.Context, bank *Bank) error

	// GetByName retrieves a bank by its name
	GetByName(ctx context.Context, name string) (*Bank, error)

	// List retrieves all banks ordered by name
	List(ctx context.Context) ([]*Bank, error)
}
