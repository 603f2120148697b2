package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/junitapp/banco-backend/internal/domain"
)

// bankRepository implements domain.BankRepository in process memory.
// Banks are keyed by the name they had when created.
type bankRepository struct {
	mu    sync.RWMutex
	banks map[string]*domain.Bank
}

// NewBankRepository creates a new in-memory bank repository
func NewBankRepository() domain.BankRepository {
	return &bankRepository{
		banks: make(map[string]*domain.Bank),
	}
}

// Create registers a bank under its current name
func (r *bankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := bank.Name()
	if name == "" {
		return errors.New("failed to create bank: name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.banks[name]; exists {
		return fmt.Errorf("failed to create bank %q: %w", name, domain.ErrBankExists)
	}
	r.banks[name] = bank
	return nil
}

// GetByName retrieves a bank by its name
func (r *bankRepository) GetByName(ctx context.Context, name string) (*domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[name]
	if !ok {
		return nil, fmt.Errorf("bank %q: %w", name, domain.ErrBankNotFound)
	}
	return bank, nil
}

// List retrieves all banks ordered by name
func (r *bankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	names := make([]string, 0, len(r.banks))
	for name := range r.banks {
		names = append(names, name)
	}
	sort.Strings(names)

	banks := make([]*domain.Bank, 0, len(names))
	for _, name := range names {
		banks = append(banks, r.banks[name])
	}
	r.mu.RUnlock()

	return banks, nil
}
