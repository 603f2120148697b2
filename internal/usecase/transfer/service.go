package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/junitapp/banco-backend/internal/domain"
)

// TransferInput represents the input for moving money between two accounts
type TransferInput struct {
	BankName  string
	FromOwner string
	ToOwner   string
	// ToBankName is optional: when set, the destination account is looked up there
	// while the source bank still performs the transfer.
	ToBankName string
	Amount     decimal.Decimal
}

// TransferService handles transfers between accounts
type TransferService struct {
	BankRepo  domain.BankRepository
	Publisher domain.EventPublisher
	Topic     string
	Logger    *slog.Logger
}

// NewTransferService creates a new TransferService instance
func NewTransferService(
	bankRepo domain.BankRepository,
	publisher domain.EventPublisher,
	topic string,
	logger *slog.Logger,
) *TransferService {
	if topic == "" {
		topic = domain.TopicTransferCompleted
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TransferService{
		BankRepo:  bankRepo,
		Publisher: publisher,
		Topic:     topic,
		Logger:    logger,
	}
}

// Transfer moves money between two accounts
// Logic:
//  1. Validate the amount
//  2. Resolve the source bank and both accounts
//  3. Let the source bank debit then credit
//  4. Publish a TransferCompleted event (failure is logged, the transfer stands)
func (s *TransferService) Transfer(ctx context.Context, input TransferInput) (*domain.TransferCompleted, error) {
	// Validate input
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount %s: %w", input.Amount, domain.ErrInvalidAmount)
	}

	// 1. Resolve source bank and accounts
	bank, err := s.BankRepo.GetByName(ctx, input.BankName)
	if err != nil {
		return nil, err
	}

	from, ok := bank.FindAccount(input.FromOwner)
	if !ok {
		return nil, fmt.Errorf("source owner %q in bank %q: %w", input.FromOwner, input.BankName, domain.ErrAccountNotFound)
	}

	toBank := bank
	if input.ToBankName != "" && input.ToBankName != input.BankName {
		toBank, err = s.BankRepo.GetByName(ctx, input.ToBankName)
		if err != nil {
			return nil, err
		}
	}

	to, ok := toBank.FindAccount(input.ToOwner)
	if !ok {
		return nil, fmt.Errorf("destination owner %q in bank %q: %w", input.ToOwner, toBank.Name(), domain.ErrAccountNotFound)
	}

	// 2. Move the money; a failed debit leaves both accounts untouched
	if err := bank.Transfer(from, to, input.Amount); err != nil {
		s.Logger.WarnContext(ctx, "transfer rejected",
			slog.String("bank", input.BankName),
			slog.String("from", input.FromOwner),
			slog.String("to", input.ToOwner),
			slog.String("amount", input.Amount.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	event := &domain.TransferCompleted{
		ID:          uuid.New(),
		Bank:        bank.Name(),
		FromOwner:   from.Owner(),
		ToOwner:     to.Owner(),
		Amount:      input.Amount,
		FromBalance: from.Balance(),
		ToBalance:   to.Balance(),
		OccurredAt:  time.Now().UTC(),
	}

	s.Logger.InfoContext(ctx, "transfer completed",
		slog.String("id", event.ID.String()),
		slog.String("bank", event.Bank),
		slog.String("from", event.FromOwner),
		slog.String("to", event.ToOwner),
		slog.String("amount", event.Amount.String()),
	)

	// 3. Publish
	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, s.Topic, event.Bank, event); err != nil {
			s.Logger.ErrorContext(ctx, "failed to publish transfer event",
				slog.String("id", event.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return event, nil
}
