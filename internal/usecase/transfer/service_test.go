package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/junitapp/banco-backend/internal/domain"
)

// MockBankRepository is a mock implementation of BankRepository for testing
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) GetByName(ctx context.Context, name string) (*domain.Bank, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bank), args.Error(1)
}

// MockPublisher is a mock implementation of EventPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	args := m.Called(ctx, topic, key, event)
	return args.Error(0)
}

const bankName = "Banco del Estado"

func newBank() (*domain.Bank, *domain.Account, *domain.Account) {
	jhon := domain.NewAccount("Jhon Doe", decimal.RequireFromString("2500"))
	andres := domain.NewAccount("Andres", decimal.RequireFromString("1500.8989"))

	bank := domain.NewBank(bankName)
	bank.AddAccount(jhon)
	bank.AddAccount(andres)
	return bank, jhon, andres
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestTransfer_StandardFlow(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockBankRepository)
	mockPublisher := new(MockPublisher)
	service := NewTransferService(mockRepo, mockPublisher, "", quietLogger())

	bank, jhon, andres := newBank()
	mockRepo.On("GetByName", ctx, bankName).Return(bank, nil)
	mockPublisher.On("Publish", ctx, domain.TopicTransferCompleted, bankName, mock.MatchedBy(func(event *domain.TransferCompleted) bool {
		return event.FromOwner == "Andres" &&
			event.ToOwner == "Jhon Doe" &&
			event.Amount.Equal(decimal.NewFromInt(500)) &&
			event.ID != uuid.Nil
	})).Return(nil)

	event, err := service.Transfer(ctx, TransferInput{
		BankName:  bankName,
		FromOwner: "Andres",
		ToOwner:   "Jhon Doe",
		Amount:    decimal.NewFromInt(500),
	})

	require.NoError(t, err)
	assert.Equal(t, "1000.8989", andres.Balance().String())
	assert.Equal(t, "3000", jhon.Balance().String())
	assert.Equal(t, "1000.8989", event.FromBalance.String())
	assert.Equal(t, "3000", event.ToBalance.String())
	assert.Equal(t, bankName, event.Bank)
	assert.False(t, event.OccurredAt.IsZero())

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockBankRepository)
	mockPublisher := new(MockPublisher)
	service := NewTransferService(mockRepo, mockPublisher, "", quietLogger())

	bank, jhon, andres := newBank()
	mockRepo.On("GetByName", ctx, bankName).Return(bank, nil)

	event, err := service.Transfer(ctx, TransferInput{
		BankName:  bankName,
		FromOwner: "Andres",
		ToOwner:   "Jhon Doe",
		Amount:    decimal.NewFromInt(5000),
	})

	assert.Nil(t, event)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	assert.Equal(t, "1500.8989", andres.Balance().String())
	assert.Equal(t, "2500", jhon.Balance().String())
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_AcrossBanks(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockBankRepository)
	service := NewTransferService(mockRepo, nil, "", quietLogger())

	source, _, andres := newBank()
	other := domain.NewBank("Banco Chile")
	maria := domain.NewAccount("Maria", decimal.NewFromInt(10))
	other.AddAccount(maria)

	mockRepo.On("GetByName", ctx, bankName).Return(source, nil)
	mockRepo.On("GetByName", ctx, "Banco Chile").Return(other, nil)

	event, err := service.Transfer(ctx, TransferInput{
		BankName:   bankName,
		FromOwner:  "Andres",
		ToOwner:    "Maria",
		ToBankName: "Banco Chile",
		Amount:     decimal.RequireFromString("0.8989"),
	})

	require.NoError(t, err)
	assert.Equal(t, bankName, event.Bank)
	assert.Equal(t, "1500", andres.Balance().String())
	assert.Equal(t, "10.8989", maria.Balance().String())
	// Destination keeps its own bank
	assert.Same(t, other, maria.Bank())
	mockRepo.AssertExpectations(t)
}

func TestTransfer_PublishFailureDoesNotFailTransfer(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockBankRepository)
	mockPublisher := new(MockPublisher)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	service := NewTransferService(mockRepo, mockPublisher, "transfers", logger)

	bank, _, andres := newBank()
	mockRepo.On("GetByName", ctx, bankName).Return(bank, nil)
	mockPublisher.On("Publish", ctx, "transfers", bankName, mock.Anything).Return(errors.New("broker down"))

	event, err := service.Transfer(ctx, TransferInput{
		BankName:  bankName,
		FromOwner: "Andres",
		ToOwner:   "Jhon Doe",
		Amount:    decimal.NewFromInt(1),
	})

	require.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, "1499.8989", andres.Balance().String())
	assert.Contains(t, logs.String(), "failed to publish transfer event")
	assert.Contains(t, logs.String(), "broker down")
}

func TestTransfer_Validation(t *testing.T) {
	ctx := context.Background()
	notFound := fmt.Errorf("bank %q: %w", "Missing", domain.ErrBankNotFound)

	tests := []struct {
		name    string
		input   TransferInput
		setup   func(repo *MockBankRepository)
		wantErr error
		errMsg  string
	}{
		{
			name:    "Zero amount",
			input:   TransferInput{BankName: bankName, FromOwner: "Andres", ToOwner: "Jhon Doe", Amount: decimal.Zero},
			setup:   func(repo *MockBankRepository) {},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "Negative amount",
			input:   TransferInput{BankName: bankName, FromOwner: "Andres", ToOwner: "Jhon Doe", Amount: decimal.NewFromInt(-1)},
			setup:   func(repo *MockBankRepository) {},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:  "Unknown bank",
			input: TransferInput{BankName: "Missing", FromOwner: "Andres", ToOwner: "Jhon Doe", Amount: decimal.NewFromInt(1)},
			setup: func(repo *MockBankRepository) {
				repo.On("GetByName", ctx, "Missing").Return(nil, notFound)
			},
			wantErr: domain.ErrBankNotFound,
		},
		{
			name:  "Unknown source owner",
			input: TransferInput{BankName: bankName, FromOwner: "Nobody", ToOwner: "Jhon Doe", Amount: decimal.NewFromInt(1)},
			setup: func(repo *MockBankRepository) {
				bank, _, _ := newBank()
				repo.On("GetByName", ctx, bankName).Return(bank, nil)
			},
			wantErr: domain.ErrAccountNotFound,
			errMsg:  "source owner",
		},
		{
			name:  "Unknown destination owner",
			input: TransferInput{BankName: bankName, FromOwner: "Andres", ToOwner: "Nobody", Amount: decimal.NewFromInt(1)},
			setup: func(repo *MockBankRepository) {
				bank, _, _ := newBank()
				repo.On("GetByName", ctx, bankName).Return(bank, nil)
			},
			wantErr: domain.ErrAccountNotFound,
			errMsg:  "destination owner",
		},
		{
			name:  "Unknown destination bank",
			input: TransferInput{BankName: bankName, FromOwner: "Andres", ToOwner: "Jhon Doe", ToBankName: "Missing", Amount: decimal.NewFromInt(1)},
			setup: func(repo *MockBankRepository) {
				bank, _, _ := newBank()
				repo.On("GetByName", ctx, bankName).Return(bank, nil)
				repo.On("GetByName", ctx, "Missing").Return(nil, notFound)
			},
			wantErr: domain.ErrBankNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBankRepository)
			mockPublisher := new(MockPublisher)
			tt.setup(mockRepo)
			service := NewTransferService(mockRepo, mockPublisher, "", quietLogger())

			event, err := service.Transfer(ctx, tt.input)

			assert.Nil(t, event)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
