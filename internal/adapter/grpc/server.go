package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/junitapp/banco-backend/internal/domain"
	"github.com/junitapp/banco-backend/internal/usecase/account"
	"github.com/junitapp/banco-backend/internal/usecase/transfer"
)

// Server implements the BankService gRPC server
type Server struct {
	AccountService  *account.AccountService
	TransferService *transfer.TransferService
}

// NewServer creates a new gRPC server instance
func NewServer(accountService *account.AccountService, transferService *transfer.TransferService) *Server {
	return &Server{
		AccountService:  accountService,
		TransferService: transferService,
	}
}

// OpenAccount handles the OpenAccount RPC
func (s *Server) OpenAccount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bankName, err := requiredString(req, "bank")
	if err != nil {
		return nil, err
	}
	owner, err := requiredString(req, "owner")
	if err != nil {
		return nil, err
	}

	// Opening balance defaults to zero
	balance := decimal.Zero
	if stringField(req, "balance") != "" {
		balance, err = decimalField(req, "balance")
		if err != nil {
			return nil, err
		}
	}

	acc, err := s.AccountService.OpenAccount(ctx, account.OpenAccountInput{
		BankName:       bankName,
		Owner:          owner,
		InitialBalance: balance,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return accountToProto(acc)
}

// Credit handles the Credit RPC
func (s *Server) Credit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := movementFromProto(req)
	if err != nil {
		return nil, err
	}

	acc, err := s.AccountService.Credit(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return accountToProto(acc)
}

// Debit handles the Debit RPC
func (s *Server) Debit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := movementFromProto(req)
	if err != nil {
		return nil, err
	}

	acc, err := s.AccountService.Debit(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return accountToProto(acc)
}

// Transfer handles the Transfer RPC
func (s *Server) Transfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bankName, err := requiredString(req, "bank")
	if err != nil {
		return nil, err
	}
	from, err := requiredString(req, "from")
	if err != nil {
		return nil, err
	}
	to, err := requiredString(req, "to")
	if err != nil {
		return nil, err
	}
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}

	event, err := s.TransferService.Transfer(ctx, transfer.TransferInput{
		BankName:   bankName,
		FromOwner:  from,
		ToOwner:    to,
		ToBankName: stringField(req, "to_bank"),
		Amount:     amount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"transfer_id":  event.ID.String(),
		"bank":         event.Bank,
		"from":         event.FromOwner,
		"to":           event.ToOwner,
		"amount":       event.Amount.String(),
		"from_balance": event.FromBalance.String(),
		"to_balance":   event.ToBalance.String(),
		"occurred_at":  event.OccurredAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return resp, nil
}

// GetAccount handles the GetAccount RPC
func (s *Server) GetAccount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bankName, err := requiredString(req, "bank")
	if err != nil {
		return nil, err
	}
	owner, err := requiredString(req, "owner")
	if err != nil {
		return nil, err
	}

	acc, err := s.AccountService.GetAccount(ctx, bankName, owner)
	if err != nil {
		return nil, mapError(err)
	}

	return accountToProto(acc)
}

// ListAccounts handles the ListAccounts RPC
func (s *Server) ListAccounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bankName, err := requiredString(req, "bank")
	if err != nil {
		return nil, err
	}

	accounts, err := s.AccountService.ListAccounts(ctx, bankName)
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]interface{}, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, accountFields(acc))
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"bank":     bankName,
		"accounts": items,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return resp, nil
}

// ListBanks handles the ListBanks RPC
func (s *Server) ListBanks(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	banks, err := s.AccountService.ListBanks(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]interface{}, 0, len(banks))
	for _, bank := range banks {
		items = append(items, map[string]interface{}{
			"name":     bank.Name(),
			"accounts": len(bank.Accounts()),
		})
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"banks": items,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return resp, nil
}

// movementFromProto parses the fields shared by Credit and Debit
func movementFromProto(req *structpb.Struct) (account.MovementInput, error) {
	bankName, err := requiredString(req, "bank")
	if err != nil {
		return account.MovementInput{}, err
	}
	owner, err := requiredString(req, "owner")
	if err != nil {
		return account.MovementInput{}, err
	}
	amount, err := decimalField(req, "amount")
	if err != nil {
		return account.MovementInput{}, err
	}

	return account.MovementInput{
		BankName: bankName,
		Owner:    owner,
		Amount:   amount,
	}, nil
}

// accountFields converts a domain account to a Struct-compatible map
func accountFields(acc *domain.Account) map[string]interface{} {
	fields := map[string]interface{}{
		"owner":   acc.Owner(),
		"balance": acc.Balance().String(),
	}
	if bank := acc.Bank(); bank != nil {
		fields["bank"] = bank.Name()
	}
	return fields
}

// accountToProto converts a domain account to a Struct message
func accountToProto(acc *domain.Account) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(accountFields(acc))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return resp, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	value := stringField(req, name)
	if value == "" {
		return "", status.Errorf(codes.InvalidArgument, "missing %s", name)
	}
	return value, nil
}

// decimalField parses a decimal sent as a string, e.g. "1000.12345".
// Numbers are rejected because a protobuf double cannot carry an exact decimal.
func decimalField(req *structpb.Struct, name string) (decimal.Decimal, error) {
	raw, err := requiredString(req, name)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
	}
	return value, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidOwner):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrBankNotFound), errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrBankExists), errors.Is(err, domain.ErrAccountExists):
		return status.Error(codes.AlreadyExists, err.Error())
	}

	// Status errors pass through untouched
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Default to Internal error for unknown errors
	return status.Error(codes.Internal, err.Error())
}
