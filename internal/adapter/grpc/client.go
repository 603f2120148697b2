package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// BankServiceClient is the client API for banco.v1.BankService
type BankServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBankServiceClient creates a client on top of an existing connection
func NewBankServiceClient(cc grpc.ClientConnInterface) *BankServiceClient {
	return &BankServiceClient{cc: cc}
}

func (c *BankServiceClient) invoke(ctx context.Context, method string, fields map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenAccount opens an account; balance may be empty for a zero opening balance
func (c *BankServiceClient) OpenAccount(ctx context.Context, bank, owner, balance string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_OpenAccount_FullMethodName, map[string]interface{}{
		"bank":    bank,
		"owner":   owner,
		"balance": balance,
	}, opts...)
}

// Credit adds amount to the owner's account
func (c *BankServiceClient) Credit(ctx context.Context, bank, owner, amount string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_Credit_FullMethodName, map[string]interface{}{
		"bank":   bank,
		"owner":  owner,
		"amount": amount,
	}, opts...)
}

// Debit takes amount out of the owner's account
func (c *BankServiceClient) Debit(ctx context.Context, bank, owner, amount string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_Debit_FullMethodName, map[string]interface{}{
		"bank":   bank,
		"owner":  owner,
		"amount": amount,
	}, opts...)
}

// TransferRequest describes a transfer. ToBank is optional; when set the
// destination owner is looked up in that bank.
type TransferRequest struct {
	Bank   string
	From   string
	To     string
	ToBank string
	Amount string
}

// Transfer moves money between two owners
func (c *BankServiceClient) Transfer(ctx context.Context, req TransferRequest, opts ...grpc.CallOption) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"bank":   req.Bank,
		"from":   req.From,
		"to":     req.To,
		"amount": req.Amount,
	}
	if req.ToBank != "" {
		fields["to_bank"] = req.ToBank
	}
	return c.invoke(ctx, BankService_Transfer_FullMethodName, fields, opts...)
}

// GetAccount fetches a single account
func (c *BankServiceClient) GetAccount(ctx context.Context, bank, owner string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_GetAccount_FullMethodName, map[string]interface{}{
		"bank":  bank,
		"owner": owner,
	}, opts...)
}

// ListAccounts lists the accounts of bank
func (c *BankServiceClient) ListAccounts(ctx context.Context, bank string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_ListAccounts_FullMethodName, map[string]interface{}{
		"bank": bank,
	}, opts...)
}

// ListBanks lists every bank with its number of accounts
func (c *BankServiceClient) ListBanks(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BankService_ListBanks_FullMethodName, map[string]interface{}{}, opts...)
}
