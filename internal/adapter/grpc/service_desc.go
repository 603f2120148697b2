package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of banco.v1.BankService
const (
	BankServiceName = "banco.v1.BankService"

	BankService_OpenAccount_FullMethodName  = "/banco.v1.BankService/OpenAccount"
	BankService_Credit_FullMethodName       = "/banco.v1.BankService/Credit"
	BankService_Debit_FullMethodName        = "/banco.v1.BankService/Debit"
	BankService_Transfer_FullMethodName     = "/banco.v1.BankService/Transfer"
	BankService_GetAccount_FullMethodName   = "/banco.v1.BankService/GetAccount"
	BankService_ListAccounts_FullMethodName = "/banco.v1.BankService/ListAccounts"
	BankService_ListBanks_FullMethodName    = "/banco.v1.BankService/ListBanks"
)

// BankServiceServer is the server API for banco.v1.BankService.
// Requests and responses are google.protobuf.Struct messages.
type BankServiceServer interface {
	OpenAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Credit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Debit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Transfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAccounts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBanks(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBankServiceServer registers srv on s
func RegisterBankServiceServer(s grpc.ServiceRegistrar, srv BankServiceServer) {
	s.RegisterService(&BankService_ServiceDesc, srv)
}

type bankMethod func(BankServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a BankServiceServer method to grpc.MethodHandler
func unaryHandler(fullMethod string, call bankMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BankServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BankServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BankService_ServiceDesc is the grpc.ServiceDesc for banco.v1.BankService
var BankService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BankServiceName,
	HandlerType: (*BankServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "OpenAccount",
			Handler:    unaryHandler(BankService_OpenAccount_FullMethodName, BankServiceServer.OpenAccount),
		},
		{
			MethodName: "Credit",
			Handler:    unaryHandler(BankService_Credit_FullMethodName, BankServiceServer.Credit),
		},
		{
			MethodName: "Debit",
			Handler:    unaryHandler(BankService_Debit_FullMethodName, BankServiceServer.Debit),
		},
		{
			MethodName: "Transfer",
			Handler:    unaryHandler(BankService_Transfer_FullMethodName, BankServiceServer.Transfer),
		},
		{
			MethodName: "GetAccount",
			Handler:    unaryHandler(BankService_GetAccount_FullMethodName, BankServiceServer.GetAccount),
		},
		{
			MethodName: "ListAccounts",
			Handler:    unaryHandler(BankService_ListAccounts_FullMethodName, BankServiceServer.ListAccounts),
		},
		{
			MethodName: "ListBanks",
			Handler:    unaryHandler(BankService_ListBanks_FullMethodName, BankServiceServer.ListBanks),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "banco/v1/bank.proto",
}
