package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor returns a gRPC unary server interceptor that logs
// the method, the resulting status code and the call duration.
// Failed calls are logged at WARN, internal errors at ERROR.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
		}

		switch code {
		case codes.OK:
			logger.InfoContext(ctx, "rpc handled", attrs...)
		case codes.Internal, codes.Unknown:
			logger.ErrorContext(ctx, "rpc failed", append(attrs, slog.Any("error", err))...)
		default:
			logger.WarnContext(ctx, "rpc rejected", append(attrs, slog.Any("error", err))...)
		}

		return resp, err
	}
}

// RecoveryInterceptor returns a gRPC unary server interceptor that turns a
// panic in the handler into a codes.Internal error.
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "rpc panicked",
					slog.String("method", info.FullMethod),
					slog.Any("panic", r),
				)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}
