package health

import (
	"context"
	"fmt"
	"time"

	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"evaluation_service/pkg/ctxdata"
	"evaluation_service/pkg/logger"
)

func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-trace-id"); len(values) > 0 {
				ctx = ctxdata.WithTraceID(ctx, values[0])
			}
			if values := md.Get("x-user-id"); len(values) > 0 {
				ctx = ctxdata.WithActorID(ctx, values[0])
			}
		}
		return handler(ctx, req)
	}
}

func NewUnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		clientIP := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		ctx = logger.ContextWithLogger(ctx, log)
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			log.Error(ctx, "request failed", fields...)
		} else {
			log.Debug(ctx, "request handled", fields...)
		}
		return resp, err
	}
}

// NewRecoveryUnaryInterceptor turns handler panics into codes.Internal.
func NewRecoveryUnaryInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return grpc_recovery.UnaryServerInterceptor(
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p interface{}) error {
			log.Error(ctx, "panic in grpc handler", zap.String("panic", fmt.Sprint(p)))
			return status.Error(codes.Internal, "internal error")
		}),
	)
}
