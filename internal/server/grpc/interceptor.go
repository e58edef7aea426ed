package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func tokenPresent(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	values := md.Get(common.TokenHeaderName)
	return len(values) > 0 && values[0] != ""
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{
		"method", info.FullMethod,
		"duration", time.Since(start),
		"token", tokenPresent(ctx),
	}
	if err != nil {
		args = append(args, "code", status.Code(err).String(), "error", err)
		s.logger.Warn(ctx, "request failed", args...)
		return resp, err
	}
	s.logger.Info(ctx, "request", args...)
	return resp, nil
}

// timeoutInterceptor bounds every command by the configured request timeout.
func (s *GRPCServer) timeoutInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.timeout <= 0 {
		return handler(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return handler(ctx, req)
}
