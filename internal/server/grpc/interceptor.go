package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned by the request id interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestIDInterceptor takes the caller's x-request-id or generates one, stores
// it in the context and echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.RequestIDHeaderName)
		if len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// fails only outside a real stream (direct calls in tests)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc call",
		"method", info.FullMethod,
		"request_id", RequestIDFromContext(ctx),
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}
