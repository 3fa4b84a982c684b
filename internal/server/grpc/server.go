package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/rpc"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CredentialService is the account logic behind the Accounts service.
type CredentialService interface {
	Create(ctx context.Context, input models.CreateUser) (*models.User, error)
	FindByEmail(ctx context.Context, email string, workspaceID int64) (*models.User, error)
	Verify(ctx context.Context, input models.SignInUser) (*models.User, error)
	Delete(ctx context.Context, userID int64) (bool, error)
	DeleteByEmail(ctx context.Context, email string, workspaceID int64) (bool, error)
}

type GRPCServer struct {
	address     string
	credentials CredentialService
	logger      logging.Logger
	health      *health.Server
}

func NewGRPCServer(a string, l logging.Logger, cs CredentialService) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
		health:      health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))

	rpc.RegisterAccountsServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully and returns nil.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
