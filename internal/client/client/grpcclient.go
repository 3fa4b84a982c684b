package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/rpc"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	accounts    *rpc.AccountsClient
	health      healthpb.HealthClient
}

// requestIDInterceptor adds an x-request-id to calls that do not carry one.
func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAccountsClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.accounts = rpc.NewAccountsClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) SignUp(ctx context.Context, in models.CreateUser) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.accounts.SignUp(ctx, rpc.CreateUserToStruct(in))
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.UserFromStruct(resp)
}

// SignIn returns the account on success and ErrInvalidCredentials when the
// email is unknown or the password is wrong.
func (s *GRPCClient) SignIn(ctx context.Context, in models.SignInUser) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.accounts.SignIn(ctx, rpc.SignInToStruct(in))
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.UserFromStruct(resp)
}

func (s *GRPCClient) FindUser(ctx context.Context, workspaceID int64, email string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.accounts.FindUser(ctx, rpc.LookupToStruct(workspaceID, email))
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.UserFromStruct(resp)
}

func (s *GRPCClient) DeleteUser(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.accounts.DeleteUser(ctx, rpc.UserIDToStruct(id))
	return s.deleted(resp, err)
}

func (s *GRPCClient) DeleteUserByEmail(ctx context.Context, workspaceID int64, email string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.accounts.DeleteUserByEmail(ctx, rpc.LookupToStruct(workspaceID, email))
	return s.deleted(resp, err)
}

func (s *GRPCClient) deleted(resp *structpb.Struct, err error) (bool, error) {
	if err != nil {
		return false, s.mapError(err)
	}
	return rpc.DeletedFromStruct(resp)
}

// Ping asks the server's health service about the Accounts service.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: rpc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrInvalidCredentials
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
