package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Sign-in failures carry one message whether the email is unknown or the
// password is wrong.
const invalidCredentialsMessage = "invalid email or password"

func (s *GRPCServer) SignUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	input, err := rpc.CreateUserFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.credentials.Create(ctx, input)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return rpc.UserToStruct(user), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	input, err := rpc.SignInFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.credentials.Verify(ctx, input)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if user == nil {
		return nil, status.Error(codes.Unauthenticated, invalidCredentialsMessage)
	}

	return rpc.UserToStruct(user), nil
}

func (s *GRPCServer) FindUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	ws, email, err := rpc.LookupFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.credentials.FindByEmail(ctx, email, ws)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if user == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}

	return rpc.UserToStruct(user), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	id, err := rpc.UserIDFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	deleted, err := s.credentials.Delete(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return rpc.DeletedToStruct(deleted), nil
}

func (s *GRPCServer) DeleteUserByEmail(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	ws, email, err := rpc.LookupFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	deleted, err := s.credentials.DeleteByEmail(ctx, email, ws)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return rpc.DeletedToStruct(deleted), nil
}

// toStatus maps service errors to gRPC status errors. Hashing and store
// faults are reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorDuplicateEmail):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorHashing):
		s.logger.Error(ctx, "hashing failure", "error", err)
		return status.Error(codes.Internal, "internal error")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, common.ErrorStore):
		s.logger.Error(ctx, "store failure", "error", err)
		return status.Error(codes.Unavailable, "storage unavailable")
	}
	s.logger.Error(ctx, "unexpected error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
