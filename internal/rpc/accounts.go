// Package rpc declares the accounts.v1.Accounts gRPC service shared by the
// server and the CLI client. Requests and responses are structpb.Struct
// messages carried by the default protobuf codec; convert.go maps them to and
// from the models package.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "accounts.v1.Accounts"

const (
	MethodSignUp            = "SignUp"
	MethodSignIn            = "SignIn"
	MethodFindUser          = "FindUser"
	MethodDeleteUser        = "DeleteUser"
	MethodDeleteUserByEmail = "DeleteUserByEmail"
)

// FullMethod returns the "/service/method" path of an Accounts method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// AccountsServer is the server API for the Accounts service.
type AccountsServer interface {
	SignUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FindUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteUserByEmail(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(AccountsServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountsServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AccountsServiceDesc is the grpc.ServiceDesc for the Accounts service.
var AccountsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodSignUp, Handler: unaryHandler(MethodSignUp, AccountsServer.SignUp)},
		{MethodName: MethodSignIn, Handler: unaryHandler(MethodSignIn, AccountsServer.SignIn)},
		{MethodName: MethodFindUser, Handler: unaryHandler(MethodFindUser, AccountsServer.FindUser)},
		{MethodName: MethodDeleteUser, Handler: unaryHandler(MethodDeleteUser, AccountsServer.DeleteUser)},
		{MethodName: MethodDeleteUserByEmail, Handler: unaryHandler(MethodDeleteUserByEmail, AccountsServer.DeleteUserByEmail)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAccountsServer registers srv on s.
func RegisterAccountsServer(s grpc.ServiceRegistrar, srv AccountsServer) {
	s.RegisterService(&AccountsServiceDesc, srv)
}

// AccountsClient is the client API for the Accounts service.
type AccountsClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountsClient(cc grpc.ClientConnInterface) *AccountsClient {
	return &AccountsClient{cc: cc}
}

func (c *AccountsClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) SignUp(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSignUp, in, opts...)
}

func (c *AccountsClient) SignIn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSignIn, in, opts...)
}

func (c *AccountsClient) FindUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodFindUser, in, opts...)
}

func (c *AccountsClient) DeleteUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeleteUser, in, opts...)
}

func (c *AccountsClient) DeleteUserByEmail(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeleteUserByEmail, in, opts...)
}
