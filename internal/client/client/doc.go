// Package client contains the client side of the accounts API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): SignUp,
//     SignIn, FindUser, DeleteUser, DeleteUserByEmail and Ping.
//  2. A gRPC implementation (see GRPCClient) that manages the connection,
//     applies a per-call timeout, tags every call with an x-request-id via an
//     interceptor and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrInvalidCredentials, ErrAlreadyExists, ErrNotFound and
// ErrInvalidArgument. Server messages are kept in the wrapped error text.
package client
