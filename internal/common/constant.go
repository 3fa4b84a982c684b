package common

// RequestIDHeaderName is the gRPC metadata key carrying the request id.
const RequestIDHeaderName = "x-request-id"

// MaxFieldLength is the column width of user names and emails.
const MaxFieldLength = 64
