// Package syncclient is the client side of the TodoSync gRPC protocol.
//
// Client manages a connection, attaches the access token to every call via
// a unary interceptor and maps gRPC status codes to sentinel errors that
// callers can match with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrMalformedRequest.
package syncclient
