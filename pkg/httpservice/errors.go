package httpservice

import (
	"errors"
	"fmt"
)

// ErrMissingContentType reports a response that carried no Content-Type
// header where one was required.
var ErrMissingContentType = errors.New("missing Content-Type header")

// TransportError wraps a failure in the underlying network transport
// (connection refused, timeout, TLS handshake, and so on).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error while making or processing an HTTP request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SerializationError wraps a failure to encode a request body or decode a
// response body as JSON.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("error serializing or deserializing a JSON body: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// StatusError reports an unsuccessful HTTP status code in a response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request returned HTTP %d", e.Code)
}

// InvalidContentTypeError reports a Content-Type header whose value could
// not be parsed as a media type.
type InvalidContentTypeError struct {
	Value string
	Err   error
}

func (e *InvalidContentTypeError) Error() string {
	return fmt.Sprintf("invalid Content-Type header value %q: %v", e.Value, e.Err)
}

func (e *InvalidContentTypeError) Unwrap() error { return e.Err }

// UnexpectedContentTypeError reports a well-formed Content-Type that the
// service does not understand.
type UnexpectedContentTypeError struct {
	Value string
}

func (e *UnexpectedContentTypeError) Error() string {
	return fmt.Sprintf("unexpected content type: %s", e.Value)
}
