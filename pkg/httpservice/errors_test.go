package httpservice

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		err  error
		want string
	}{
		{&TransportError{Err: cause}, "boom"},
		{&SerializationError{Err: cause}, "boom"},
		{&StatusError{Code: 503}, "503"},
		{ErrMissingContentType, "Content-Type"},
		{&InvalidContentTypeError{Value: "/", Err: cause}, `"/"`},
		{&UnexpectedContentTypeError{Value: "text/html"}, "text/html"},
	}
	for _, tc := range cases {
		if !strings.Contains(tc.err.Error(), tc.want) {
			t.Fatalf("%T message %q does not mention %q", tc.err, tc.err.Error(), tc.want)
		}
	}
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")

	for _, err := range []error{
		&TransportError{Err: cause},
		&SerializationError{Err: cause},
		&InvalidContentTypeError{Value: "/", Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Fatalf("%T does not unwrap to its cause", err)
		}
	}
}
