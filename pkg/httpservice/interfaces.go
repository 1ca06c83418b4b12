package httpservice

import "context"

// Package httpservice provides a thin, injectable abstraction over an HTTP
// client so API clients can swap the real transport for test doubles.

// Getter is a service capable of making HTTP GET requests. Get returns the
// raw response body as text. Implementations map transport failures to
// *TransportError and do not inspect status codes or content types; that
// policy belongs to richer layers built on top.
type Getter interface {
	Get(ctx context.Context, uri string) (string, error)
}

// Poster is a service capable of making HTTP POST requests. Post encodes
// body as JSON, attaches auth in an implementation-defined way, and decodes
// the response body into out (a pointer).
type Poster interface {
	Post(ctx context.Context, uri string, auth Auth, body, out any) error
}

// Service is a full HTTP service: anything that can both Get and Post.
// Satisfaction is structural; a type providing both methods is a Service
// without any extra declaration.
type Service interface {
	Getter
	Poster
}

// PostAs posts body to uri and returns the decoded response value.
func PostAs[R any](ctx context.Context, p Poster, uri string, auth Auth, body any) (R, error) {
	var out R
	if err := p.Post(ctx, uri, auth, body, &out); err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}
