package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samvad-hq/dakiya/pkg/httpservice"
)

// ErrNotRecorded reports a replay-only service that was asked for a
// request with no recording in the cassette.
var ErrNotRecorded = errors.New("no recording for request")

// Recorder implements httpservice.Service over a cassette. When a request
// has a recording it is served from the cassette; otherwise the request is
// forwarded to the inner service and its response recorded for next time.
type Recorder struct {
	cassette *Cassette
	inner    httpservice.Service
}

// NewRecorder wraps inner so every response it produces is captured into
// the cassette and replayed on subsequent identical requests.
func NewRecorder(cassette *Cassette, inner httpservice.Service) *Recorder {
	return &Recorder{cassette: cassette, inner: inner}
}

// NewReplayer builds a service that only serves recorded responses. A
// request with no recording fails with a transport error wrapping
// ErrNotRecorded.
func NewReplayer(cassette *Cassette) *Recorder {
	return &Recorder{cassette: cassette}
}

// Get serves the recorded body for uri, recording it from the inner
// service first if necessary.
func (r *Recorder) Get(ctx context.Context, uri string) (string, error) {
	key := requestKey("GET", uri)

	body, ok, err := r.cassette.lookup(key)
	if err != nil {
		return "", &httpservice.TransportError{Err: err}
	}
	if ok {
		return string(body), nil
	}
	if r.inner == nil {
		return "", &httpservice.TransportError{Err: fmt.Errorf("%w: %s", ErrNotRecorded, key)}
	}

	text, err := r.inner.Get(ctx, uri)
	if err != nil {
		return "", err
	}
	if err := r.cassette.store(key, []byte(text)); err != nil {
		return "", &httpservice.TransportError{Err: err}
	}
	return text, nil
}

// Post serves the recorded JSON response for uri into out, recording the
// inner service's response first if necessary. The request body and auth
// are not part of the recording key.
func (r *Recorder) Post(ctx context.Context, uri string, auth httpservice.Auth, body, out any) error {
	key := requestKey("POST", uri)

	recorded, ok, err := r.cassette.lookup(key)
	if err != nil {
		return &httpservice.TransportError{Err: err}
	}
	if ok {
		if err := json.Unmarshal(recorded, out); err != nil {
			return &httpservice.SerializationError{Err: err}
		}
		return nil
	}
	if r.inner == nil {
		return &httpservice.TransportError{Err: fmt.Errorf("%w: %s", ErrNotRecorded, key)}
	}

	if err := r.inner.Post(ctx, uri, auth, body, out); err != nil {
		return err
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return &httpservice.SerializationError{Err: err}
	}
	if err := r.cassette.store(key, raw); err != nil {
		return &httpservice.TransportError{Err: err}
	}
	return nil
}

func requestKey(method, uri string) string {
	return method + " " + uri
}
