package httpservice

import (
	"context"
	"encoding/json"
	"mime"
	"strings"

	"go.uber.org/zap"
)

const contentTypeJSON = "application/json"

// RestService implements Service against a real HTTP server using a
// factory-built client. Safe for concurrent use.
type RestService struct {
	client Client
	log    *zap.SugaredLogger
}

// RestServiceOption customizes a RestService.
type RestServiceOption func(*RestService)

// WithLogger attaches a sugared logger for request-level debug logging.
func WithLogger(log *zap.SugaredLogger) RestServiceOption {
	return func(s *RestService) { s.log = log }
}

// NewRestService builds a service backed by a client from the given factory.
func NewRestService(factory *ClientFactory, opts ...RestServiceOption) *RestService {
	s := &RestService{client: factory.Create()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get performs a GET request and returns the raw response body as text.
// Status codes and content types are deliberately not inspected.
func (s *RestService) Get(ctx context.Context, uri string) (string, error) {
	if s.log != nil {
		s.log.Debugw("http get", "uri", uri)
	}

	resp, err := s.client.R().SetContext(ctx).Get(uri)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	return string(resp.Body()), nil
}

// Post sends body as a JSON object to uri with bearer authentication and
// decodes the JSON response into out.
func (s *RestService) Post(ctx context.Context, uri string, auth Auth, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &SerializationError{Err: err}
	}

	if s.log != nil {
		s.log.Debugw("http post", "uri", uri, "bytes", len(payload))
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetAuthToken(auth.APIKey()).
		SetBody(payload).
		Post(uri)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.IsError() {
		return &StatusError{Code: resp.StatusCode()}
	}

	if err := checkContentType(resp.Header().Get("Content-Type")); err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// checkContentType verifies a response Content-Type announces JSON.
func checkContentType(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return &InvalidContentTypeError{Value: value, Err: err}
	}
	if mediaType != contentTypeJSON {
		return &UnexpectedContentTypeError{Value: mediaType}
	}
	return nil
}
