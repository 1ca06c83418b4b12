package httpservice

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is an HTTP client produced by a ClientFactory. It is safe for
// concurrent use; clones share the same underlying connection pool.
type Client = *resty.Client

const defaultTimeout = 30 * time.Second

// ClientFactory builds HTTP clients that identify themselves with a fixed
// User-Agent string. Immutable after construction.
type ClientFactory struct {
	identity string
	timeout  time.Duration
}

// NewClientFactory creates a factory whose clients self-identify as
// identity. The string is stored verbatim; empty values are passed through
// to the transport untouched.
func NewClientFactory(identity string) *ClientFactory {
	return &ClientFactory{identity: identity, timeout: defaultTimeout}
}

// NewClientFactoryTimeout creates a factory with a per-request timeout
// instead of the default.
func NewClientFactoryTimeout(identity string, timeout time.Duration) *ClientFactory {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ClientFactory{identity: identity, timeout: timeout}
}

// Identity returns the identification string used for outgoing requests.
func (f *ClientFactory) Identity() string { return f.identity }

// Create builds a client configured with the factory's identity. Client
// construction has no recoverable failure mode here; conditions such as an
// uninitializable TLS backend surface later, as transport errors on the
// first request.
func (f *ClientFactory) Create() Client {
	c := resty.New()
	c.SetTimeout(f.timeout)
	c.SetHeader("User-Agent", f.identity)
	return c
}

// Identity formats the conventional identification string for a consumer,
// "<name> v<version>". Callers pass their own build metadata explicitly;
// the library reads nothing ambient.
func Identity(name, version string) string {
	return fmt.Sprintf("%s v%s", name, version)
}
