package httpservice

// Auth is an opaque API credential. The capability interfaces only promise
// to make it available to the implementation; how it is translated into
// wire-level authentication (bearer header, query parameter, ...) is up to
// each concrete service.
type Auth struct {
	apiKey string
}

// NewAuth wraps an API key as a credential value.
func NewAuth(apiKey string) Auth {
	return Auth{apiKey: apiKey}
}

// APIKey returns the raw credential.
func (a Auth) APIKey() string { return a.apiKey }
