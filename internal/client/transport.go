package client

import (
	"net/http"

	"mcpcli/internal/config"

	"golang.org/x/oauth2"
)

const (
	// APIKeyHeader carries the API-key credential.
	APIKeyHeader = "x-api-key"
	// RequestIDHeader correlates a request with server logs.
	RequestIDHeader = "X-Request-ID"
)

// newAuthTransport wraps base so that every request carries the credential.
func newAuthTransport(cred config.Credential, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	switch cred.Mode {
	case config.CredentialBearer:
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: cred.Value,
				TokenType:   "Bearer",
			}),
			Base: base,
		}
	case config.CredentialAPIKey:
		return &apiKeyTransport{key: cred.Value, base: base}
	default:
		return base
	}
}

// apiKeyTransport sets the x-api-key header on every request.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set(APIKeyHeader, t.key)
	return t.base.RoundTrip(r)
}
