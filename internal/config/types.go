package config

// CredentialMode is the single authentication scheme active for a process.
type CredentialMode string

const (
	CredentialNone   CredentialMode = "none"
	CredentialBearer CredentialMode = "bearer"
	CredentialAPIKey CredentialMode = "api-key"
)

// Credential holds the secret for the active credential mode.
type Credential struct {
	Mode  CredentialMode
	Value string
}

// String never exposes the secret.
func (c Credential) String() string {
	if c.Mode == CredentialNone || c.Mode == "" {
		return string(CredentialNone)
	}
	if c.Value == "" {
		return string(c.Mode)
	}
	return string(c.Mode) + "(****)"
}

// ServiceConfig describes how to reach and authenticate against the MCP bridge.
type ServiceConfig struct {
	// BaseURL is the bridge root, e.g. https://mcp.anaxi.net
	BaseURL string
	// Credential is the active credential; Mode is CredentialNone when unset.
	Credential Credential
}

// WithEndpoint returns a copy of the configuration pointing at another base URL.
func (c ServiceConfig) WithEndpoint(baseURL string) ServiceConfig {
	c.BaseURL = baseURL
	return c
}
