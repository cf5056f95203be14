package config

import (
	"mcpcli/internal/endpoint"
	"mcpcli/pkg/logging"
)

const (
	// AuthTokenEnvVar holds the bearer credential.
	AuthTokenEnvVar = "MCP_AUTH_TOKEN"
	// APIKeyEnvVar holds the API-key credential.
	APIKeyEnvVar = "MCP_API_KEY"
)

// Load reads the service configuration from env.
// A bearer token takes priority over an API key; with neither set requests
// go out unauthenticated.
func Load(env endpoint.Environment) ServiceConfig {
	baseURL, source := endpoint.ResolveWithSource(env)
	logging.Debug("Config", "resolved endpoint %s (source: %s)", baseURL, source)

	cfg := ServiceConfig{
		BaseURL:    baseURL,
		Credential: Credential{Mode: CredentialNone},
	}

	token := env.Getenv(AuthTokenEnvVar)
	apiKey := env.Getenv(APIKeyEnvVar)

	switch {
	case token != "":
		cfg.Credential = Credential{Mode: CredentialBearer, Value: token}
		if apiKey != "" {
			logging.Debug("Config", "%s is set, ignoring %s", AuthTokenEnvVar, APIKeyEnvVar)
		}
	case apiKey != "":
		cfg.Credential = Credential{Mode: CredentialAPIKey, Value: apiKey}
	}

	logging.Debug("Config", "credential mode: %s", cfg.Credential.Mode)
	return cfg
}
