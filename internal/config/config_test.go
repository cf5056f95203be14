package config

import (
	"testing"

	"mcpcli/internal/endpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (f fakeEnv) Getenv(key string) string { return f[key] }
func (f fakeEnv) FileExists(string) bool   { return false }

func TestLoad_Credentials(t *testing.T) {
	tests := []struct {
		name      string
		env       fakeEnv
		wantMode  CredentialMode
		wantValue string
	}{
		{
			name:     "no credential",
			env:      fakeEnv{},
			wantMode: CredentialNone,
		},
		{
			name:      "bearer token only",
			env:       fakeEnv{AuthTokenEnvVar: "tok-123"},
			wantMode:  CredentialBearer,
			wantValue: "tok-123",
		},
		{
			name:      "api key only",
			env:       fakeEnv{APIKeyEnvVar: "key-456"},
			wantMode:  CredentialAPIKey,
			wantValue: "key-456",
		},
		{
			name:      "bearer token wins over api key",
			env:       fakeEnv{AuthTokenEnvVar: "tok-123", APIKeyEnvVar: "key-456"},
			wantMode:  CredentialBearer,
			wantValue: "tok-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load(tt.env)
			assert.Equal(t, tt.wantMode, cfg.Credential.Mode)
			assert.Equal(t, tt.wantValue, cfg.Credential.Value)
		})
	}
}

func TestLoad_Endpoint(t *testing.T) {
	cfg := Load(fakeEnv{endpoint.EnvVar: "http://localhost:8080"})
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)

	cfg = Load(fakeEnv{})
	assert.Equal(t, endpoint.DefaultEndpoint, cfg.BaseURL)
}

func TestServiceConfig_WithEndpoint(t *testing.T) {
	original := ServiceConfig{BaseURL: "https://a.example.com", Credential: Credential{Mode: CredentialBearer, Value: "x"}}
	changed := original.WithEndpoint("https://b.example.com")

	assert.Equal(t, "https://a.example.com", original.BaseURL)
	assert.Equal(t, "https://b.example.com", changed.BaseURL)
	assert.Equal(t, original.Credential, changed.Credential)
}

func TestCredential_StringRedacts(t *testing.T) {
	tests := []struct {
		cred Credential
		want string
	}{
		{Credential{}, "none"},
		{Credential{Mode: CredentialNone}, "none"},
		{Credential{Mode: CredentialBearer, Value: "super-secret-token"}, "bearer(****)"},
		{Credential{Mode: CredentialAPIKey, Value: "abc"}, "api-key(****)"},
		{Credential{Mode: CredentialBearer, Value: "ключ-секрет"}, "bearer(****)"},
		{Credential{Mode: CredentialAPIKey}, "api-key"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cred.String())
		})
	}
}

func TestServiceConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{
			name: "valid https",
			cfg:  ServiceConfig{BaseURL: "https://mcp.anaxi.net"},
		},
		{
			name: "valid http with bearer",
			cfg:  ServiceConfig{BaseURL: "http://mcp-bridge:8080", Credential: Credential{Mode: CredentialBearer, Value: "t"}},
		},
		{
			name:    "empty url",
			cfg:     ServiceConfig{},
			wantErr: "is required",
		},
		{
			name:    "unsupported scheme",
			cfg:     ServiceConfig{BaseURL: "ftp://example.com"},
			wantErr: "http or https",
		},
		{
			name:    "missing host",
			cfg:     ServiceConfig{BaseURL: "http://"},
			wantErr: "must include a host",
		},
		{
			name:    "credential without value",
			cfg:     ServiceConfig{BaseURL: "https://x.example.com", Credential: Credential{Mode: CredentialAPIKey}},
			wantErr: "has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
