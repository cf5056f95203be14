// Package config builds the immutable configuration of a single CLI invocation.
//
// All configuration is read from the environment once at process start:
//
//   - MCP_ENDPOINT: explicit base URL of the MCP bridge (see package endpoint)
//   - MCP_AUTH_TOKEN: bearer credential
//   - MCP_API_KEY: API-key credential, used only when no bearer token is set
//
// The resulting ServiceConfig is passed explicitly into the service client.
// There is no configuration file and no global mutable state.
package config
