// Package endpoint decides which MCP bridge the CLI talks to.
//
// The decision is a pure function of the process environment and the
// filesystem, expressed through the Environment interface so that it can be
// exercised without touching the real process state.
package endpoint

import "os"

const (
	// EnvVar is the environment variable holding an explicit endpoint override.
	EnvVar = "MCP_ENDPOINT"
	// ContainerMarker is the file Docker creates at the root of every container.
	ContainerMarker = "/.dockerenv"
	// ContainerEndpoint is the bridge address on the compose network.
	ContainerEndpoint = "http://mcp-bridge:8080"
	// DefaultEndpoint is the public production bridge.
	DefaultEndpoint = "https://mcp.anaxi.net"
)

// Source identifies which rule produced a resolved endpoint.
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceContainer   Source = "container"
	SourceDefault     Source = "default"
)

// Environment is the read-only view of the process environment used for
// endpoint resolution.
type Environment interface {
	Getenv(key string) string
	FileExists(path string) bool
}

// OSEnvironment reads the real process environment and filesystem.
type OSEnvironment struct{}

// Getenv returns the value of the environment variable named by key.
func (OSEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

// FileExists reports whether path can be stat'ed.
func (OSEnvironment) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve returns the base URL of the MCP bridge.
//
// Precedence:
//  1. MCP_ENDPOINT, verbatim
//  2. the container network address when /.dockerenv exists
//  3. the public production URL
func Resolve(env Environment) string {
	url, _ := ResolveWithSource(env)
	return url
}

// ResolveWithSource is Resolve but also reports which rule matched.
func ResolveWithSource(env Environment) (string, Source) {
	if override := env.Getenv(EnvVar); override != "" {
		return override, SourceEnvironment
	}

	if env.FileExists(ContainerMarker) {
		return ContainerEndpoint, SourceContainer
	}

	return DefaultEndpoint, SourceDefault
}
