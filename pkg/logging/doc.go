// Package logging provides the structured logging used by the mcp CLI.
//
// It is a thin layer over Go's standard slog package. Every record carries a
// subsystem attribute so that debug output from the different layers of the
// client (configuration, HTTP client, command dispatch) can be told apart.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Client", "GET %s", url)
//	logging.Warn("Config", "both MCP_AUTH_TOKEN and MCP_API_KEY are set")
//	logging.Error("Client", err, "request failed")
//
// Nothing is logged until InitForCLI has been called. The CLI initializes the
// logger at WARN by default and at DEBUG when --debug is passed, always writing
// to stderr so that command output on stdout stays machine readable.
package logging
