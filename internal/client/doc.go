// Package client is the HTTP client for the MCP bridge.
//
// A Client is built once per process from a config.ServiceConfig and issues
// exactly one request per operation:
//
//	POST /mcp/tools/{name}/execute   ExecuteTool
//	GET  /mcp/tools[?category=...]   ListTools
//	GET  /mcp/tools/{name}           GetToolInfo
//	GET  /mcp/capabilities           GetCapabilities
//	GET  /mcp/info                   GetServerInfo
//	GET  /health                     Health
//
// # Authentication
//
// At most one credential is attached to every request: a bearer token is sent
// as "Authorization: Bearer <token>" through an oauth2 transport, an API key as
// "x-api-key: <key>". Without a credential, requests go out unauthenticated and
// the server decides whether that is acceptable.
//
// # Errors
//
// Every failure is normalized into one of a small set of error types so that
// the caller can report it without inspecting HTTP details:
//
//   - *ConnectionError: the bridge could not be reached
//   - *AuthRequiredError: HTTP 401
//   - *RateLimitedError: HTTP 429
//   - *ServerError: any other HTTP 4xx/5xx, with the server's message
//   - *UnexpectedError: anything else, e.g. an undecodable response body
//
// A canceled context is returned as is so that interrupts can be told apart
// from failures. The client never retries.
//
// # Responses
//
// Responses are decoded into per-endpoint structures. Optional fields decode to
// their zero value or nil when absent, and every structure keeps the raw
// response body so that callers can re-render it without losing key order.
package client
