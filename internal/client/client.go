package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mcpcli/internal/config"
	"mcpcli/internal/params"
	"mcpcli/pkg/logging"

	"github.com/google/uuid"
)

// DefaultUserAgent is sent when no other user agent is configured.
const DefaultUserAgent = "mcp-cli"

// Client talks to a single MCP bridge.
type Client struct {
	// baseURL is the parsed bridge root
	baseURL *url.URL
	// endpoint is the base URL as configured, used in diagnostics
	endpoint string
	// credentialMode is kept for debug logging only
	credentialMode config.CredentialMode
	// http carries the credential in its transport
	http *http.Client
	// userAgent is sent with every request
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient uses hc (its transport, timeout and redirect policy) as the
// base for all requests. The credential is layered on top of hc's transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			clone := *hc
			c.http = &clone
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for the bridge described by cfg.
func New(cfg config.ServiceConfig, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	c := &Client{
		baseURL:        baseURL,
		endpoint:       cfg.BaseURL,
		credentialMode: cfg.Credential.Mode,
		http:           &http.Client{},
		userAgent:      DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.Transport = newAuthTransport(cfg.Credential, c.http.Transport)
	return c, nil
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ExecuteTool runs the named tool with p as its parameters.
func (c *Client) ExecuteTool(ctx context.Context, name string, p params.Map) (*ExecutionResult, error) {
	if p == nil {
		p = params.Map{}
	}

	body, err := c.do(ctx, "execute tool", http.MethodPost, toolPath(name)+"/execute", nil, p)
	if err != nil {
		return nil, err
	}

	var result ExecutionResult
	if err := decode("execute tool", body, &result); err != nil {
		return nil, err
	}
	result.Raw = body
	return &result, nil
}

// ListTools lists the tools of the bridge, optionally restricted to a category.
func (c *Client) ListTools(ctx context.Context, category Category) (*ToolList, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", string(category))
	}

	body, err := c.do(ctx, "list tools", http.MethodGet, "/mcp/tools", query, nil)
	if err != nil {
		return nil, err
	}

	var list ToolList
	if err := decode("list tools", body, &list); err != nil {
		return nil, err
	}
	if list.Tools == nil {
		list.Tools = []ToolDescriptor{}
	}
	list.Raw = body
	return &list, nil
}

// GetToolInfo returns the descriptor of the named tool.
func (c *Client) GetToolInfo(ctx context.Context, name string) (*ToolDescriptor, error) {
	body, err := c.do(ctx, "get tool info", http.MethodGet, toolPath(name), nil, nil)
	if err != nil {
		return nil, err
	}

	var tool ToolDescriptor
	if err := decode("get tool info", body, &tool); err != nil {
		return nil, err
	}
	tool.Raw = body
	return &tool, nil
}

// GetCapabilities returns the capabilities snapshot of the bridge.
func (c *Client) GetCapabilities(ctx context.Context) (*Capabilities, error) {
	body, err := c.do(ctx, "get capabilities", http.MethodGet, "/mcp/capabilities", nil, nil)
	if err != nil {
		return nil, err
	}

	var caps Capabilities
	if err := decode("get capabilities", body, &caps); err != nil {
		return nil, err
	}
	caps.Raw = body
	return &caps, nil
}

// GetServerInfo returns identity, uptime and tool statistics of the bridge.
func (c *Client) GetServerInfo(ctx context.Context) (*ServerInfo, error) {
	body, err := c.do(ctx, "get server info", http.MethodGet, "/mcp/info", nil, nil)
	if err != nil {
		return nil, err
	}

	var info ServerInfo
	if err := decode("get server info", body, &info); err != nil {
		return nil, err
	}
	info.Raw = body
	return &info, nil
}

// Health queries the bridge's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	body, err := c.do(ctx, "health", http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthStatus
	if err := decode("health", body, &health); err != nil {
		return nil, err
	}
	health.Raw = body
	return &health, nil
}

// toolPath builds the path of a tool, escaping its name as one segment.
func toolPath(name string) string {
	return "/mcp/tools/" + url.PathEscape(name)
}

// resolve joins an absolute request path onto the base URL. Like a browser
// resolving "/path" against a page, any path on the base URL is replaced.
func (c *Client) resolve(path string, query url.Values) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	return c.baseURL.ResolveReference(ref), nil
}

// do performs one request and returns the body of a successful response.
// Non-success outcomes are mapped onto the error types of this package.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload any) ([]byte, error) {
	target, err := c.resolve(path, query)
	if err != nil {
		return nil, &UnexpectedError{Op: op, Reason: err}
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &UnexpectedError{Op: op, Reason: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, &UnexpectedError{Op: op, Reason: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debug("Client", "%s %s (request id %s, credential %s)", method, target.Redacted(), requestID, c.credentialMode)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logging.Debug("Client", "%s %s failed after %s: %v", method, target.Redacted(), logging.Elapsed(start), err)
		return nil, ClassifyConnectionError(err, c.endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &UnexpectedError{Op: op, Reason: fmt.Errorf("failed to read response body: %w", err)}
	}

	logging.Debug("Client", "%s %s -> %d in %s", method, target.Redacted(), resp.StatusCode, logging.Elapsed(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthRequiredError{Endpoint: c.endpoint}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitedError{Endpoint: c.endpoint, RetryAfter: resp.Header.Get("Retry-After")}
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: serverErrorMessage(resp, body)}
	}

	return body, nil
}

// serverErrorMessage extracts {"error": {"message": ...}} (or {"error": "..."})
// from an error response, falling back to the HTTP status line.
func serverErrorMessage(resp *http.Response, body []byte) string {
	var envelope struct {
		Error Message `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return string(envelope.Error)
	}

	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func decode(op string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || len(bytes.TrimSpace(body)) == 0 {
			return &UnexpectedError{Op: op, Reason: fmt.Errorf("response is not valid JSON: %w", err)}
		}
		return &UnexpectedError{Op: op, Reason: fmt.Errorf("unexpected response shape: %w", err)}
	}
	return nil
}
