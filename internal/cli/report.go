package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mcpcli/internal/client"
	"mcpcli/internal/params"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ToolFailedError reports a tool that ran but returned success:false.
// The failure has already been rendered, so ReportError prints nothing for it.
type ToolFailedError struct {
	Tool string
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("tool %s reported failure", e.Tool)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ToolFailedError) Is(target error) bool {
	_, ok := target.(*ToolFailedError)
	return ok
}

// UsageError is an invalid command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

// ReportError writes the diagnostic for a failed command to w.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var (
		connErr    *client.ConnectionError
		authErr    *client.AuthRequiredError
		rateErr    *client.RateLimitedError
		serverErr  *client.ServerError
		unexpected *client.UnexpectedError
		parseErr   *params.ParseError
		toolErr    *ToolFailedError
	)

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, "\n👋 Interrupted by user")
	case errors.As(err, &toolErr):
		// already rendered with the result
	case errors.As(err, &connErr):
		fail(w, fmt.Sprintf("Cannot connect to MCP server at %s", connErr.Endpoint))
		hint(w, "Check if the server is running and accessible")
		if connErr.Type != client.ConnectionErrorUnknown {
			hint(w, fmt.Sprintf("%s: %v", connErr.Type, connErr.Reason))
		}
	case errors.As(err, &authErr):
		fail(w, "Authentication required. Set MCP_AUTH_TOKEN or MCP_API_KEY environment variable.")
	case errors.As(err, &rateErr):
		if rateErr.RetryAfter != "" {
			fail(w, fmt.Sprintf("Rate limit exceeded. Please try again later (retry after %s).", rateErr.RetryAfter))
		} else {
			fail(w, "Rate limit exceeded. Please try again later.")
		}
	case errors.As(err, &serverErr):
		fail(w, "Error: "+serverErr.Message)
	case errors.As(err, &parseErr):
		fail(w, parseErr.Error())
	case errors.As(err, &unexpected):
		fail(w, "Unexpected error: "+unexpected.Error())
	default:
		fail(w, "Error: "+err.Error())
	}
}

// ExitCode maps the outcome of a command to the process exit status.
// An interrupt is a clean exit.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

func fail(w io.Writer, msg string) {
	fmt.Fprintln(w, text.FgRed.Sprint("❌ "+msg))
}

func hint(w io.Writer, msg string) {
	fmt.Fprintln(w, text.FgYellow.Sprint("💡 "+msg))
}
