// Package cli renders MCP bridge responses for the terminal and reports
// failures to the user.
//
// # Output Formats
//
// Every command honors the --output flag:
//   - text: the default human-readable rendering with emoji markers
//   - table: go-pretty tables for listings and statistics
//   - json: the response body as received, indented
//   - yaml: the response body converted to YAML, keeping key order
//   - template: a Go text/template (with sprig functions) applied to the body
//
// Formats that only make sense for collections fall back to text for
// single-object responses.
//
// # Error Reporting
//
// ReportError prints exactly one diagnostic for a failed command and
// ExitCode maps the failure to the process exit status. Interrupts are not
// failures: they print a farewell and exit 0.
package cli
