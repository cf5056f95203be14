package cli

import (
	"fmt"
	"strings"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatText is the default human-readable rendering
	OutputFormatText OutputFormat = "text"
	// OutputFormatTable formats listings as tables
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON prints the raw JSON response, indented
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints the response converted to YAML
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatTemplate applies a user supplied Go template to the response
	OutputFormatTemplate OutputFormat = "template"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatTable,
	OutputFormatJSON,
	OutputFormatYAML,
	OutputFormatTemplate,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	for _, f := range ValidOutputFormats {
		if OutputFormat(format) == f {
			return nil
		}
	}

	names := make([]string, len(ValidOutputFormats))
	for i, f := range ValidOutputFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("unsupported output format: %q (valid: %s)", format, strings.Join(names, ", "))
}

// Options controls how responses are rendered.
type Options struct {
	// Format selects the renderer; empty means text
	Format OutputFormat
	// Template is the Go template used with OutputFormatTemplate
	Template string
}

// structured reports whether the format prints the response body instead
// of the human-readable rendering.
func (o Options) structured() bool {
	switch o.Format {
	case OutputFormatJSON, OutputFormatYAML, OutputFormatTemplate:
		return true
	}
	return false
}
