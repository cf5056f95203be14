package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"mcpcli/internal/client"
	"mcpcli/internal/params"
)

// Renderer writes command output in the selected format.
type Renderer struct {
	out  io.Writer
	opts Options
	tmpl *template.Template
}

// NewRenderer validates opts and returns a renderer writing to out.
func NewRenderer(out io.Writer, opts Options) (*Renderer, error) {
	if opts.Format == "" {
		opts.Format = OutputFormatText
	}
	if err := ValidateOutputFormat(string(opts.Format)); err != nil {
		return nil, err
	}

	r := &Renderer{out: out, opts: opts}
	if opts.Format == OutputFormatTemplate {
		tmpl, err := parseTemplate(opts.Template)
		if err != nil {
			return nil, err
		}
		r.tmpl = tmpl
	}
	return r, nil
}

// Structured reports whether the renderer prints response bodies rather
// than human-readable text.
func (r *Renderer) Structured() bool {
	return r.opts.structured()
}

func (r *Renderer) writeStructured(raw json.RawMessage) error {
	switch r.opts.Format {
	case OutputFormatJSON:
		return writeJSON(r.out, raw)
	case OutputFormatYAML:
		return writeYAML(r.out, raw)
	case OutputFormatTemplate:
		return writeTemplate(r.out, r.tmpl, raw)
	}
	return fmt.Errorf("format %s does not print response bodies", r.opts.Format)
}

// ToolHeader announces a tool execution before the request is sent.
// Structured formats print nothing here.
func (r *Renderer) ToolHeader(name string, p params.Map) error {
	if r.Structured() {
		return nil
	}

	fmt.Fprintf(r.out, "🔧 Executing tool: %s\n", name)
	if len(p) > 0 {
		encoded, err := json.MarshalIndent(p, "", structuredTextIndent)
		if err != nil {
			return fmt.Errorf("failed to encode parameters: %w", err)
		}
		fmt.Fprintf(r.out, "📋 Parameters: %s\n", encoded)
	}
	return nil
}

// ToolResult prints the outcome of a tool execution.
func (r *Renderer) ToolResult(result *client.ExecutionResult) error {
	if r.Structured() {
		return r.writeStructured(result.Raw)
	}

	_, err := fmt.Fprintf(r.out, "\n%s\n", FormatResult(result))
	return err
}

// ToolList prints a tool listing. category is the filter that was applied,
// empty for none.
func (r *Renderer) ToolList(list *client.ToolList, category client.Category) error {
	if r.Structured() {
		return r.writeStructured(list.Raw)
	}
	if r.opts.Format == OutputFormatTable {
		renderToolTable(r.out, list.Tools)
		return nil
	}

	if category != "" {
		fmt.Fprintf(r.out, "🔧 Tools in category '%s':\n\n", category)
	} else {
		fmt.Fprint(r.out, "🔧 Available tools:\n\n")
	}

	for _, tool := range list.Tools {
		fmt.Fprintf(r.out, "%s %s\n", authIndicator(tool.RequiresAuth), tool.Name)
		fmt.Fprintf(r.out, "   %s\n", tool.Description)
		fmt.Fprintf(r.out, "   Category: %s\n\n", tool.Category)
	}
	return nil
}

// ToolInfo prints the full descriptor of a tool.
func (r *Renderer) ToolInfo(tool *client.ToolDescriptor) error {
	if r.Structured() {
		return r.writeStructured(tool.Raw)
	}

	fmt.Fprintf(r.out, "🔧 Tool: %s\n", tool.Name)
	fmt.Fprintf(r.out, "📝 Description: %s\n", tool.Description)
	fmt.Fprintf(r.out, "📁 Category: %s\n", tool.Category)
	fmt.Fprintf(r.out, "🔐 Requires Auth: %t\n", tool.RequiresAuth)

	if tool.RateLimit != nil {
		fmt.Fprintf(r.out, "⏱️  Rate Limit: %s/min, %s/hour\n",
			numberOrPlaceholder(tool.RateLimit.MaxPerMinute),
			numberOrPlaceholder(tool.RateLimit.MaxPerHour))
	}

	fmt.Fprint(r.out, "\n📋 Input Schema:\n")
	schema := notAvailable
	if tool.HasInputSchema() {
		schema = indentJSON(tool.InputSchema)
	}
	_, err := fmt.Fprintln(r.out, schema)
	return err
}

// Capabilities prints the capabilities snapshot with tools grouped by category.
func (r *Renderer) Capabilities(caps *client.Capabilities) error {
	if r.Structured() {
		return r.writeStructured(caps.Raw)
	}
	if r.opts.Format == OutputFormatTable {
		renderCapabilitiesTable(r.out, caps)
		return nil
	}

	fmt.Fprintf(r.out, "🚀 MCP Server: %s v%s\n", caps.Name, caps.Version)
	fmt.Fprintf(r.out, "📝 %s\n", caps.Description)
	fmt.Fprintf(r.out, "\n✨ Features: %s\n", strings.Join(caps.Features, ", "))
	fmt.Fprintf(r.out, "\n🔧 Tools: %d available\n", len(caps.Tools))

	for _, group := range caps.ToolsByCategory() {
		fmt.Fprintf(r.out, "\n  %s: %s\n", group.Category, strings.Join(group.Tools, ", "))
	}
	return nil
}

// ServerInfo prints identity, uptime and tool statistics of the bridge.
func (r *Renderer) ServerInfo(info *client.ServerInfo) error {
	if r.Structured() {
		return r.writeStructured(info.Raw)
	}
	if r.opts.Format == OutputFormatTable {
		renderServerInfoTable(r.out, info)
		return nil
	}

	fmt.Fprintf(r.out, "🚀 %s v%s\n", info.Name, info.Version)
	fmt.Fprintf(r.out, "📝 %s\n", info.Description)
	fmt.Fprintf(r.out, "🌍 Environment: %s\n", info.Environment)
	fmt.Fprintf(r.out, "⏱️  Uptime: %s\n", formatUptime(info.Uptime))

	fmt.Fprint(r.out, "\n📊 Tool Statistics:\n")
	fmt.Fprintf(r.out, "  Total tools: %d\n", info.Stats.Total)
	fmt.Fprintf(r.out, "  Requiring auth: %d\n", info.Stats.RequiresAuth)
	fmt.Fprintf(r.out, "  With rate limits: %d\n", info.Stats.WithRateLimit)

	fmt.Fprint(r.out, "\n  By category:\n")
	for _, c := range info.Stats.ByCategory {
		fmt.Fprintf(r.out, "    %s: %d\n", c.Category, c.Count)
	}
	return nil
}

// Health prints the result of the health check.
func (r *Renderer) Health(health *client.HealthStatus) error {
	if r.Structured() {
		return r.writeStructured(health.Raw)
	}
	if r.opts.Format == OutputFormatTable {
		renderHealthTable(r.out, health)
		return nil
	}

	fmt.Fprintf(r.out, "%s Status: %s\n", healthIndicator(health.Status), valueOrPlaceholder(health.Status))
	if health.Version != "" {
		fmt.Fprintf(r.out, "📦 Version: %s\n", health.Version)
	}
	if health.Timestamp != "" {
		fmt.Fprintf(r.out, "🕐 Timestamp: %s\n", health.Timestamp)
	}
	return nil
}

func authIndicator(requiresAuth bool) string {
	if requiresAuth {
		return "🔐"
	}
	return "🔓"
}

func healthIndicator(status string) string {
	switch strings.ToLower(status) {
	case "healthy", "ok", "up":
		return "✅"
	}
	return "⚠️ "
}

func formatUptime(uptime *float64) string {
	if uptime == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.0f seconds", *uptime)
}

func numberOrPlaceholder(n json.Number) string {
	return valueOrPlaceholder(n.String())
}

func valueOrPlaceholder(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
