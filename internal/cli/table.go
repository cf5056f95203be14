package cli

import (
	"fmt"
	"io"
	"strings"

	"mcpcli/internal/client"
	pkgstrings "mcpcli/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable creates a table with standard styling that renders to w.
func newTable(w io.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = text.FgHiCyan.Sprint(h)
	}
	t.AppendHeader(row)
	return t
}

func renderToolTable(w io.Writer, tools []client.ToolDescriptor) {
	if len(tools) == 0 {
		fmt.Fprintf(w, "%s %s\n", text.FgYellow.Sprint("📋"), text.FgYellow.Sprint("No tools found"))
		return
	}

	t := newTable(w, "NAME", "CATEGORY", "AUTH", "RATE LIMIT", "DESCRIPTION")
	for _, tool := range tools {
		t.AppendRow(table.Row{
			text.Bold.Sprint(tool.Name),
			string(tool.Category),
			authIndicator(tool.RequiresAuth),
			formatRateLimit(tool.RateLimit),
			pkgstrings.TruncateDescription(tool.Description, pkgstrings.DefaultDescriptionMaxLen),
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(tools))})
	t.Render()
}

func renderCapabilitiesTable(w io.Writer, caps *client.Capabilities) {
	t := newTable(w, "CATEGORY", "COUNT", "TOOLS")
	t.SetTitle("%s v%s", caps.Name, caps.Version)
	for _, group := range caps.ToolsByCategory() {
		t.AppendRow(table.Row{string(group.Category), len(group.Tools), strings.Join(group.Tools, ", ")})
	}
	t.AppendFooter(table.Row{"Features", "", strings.Join(caps.Features, ", ")})
	t.Render()
}

func renderServerInfoTable(w io.Writer, info *client.ServerInfo) {
	t := newTable(w, "PROPERTY", "VALUE")
	t.SetTitle("%s v%s", info.Name, info.Version)
	t.AppendRows([]table.Row{
		{"Environment", valueOrPlaceholder(info.Environment)},
		{"Uptime", formatUptime(info.Uptime)},
		{"Total tools", info.Stats.Total},
		{"Requiring auth", info.Stats.RequiresAuth},
		{"With rate limits", info.Stats.WithRateLimit},
	})
	t.AppendSeparator()
	for _, c := range info.Stats.ByCategory {
		t.AppendRow(table.Row{"Category " + string(c.Category), c.Count})
	}
	t.Render()
}

func renderHealthTable(w io.Writer, health *client.HealthStatus) {
	t := newTable(w, "STATUS", "VERSION", "TIMESTAMP")
	t.AppendRow(table.Row{
		valueOrPlaceholder(health.Status),
		valueOrPlaceholder(health.Version),
		valueOrPlaceholder(health.Timestamp),
	})
	t.Render()
}

func formatRateLimit(rl *client.RateLimit) string {
	if rl == nil {
		return "-"
	}
	return fmt.Sprintf("%s/min, %s/hour", numberOrPlaceholder(rl.MaxPerMinute), numberOrPlaceholder(rl.MaxPerHour))
}
