package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mcpcli/internal/client"
	"mcpcli/internal/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, opts Options) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, opts)
	require.NoError(t, err)
	return r, &buf
}

func decodeToolList(t *testing.T, raw string) *client.ToolList {
	t.Helper()
	var list client.ToolList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	list.Raw = json.RawMessage(raw)
	return &list
}

const toolListBody = `{"tools":[
	{"name":"get_balance","description":"Get account balance","category":"financial","requiresAuth":true,"rateLimit":{"maxPerMinute":10,"maxPerHour":100}},
	{"name":"get_system_status","description":"System status","category":"system","requiresAuth":false}
]}`

func TestNewRenderer(t *testing.T) {
	_, err := NewRenderer(&bytes.Buffer{}, Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, err = NewRenderer(&bytes.Buffer{}, Options{Format: OutputFormatTemplate})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--template is required")

	_, err = NewRenderer(&bytes.Buffer{}, Options{Format: OutputFormatTemplate, Template: "{{ .name "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output template")

	r, err := NewRenderer(&bytes.Buffer{}, Options{})
	require.NoError(t, err)
	assert.False(t, r.Structured())
}

func TestRenderer_ToolHeader(t *testing.T) {
	r, buf := newTestRenderer(t, Options{})

	require.NoError(t, r.ToolHeader("get_balance", params.Map{"verbose": true, "limit": int64(5)}))
	assert.Equal(t, "🔧 Executing tool: get_balance\n📋 Parameters: {\n  \"limit\": 5,\n  \"verbose\": true\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, r.ToolHeader("get_balance", params.Map{}))
	assert.Equal(t, "🔧 Executing tool: get_balance\n", buf.String())
}

func TestRenderer_ToolResult(t *testing.T) {
	r, buf := newTestRenderer(t, Options{})

	require.NoError(t, r.ToolResult(&client.ExecutionResult{Success: true, Data: json.RawMessage(`{"balance":12.5}`)}))
	assert.Equal(t, "\n✅ Success\n{\n  \"balance\": 12.5\n}\n", buf.String())
}

func TestRenderer_ToolResultStructured(t *testing.T) {
	r, buf := newTestRenderer(t, Options{Format: OutputFormatJSON})

	require.NoError(t, r.ToolHeader("get_balance", params.Map{"a": 1}))
	require.NoError(t, r.ToolResult(&client.ExecutionResult{Raw: json.RawMessage(`{"success":true,"data":{"b":1,"a":2}}`)}))
	assert.Equal(t, "{\n  \"success\": true,\n  \"data\": {\n    \"b\": 1,\n    \"a\": 2\n  }\n}\n", buf.String())
}

func TestRenderer_ToolList(t *testing.T) {
	list := decodeToolList(t, toolListBody)

	r, buf := newTestRenderer(t, Options{})
	require.NoError(t, r.ToolList(list, ""))
	assert.Equal(t, "🔧 Available tools:\n\n"+
		"🔐 get_balance\n   Get account balance\n   Category: financial\n\n"+
		"🔓 get_system_status\n   System status\n   Category: system\n\n", buf.String())

	buf.Reset()
	require.NoError(t, r.ToolList(&client.ToolList{}, client.CategoryDocuments))
	assert.Equal(t, "🔧 Tools in category 'documents':\n\n", buf.String())
}

func TestRenderer_ToolListTable(t *testing.T) {
	list := decodeToolList(t, toolListBody)

	r, buf := newTestRenderer(t, Options{Format: OutputFormatTable})
	require.NoError(t, r.ToolList(list, ""))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "get_balance")
	assert.Contains(t, out, "10/min, 100/hour")
	assert.Contains(t, out, "get_system_status")
	assert.Less(t, strings.Index(out, "get_balance"), strings.Index(out, "get_system_status"))

	buf.Reset()
	require.NoError(t, r.ToolList(&client.ToolList{}, ""))
	assert.Contains(t, buf.String(), "No tools found")
}

func TestRenderer_ToolInfo(t *testing.T) {
	r, buf := newTestRenderer(t, Options{})

	tool := &client.ToolDescriptor{
		Name:         "get_balance",
		Description:  "Get account balance",
		Category:     client.CategoryFinancial,
		RequiresAuth: true,
		RateLimit:    &client.RateLimit{MaxPerMinute: "10", MaxPerHour: "100"},
		InputSchema:  json.RawMessage(`{"type":"object"}`),
	}
	require.NoError(t, r.ToolInfo(tool))
	assert.Equal(t, "🔧 Tool: get_balance\n"+
		"📝 Description: Get account balance\n"+
		"📁 Category: financial\n"+
		"🔐 Requires Auth: true\n"+
		"⏱️  Rate Limit: 10/min, 100/hour\n"+
		"\n📋 Input Schema:\n"+
		"{\n  \"type\": \"object\"\n}\n", buf.String())
}

func TestRenderer_ToolInfoAbsentFields(t *testing.T) {
	r, buf := newTestRenderer(t, Options{Format: OutputFormatTable})

	require.NoError(t, r.ToolInfo(&client.ToolDescriptor{Name: "bare"}))
	out := buf.String()
	assert.NotContains(t, out, "Rate Limit")
	assert.True(t, strings.HasSuffix(out, "📋 Input Schema:\nN/A\n"))
}

func TestRenderer_Capabilities(t *testing.T) {
	caps := &client.Capabilities{
		Name:        "MCP Bridge",
		Version:     "1.0.0",
		Description: "Bridge to AI services",
		Features:    []string{"tool-execution", "rate-limiting"},
		Tools: []client.ToolDescriptor{
			{Name: "t1", Category: client.CategorySystem},
			{Name: "t2", Category: client.CategoryFinancial},
			{Name: "t3", Category: client.CategorySystem},
		},
	}

	r, buf := newTestRenderer(t, Options{})
	require.NoError(t, r.Capabilities(caps))
	assert.Equal(t, "🚀 MCP Server: MCP Bridge v1.0.0\n"+
		"📝 Bridge to AI services\n"+
		"\n✨ Features: tool-execution, rate-limiting\n"+
		"\n🔧 Tools: 3 available\n"+
		"\n  system: t1, t3\n"+
		"\n  financial: t2\n", buf.String())

	r, buf = newTestRenderer(t, Options{Format: OutputFormatTable})
	require.NoError(t, r.Capabilities(caps))
	assert.Contains(t, buf.String(), "system")
	assert.Contains(t, buf.String(), "t1, t3")
}

func TestRenderer_ServerInfo(t *testing.T) {
	uptime := 3600.4
	info := &client.ServerInfo{
		Name:        "MCP Bridge",
		Version:     "1.0.0",
		Description: "Bridge to AI services",
		Environment: "production",
		Uptime:      &uptime,
		Stats: client.ToolStats{
			Total:         5,
			RequiresAuth:  3,
			WithRateLimit: 2,
			ByCategory: client.CategoryCounts{
				{Category: client.CategorySystem, Count: 2},
				{Category: client.CategoryFinancial, Count: 3},
			},
		},
	}

	r, buf := newTestRenderer(t, Options{})
	require.NoError(t, r.ServerInfo(info))
	assert.Equal(t, "🚀 MCP Bridge v1.0.0\n"+
		"📝 Bridge to AI services\n"+
		"🌍 Environment: production\n"+
		"⏱️  Uptime: 3600 seconds\n"+
		"\n📊 Tool Statistics:\n"+
		"  Total tools: 5\n"+
		"  Requiring auth: 3\n"+
		"  With rate limits: 2\n"+
		"\n  By category:\n"+
		"    system: 2\n"+
		"    financial: 3\n", buf.String())

	info.Uptime = nil
	buf.Reset()
	require.NoError(t, r.ServerInfo(info))
	assert.Contains(t, buf.String(), "⏱️  Uptime: N/A\n")

	r, buf = newTestRenderer(t, Options{Format: OutputFormatTable})
	require.NoError(t, r.ServerInfo(info))
	assert.Contains(t, buf.String(), "production")
	assert.Contains(t, buf.String(), "Category financial")
}

func TestRenderer_Health(t *testing.T) {
	r, buf := newTestRenderer(t, Options{})
	require.NoError(t, r.Health(&client.HealthStatus{Status: "healthy", Version: "1.0.0", Timestamp: "2026-01-01T00:00:00Z"}))
	assert.Equal(t, "✅ Status: healthy\n📦 Version: 1.0.0\n🕐 Timestamp: 2026-01-01T00:00:00Z\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Health(&client.HealthStatus{Status: "degraded"}))
	assert.Equal(t, "⚠️  Status: degraded\n", buf.String())
}

func TestRenderer_YAMLKeepsOrder(t *testing.T) {
	r, buf := newTestRenderer(t, Options{Format: OutputFormatYAML})

	list := decodeToolList(t, `{"tools":[{"name":"x","category":"system","code":"007"}],"count":null}`)
	require.NoError(t, r.ToolList(list, ""))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "tools:\n"), out)
	assert.Contains(t, out, "name: x")
	assert.Contains(t, out, "count: null")
	assert.Regexp(t, `code: ["']007["']`, out)
	assert.Less(t, strings.Index(out, "name:"), strings.Index(out, "category:"))
	assert.NotContains(t, out, "{")
}

func TestRenderer_Template(t *testing.T) {
	r, buf := newTestRenderer(t, Options{
		Format:   OutputFormatTemplate,
		Template: `{{ range .tools }}{{ .name | upper }} {{ .requiresAuth | default "open" }}{{ "\n" }}{{ end }}`,
	})

	require.NoError(t, r.ToolList(decodeToolList(t, toolListBody), ""))
	assert.Equal(t, "GET_BALANCE true\nGET_SYSTEM_STATUS open\n", buf.String())
}

func TestRenderer_TemplateAddsTrailingNewline(t *testing.T) {
	r, buf := newTestRenderer(t, Options{Format: OutputFormatTemplate, Template: `{{ .status }}`})

	require.NoError(t, r.Health(&client.HealthStatus{Raw: json.RawMessage(`{"status":"healthy"}`)}))
	assert.Equal(t, "healthy\n", buf.String())
}
