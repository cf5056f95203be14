package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mcpcli/internal/client"
)

// Placeholders for absent optional fields.
const (
	notAvailable         = "N/A"
	unknownToolFailure   = "Unknown error"
	structuredTextIndent = "  "
)

// FormatResult converts a tool execution result into human-readable text.
// It never fails: absent optional fields render as placeholders.
func FormatResult(result *client.ExecutionResult) string {
	if result == nil {
		return "❌ Failed: " + unknownToolFailure
	}

	var sb strings.Builder
	if result.Success {
		sb.WriteString("✅ Success\n")
		if result.HasData() {
			sb.WriteString(indentJSON(result.Data))
		}
	} else {
		msg := string(result.Error)
		if msg == "" {
			msg = unknownToolFailure
		}
		sb.WriteString("❌ Failed: " + msg)
	}

	if result.Metadata != nil {
		duration := notAvailable
		if d, ok := result.Metadata.DurationText(); ok {
			duration = d + "ms"
		}
		cached := result.Metadata.IsCached()

		sb.WriteString("\n\n📊 Metadata:\n")
		fmt.Fprintf(&sb, "  Duration: %s\n", duration)
		fmt.Fprintf(&sb, "  Cached: %t", cached)
	}

	return sb.String()
}

// indentJSON pretty prints raw JSON keeping the key order as received.
// Input that is not valid JSON is returned unchanged.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", structuredTextIndent); err != nil {
		return string(raw)
	}
	return buf.String()
}
