package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the fixed classification label attached to each tool.
type Category string

const (
	CategoryFinancial Category = "financial"
	CategoryDocuments Category = "documents"
	CategorySystem    Category = "system"
)

// Categories lists the categories accepted as a listing filter.
var Categories = []Category{CategoryFinancial, CategoryDocuments, CategorySystem}

// ParseCategory validates a category filter value.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return "", fmt.Errorf("invalid category %q (choose from %s)", s, strings.Join(names, ", "))
}

// Message is a human-readable error text. It decodes from either a JSON
// string or an object carrying a "message" field.
type Message string

// UnmarshalJSON implements json.Unmarshaler.
func (m *Message) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Message(s)
	case '{':
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*m = Message(obj.Message)
	default:
		*m = Message(string(data))
	}
	return nil
}

// Metadata describes how a tool execution was served. Fields are kept raw and
// read through DurationText and IsCached.
type Metadata struct {
	// Duration is the execution time in milliseconds.
	Duration json.RawMessage `json:"duration,omitempty"`
	Cached   json.RawMessage `json:"cached,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. Anything but an object decodes
// as empty metadata.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	*m = Metadata{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	type plain Metadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Metadata(p)
	return nil
}

// DurationText returns the reported duration as printed text. Numbers keep
// their literal form and strings are used as-is; any other value, or none,
// reports false.
func (m *Metadata) DurationText() (string, bool) {
	raw := bytes.TrimSpace(m.Duration)
	if len(raw) == 0 {
		return "", false
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case c == '-' || (c >= '0' && c <= '9'):
		return string(raw), true
	default:
		return "", false
	}
}

// IsCached reports whether the server marked the result as cached.
func (m *Metadata) IsCached() bool {
	return bytes.Equal(bytes.TrimSpace(m.Cached), []byte("true"))
}

// ExecutionResult is the response of a tool execution.
type ExecutionResult struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    Message         `json:"error,omitempty"`
	Metadata *Metadata       `json:"metadata,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// HasData reports whether the result carries a non-null data value.
func (r *ExecutionResult) HasData() bool {
	return isPresent(r.Data)
}

// RateLimit describes per-tool request quotas.
type RateLimit struct {
	MaxPerMinute json.Number `json:"maxPerMinute,omitempty"`
	MaxPerHour   json.Number `json:"maxPerHour,omitempty"`
}

// ToolDescriptor describes a single tool.
type ToolDescriptor struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	RequiresAuth bool            `json:"requiresAuth"`
	RateLimit    *RateLimit      `json:"rateLimit,omitempty"`
	InputSchema  json.RawMessage `json:"inputSchema,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// HasInputSchema reports whether the descriptor carries a non-null schema.
func (t *ToolDescriptor) HasInputSchema() bool {
	return isPresent(t.InputSchema)
}

// ToolList is the response of a tool listing.
type ToolList struct {
	Tools []ToolDescriptor `json:"tools"`

	Raw json.RawMessage `json:"-"`
}

// Capabilities summarizes what the bridge offers.
type Capabilities struct {
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Features    []string         `json:"features"`
	Tools       []ToolDescriptor `json:"tools"`

	Raw json.RawMessage `json:"-"`
}

// ToolsByCategory groups tool names by category, categories in order of
// first appearance.
func (c *Capabilities) ToolsByCategory() []CategoryTools {
	var groups []CategoryTools
	index := map[Category]int{}
	for _, tool := range c.Tools {
		i, ok := index[tool.Category]
		if !ok {
			i = len(groups)
			index[tool.Category] = i
			groups = append(groups, CategoryTools{Category: tool.Category})
		}
		groups[i].Tools = append(groups[i].Tools, tool.Name)
	}
	return groups
}

// CategoryTools is a category with the names of its tools.
type CategoryTools struct {
	Category Category
	Tools    []string
}

// CategoryCount is the number of tools in a category.
type CategoryCount struct {
	Category Category
	Count    int
}

// CategoryCounts is a JSON object of category counts that keeps the order in
// which the server sent the keys.
type CategoryCounts []CategoryCount

// UnmarshalJSON implements json.Unmarshaler.
func (c *CategoryCounts) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category counts: expected object, got %v", tok)
	}

	var counts CategoryCounts
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("category counts: %s: %w", key, err)
		}
		counts = append(counts, CategoryCount{Category: Category(key), Count: n})
	}

	*c = counts
	return nil
}

// ToolStats aggregates the tool registry.
type ToolStats struct {
	Total         int            `json:"total"`
	RequiresAuth  int            `json:"requiresAuth"`
	WithRateLimit int            `json:"withRateLimit"`
	ByCategory    CategoryCounts `json:"byCategory"`
}

// ServerInfo describes the running bridge.
type ServerInfo struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Environment string    `json:"environment"`
	Uptime      *float64  `json:"uptime,omitempty"`
	Stats       ToolStats `json:"stats"`

	Raw json.RawMessage `json:"-"`
}

// HealthStatus is the response of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`

	Raw json.RawMessage `json:"-"`
}

func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
