package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	flagPrefix = "--"
	jsonFlag   = "--json"
)

// Map is the parameter object sent as a tool execution request body.
// Values inferred from flags are bool, int64, json.Number (integers beyond
// int64), float64 or string; values from
// a --json payload keep their JSON types (numbers as json.Number).
type Map map[string]any

// ParseError reports malformed parameter input on the command line.
type ParseError struct {
	// Token is the offending input, if any.
	Token string
	// Message describes what is wrong.
	Message string
	// Reason is the underlying decoding error, if any.
	Reason error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Token)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// Parse converts command-line tokens into a parameter map.
// The only failures are a --json without a following token and a --json
// payload that is not a JSON object.
func Parse(tokens []string) (Map, error) {
	params := Map{}

	i := 0
	for i < len(tokens) {
		token := tokens[i]

		switch {
		case token == jsonFlag:
			if i+1 >= len(tokens) {
				return nil, &ParseError{Message: "--json requires a value"}
			}
			payload, err := decodeObject(tokens[i+1])
			if err != nil {
				return nil, err
			}
			for k, v := range payload {
				params[k] = v
			}
			i += 2

		case strings.HasPrefix(token, flagPrefix):
			key := strings.TrimPrefix(token, flagPrefix)
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], flagPrefix) {
				params[key] = InferValue(tokens[i+1])
				i += 2
			} else {
				params[key] = true
				i++
			}

		default:
			i++
		}
	}

	return params, nil
}

// decodeObject parses a --json payload, keeping integers exact.
func decodeObject(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, &ParseError{Token: raw, Message: "Invalid JSON", Reason: err}
	}
	if dec.More() {
		return nil, &ParseError{Token: raw, Message: "Invalid JSON"}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Token: raw, Message: "--json value must be a JSON object"}
	}
	return obj, nil
}

// InferValue applies the flag value inference rules: true/false in any case
// become booleans, then whole numbers become int64 (json.Number when they
// overflow int64), then decimals become float64, and anything else stays a
// string.
func InferValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	trimmed := strings.TrimSpace(raw)

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) {
		return json.Number(strings.TrimPrefix(trimmed, "+"))
	}

	// Non-finite values cannot be encoded in a JSON request body.
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}

	return raw
}

// FormatValue renders a value so that InferValue maps it back to the same
// type. Floats always carry a decimal point or exponent.
func FormatValue(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		s := strconv.FormatFloat(t, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return fmt.Sprintf("%v", t)
		}
		return strings.TrimSpace(buf.String())
	}
}

// Tokens renders a parameter map back into command-line tokens, keys sorted.
// Values that are true are rendered with an explicit value so that the
// output never depends on what follows it.
func Tokens(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := make([]string, 0, len(m)*2)
	for _, k := range keys {
		tokens = append(tokens, flagPrefix+k, FormatValue(m[k]))
	}
	return tokens
}
