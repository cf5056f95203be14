package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// parseTemplate compiles a user template with the sprig function map.
func parseTemplate(src string) (*template.Template, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("--template is required with --output %s", OutputFormatTemplate)
	}

	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid output template: %w", err)
	}
	return tmpl, nil
}

// writeJSON prints a response body indented, in the order the server sent it.
func writeJSON(w io.Writer, raw json.RawMessage) error {
	_, err := fmt.Fprintln(w, indentJSON(orNull(raw)))
	return err
}

// writeYAML converts a JSON response body to YAML. Going through yaml.Node
// keeps the key order of the response; the JSON flow and quoting styles are
// dropped so the result reads as block YAML.
func writeYAML(w io.Writer, raw json.RawMessage) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(orNull(raw), &doc); err != nil {
		return fmt.Errorf("failed to convert response to YAML: %w", err)
	}
	resetStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to convert response to YAML: %w", err)
	}
	return enc.Close()
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}

// writeTemplate executes tmpl against the decoded response body.
func writeTemplate(w io.Writer, tmpl *template.Template, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(orNull(raw)))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("failed to decode response for template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render output template: %w", err)
	}
	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
