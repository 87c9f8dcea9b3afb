package humps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v2"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat guesses the format from a file name. Anything that is not
// YAML is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	}
	return FormatJSON
}

// ParseFormat validates a --format value. An empty name yields "".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", usageError("use json or yaml", "unknown format %q", name)
}

// Document is a parsed JSON or YAML payload whose keys can be rewritten
// without losing their order.
type Document struct {
	format Format

	// JSON documents keep their parser alive since values reference its
	// buffers.
	parser *fastjson.Parser
	arena  *fastjson.Arena
	json   *fastjson.Value

	yaml any
}

// ParseDocument parses data as format.
func ParseDocument(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML:
		v, err := parseYAML(data)
		if err != nil {
			return nil, err
		}
		return &Document{format: FormatYAML, yaml: v}, nil
	case FormatJSON, "":
		p, v, err := parseJSON(data)
		if err != nil {
			return nil, err
		}
		return &Document{format: FormatJSON, parser: p, json: v}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// parseYAML decodes mappings as yaml.MapSlice so that key order survives.
// A sequence root keeps its order only when every item is a mapping.
func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	switch val := v.(type) {
	case map[any]any:
		var ms yaml.MapSlice
		if err := yaml.Unmarshal(data, &ms); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return ms, nil
	case []any:
		for _, item := range val {
			if _, ok := item.(map[any]any); !ok {
				return v, nil
			}
		}
		var items []yaml.MapSlice
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		seq := make([]any, len(items))
		for i, item := range items {
			seq[i] = item
		}
		return seq, nil
	}
	return v, nil
}

// Format returns the document encoding.
func (d *Document) Format() Format {
	return d.format
}

// ConvertKeys returns a new document with every key rewritten by conv.
func (d *Document) ConvertKeys(conv Converter, opts *Options) *Document {
	kp := newKeyProcessor(conv, opts)
	if d.format == FormatYAML {
		return &Document{format: FormatYAML, yaml: kp.walk(d.yaml)}
	}
	w := &jsonWalker{arena: new(fastjson.Arena), keys: kp}
	return &Document{
		format: FormatJSON,
		parser: d.parser,
		arena:  w.arena,
		json:   w.walk(d.json),
	}
}

// Keys lists every mapping key in document order, including duplicates.
func (d *Document) Keys() []string {
	return d.keys(nil)
}

// ConvertibleKeys is like Keys but skips the values of keys preserved by
// opts, since the key converters leave those untouched.
func (d *Document) ConvertibleKeys(opts *Options) []string {
	return d.keys(opts.preserve())
}

func (d *Document) keys(skip map[string]bool) []string {
	if d.format == FormatYAML {
		return yamlKeys(d.yaml, skip, nil)
	}
	return jsonKeys(d.json, skip, nil)
}

// Marshal encodes the document, indenting JSON by two spaces.
func (d *Document) Marshal() ([]byte, error) {
	if d.format == FormatYAML {
		b, err := yaml.Marshal(d.yaml)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return b, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.compact(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) compact() []byte {
	return d.json.MarshalTo(nil)
}

func yamlKeys(v any, skip map[string]bool, keys []string) []string {
	switch val := v.(type) {
	case yaml.MapSlice:
		for _, item := range val {
			s, ok := item.Key.(string)
			if ok {
				keys = append(keys, s)
			}
			if !ok || !skip[s] {
				keys = yamlKeys(item.Value, skip, keys)
			}
		}
	case map[any]any:
		for k, child := range val {
			s, ok := k.(string)
			if ok {
				keys = append(keys, s)
			}
			if !ok || !skip[s] {
				keys = yamlKeys(child, skip, keys)
			}
		}
	case []any:
		for _, child := range val {
			keys = yamlKeys(child, skip, keys)
		}
	}
	return keys
}
