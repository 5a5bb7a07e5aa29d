package detectionformats

import (
	"context"
	"strconv"
	"time"

	eng "github.com/seismo/detectionformats/internal/engine"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML rendering of a Detection document.
func ParseYAML(ctx context.Context, b []byte, opts ...ParseOpt) (*Detection, error) {
	return ParseFrom(ctx, YAMLBytes(b), opts...)
}

// MarshalYAML renders the canonical document, so yaml.Marshal(d) produces
// the same tree as the JSON form.
func (d *Detection) MarshalYAML() (any, error) { return d.ToDocument(), nil }

// decodeYAML decodes a single YAML document into the JSON-shaped tree the
// rest of the package works with. yaml.v3 itself rejects duplicate mapping
// keys.
func decodeYAML(b []byte, opt ParseOpt) (any, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, singleIssue(CodeParseError, "empty YAML document")
	}
	v := yamlNormalizeValue(node)
	if opt.MaxDepth > 0 {
		if p, ok := exceedsDepth(v, "", 1, opt.MaxDepth); ok {
			return nil, eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: CodeTruncated, Path: p, Message: "max depth exceeded"}}
		}
	}
	return v, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-string keys
// are rendered with their YAML scalar text.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[yamlKey(k)] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return ""
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	case time.Time:
		return formatISO8601(t)
	default:
		return v
	}
}

// exceedsDepth reports the path of the first container nested deeper than
// max, counting the root container as depth 1.
func exceedsDepth(v any, path string, depth, max int) (string, bool) {
	switch t := v.(type) {
	case map[string]any:
		if depth > max {
			return normalizePointer(path), true
		}
		for k, vv := range t {
			if p, ok := exceedsDepth(vv, path+"/"+Root().Field(k).Pointer()[1:], depth+1, max); ok {
				return p, true
			}
		}
	case []any:
		if depth > max {
			return normalizePointer(path), true
		}
		for i, vv := range t {
			if p, ok := exceedsDepth(vv, path+"/"+strconv.Itoa(i), depth+1, max); ok {
				return p, true
			}
		}
	}
	return "", false
}

func normalizePointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
