package cli

import (
	"bytes"

	"github.com/goccy/go-json"
)

// marshalIndent renders v as indented JSON with a trailing newline.
// Self-referential types such as jsonschema.Schema must not go through
// goccy's MarshalIndent.
func marshalIndent(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
