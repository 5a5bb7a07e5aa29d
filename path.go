package detectionformats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seismo/detectionformats/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type PathRef struct {
	parts []string
}

// Root returns the PathRef of the document root.
func Root() PathRef { return PathRef{} }

// Field appends an object key, escaping it per RFC 6901.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path as a JSON Pointer; the root renders as "/".
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p PathRef) String() string { return p.Pointer() }

// Issue creates an Issue at p whose message is produced by the i18n
// translator from code and the key/value pairs in kv. Every pair is also kept
// in Params.
func (p PathRef) Issue(code string, kv ...any) Issue {
	params := make(map[string]any, len(kv)/2)
	data := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		params[k] = kv[i+1]
		data[k] = fmt.Sprint(kv[i+1])
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}
