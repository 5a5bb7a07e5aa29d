package detectionformats

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. Decode failures use the first group, semantic violations the
// second.
const (
	CodeInvalidType  = "invalid_type"
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"

	CodeRequired       = "required"
	CodeEmpty          = "empty"
	CodeWrongType      = "wrong_type"
	CodeInvalidNested  = "invalid_nested"
	CodeInvalidEnum    = "invalid_enum"
	CodeTooSmall       = "too_small"
	CodeOutOfRange     = "out_of_range"
	CodeInvalidElement = "invalid_element"
	CodeInvalidFormat  = "invalid_format"

	// CodeDataDropped reports a Data element that was skipped during parsing.
	// It is only ever delivered to ParseOpt.IssueSink.
	CodeDataDropped = "data_dropped"
)

// Issue represents a single decode failure or validation violation.
type Issue struct {
	Path    string // JSON Pointer (for example: /Data/2/Site).
	Code    string
	Message string
	// Params carries structured parameters (e.g. {"min":0,"max":360}).
	Params map[string]any
	Cause  error
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Messages returns the human-readable message of every issue, in order.
func (iss Issues) Messages() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Message)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
