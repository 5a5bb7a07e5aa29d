package detectionformats

import (
	"context"
	"errors"
	"io"

	"github.com/seismo/detectionformats/i18n"
	eng "github.com/seismo/detectionformats/internal/engine"
)

// DecodeDocument decodes in into a document tree without building a
// Detection. The root must be an object.
func DecodeDocument(ctx context.Context, in Input, opts ...ParseOpt) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, singleIssue(CodeParseError, "nil input")
	}
	v, err := in.decode(lastOpt(opts))
	if err != nil {
		return nil, toIssues(err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{Root().Issue(CodeInvalidType, "field", "document", "class", TypeDetection, "expected", "object")}
	}
	return m, nil
}

// ParseFrom is the primary byte-level entry point: it decodes in, applying
// the enforcement in opts, and builds a Detection. It does not validate.
func ParseFrom(ctx context.Context, in Input, opts ...ParseOpt) (*Detection, error) {
	doc, err := DecodeDocument(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	return parseDetection(doc, lastOpt(opts).IssueSink)
}

// StreamParse parses a JSON Detection read from r. When MaxBytes is set no
// more than MaxBytes+1 bytes are read.
func StreamParse(ctx context.Context, r io.Reader, opts ...ParseOpt) (*Detection, error) {
	return ParseFrom(ctx, JSONReader(r), opts...)
}

// ---- error mapping ----

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		is := engineIssue(ie.SimpleIssue)
		is.Cause = err
		return Issues{is}
	}
	is := Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}
	if errors.Is(err, io.EOF) {
		is.Cause = io.ErrUnexpectedEOF
	}
	return Issues{is}
}

func engineIssue(si eng.SimpleIssue) Issue {
	return Issue{
		Path:    si.Path,
		Code:    si.Code,
		Message: i18n.T(si.Code, nil),
		Params:  map[string]any{"detail": si.Message},
	}
}

func singleIssue(code, detail string) Issues {
	return Issues{{Path: "/", Code: code, Message: i18n.T(code, nil), Params: map[string]any{"detail": detail}}}
}
