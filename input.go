package detectionformats

import (
	"bytes"
	"io"

	eng "github.com/seismo/detectionformats/internal/engine"
	"github.com/seismo/detectionformats/internal/gojson"
)

// Input is an encoded document accepted by ParseFrom and DecodeDocument.
// It is built with JSONBytes, JSONReader or YAMLBytes.
type Input interface {
	decode(opt ParseOpt) (any, error)
}

type jsonInput struct {
	r io.Reader
	n int64 // known length, -1 for streams
}

type yamlInput struct{ b []byte }

// JSONBytes wraps a byte slice as a JSON Input.
func JSONBytes(b []byte) Input { return jsonInput{r: bytes.NewReader(b), n: int64(len(b))} }

// JSONReader wraps an io.Reader as a JSON Input. The reader is consumed by
// the first decode.
func JSONReader(r io.Reader) Input { return jsonInput{r: r, n: -1} }

// YAMLBytes wraps a byte slice as a YAML Input.
func YAMLBytes(b []byte) Input { return yamlInput{b: b} }

func (in jsonInput) decode(opt ParseOpt) (any, error) {
	var src eng.TokenSource
	switch {
	case opt.MaxBytes <= 0:
		src = gojson.NewReader(in.r)
	case in.n >= 0:
		if in.n > opt.MaxBytes {
			return nil, errMaxBytes()
		}
		src = gojson.NewReader(in.r)
	default:
		data, err := io.ReadAll(io.LimitReader(in.r, opt.MaxBytes+1))
		if err != nil {
			return nil, err
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, errMaxBytes()
		}
		src = gojson.NewBytes(data)
	}
	return eng.DecodeTree(enforce(src, opt))
}

func (in yamlInput) decode(opt ParseOpt) (any, error) {
	if opt.MaxBytes > 0 && int64(len(in.b)) > opt.MaxBytes {
		return nil, errMaxBytes()
	}
	return decodeYAML(in.b, opt)
}

func enforce(src eng.TokenSource, opt ParseOpt) eng.TokenSource {
	var forward func(eng.SimpleIssue)
	if opt.IssueSink != nil {
		forward = func(si eng.SimpleIssue) { opt.IssueSink(engineIssue(si)) }
	}
	return eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   forward,
	})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func errMaxBytes() error {
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded"}}
}
