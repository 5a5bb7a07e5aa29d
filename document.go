package detectionformats

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Document is the untyped tree form of a message: objects are
// map[string]any, arrays []any, numbers json.Number or any Go numeric type.
type Document = map[string]any

// fieldReader walks one object of a document. Absent and null keys yield
// nil; a present value of the wrong shape records a decode failure. The
// first failure sticks and turns every later lookup into a no-op.
type fieldReader struct {
	doc   Document
	path  PathRef
	class string
	err   error
}

func newFieldReader(doc Document, path PathRef, class string) *fieldReader {
	return &fieldReader{doc: doc, path: path, class: class}
}

func (r *fieldReader) lookup(key string) (any, bool) {
	if r.err != nil || r.doc == nil {
		return nil, false
	}
	v, ok := r.doc[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) fail(key, expected string) {
	r.failIssue(r.path.Field(key).Issue(CodeInvalidType, "field", key, "class", r.class, "expected", expected))
}

func (r *fieldReader) adopt(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) failIssue(is Issue) {
	if r.err == nil {
		r.err = Issues{is}
	}
}

func (r *fieldReader) str(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "string")
		return nil
	}
	return &s
}

// stringish is str for identifiers that may arrive as bare scalars: numbers
// and booleans are rendered in their canonical text form.
func (r *fieldReader) stringish(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case uint64:
		s = strconv.FormatUint(t, 10)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			r.fail(key, "string")
			return nil
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		r.fail(key, "string")
		return nil
	}
	return &s
}

// text is str for fields whose absence is represented by the empty string.
func (r *fieldReader) text(key string) string {
	if s := r.str(key); s != nil {
		return *s
	}
	return ""
}

func (r *fieldReader) num(key string) *float64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		r.fail(key, "number")
		return nil
	}
	return &f
}

func (r *fieldReader) time(key string) *time.Time {
	s := r.str(key)
	if s == nil {
		return nil
	}
	t, err := parseISO8601(*s)
	if err != nil {
		is := r.path.Field(key).Issue(CodeInvalidFormat, "field", key, "class", r.class)
		is.Cause = err
		r.failIssue(is)
		return nil
	}
	return &t
}

func (r *fieldReader) object(key string) Document {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		r.fail(key, "object")
		return nil
	}
	return m
}

// array reports whether key holds an array; an absent key is (nil, false).
func (r *fieldReader) array(key string) ([]any, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	if !ok {
		r.fail(key, "array")
		return nil, false
	}
	return a, true
}

// nested parses the object at key with fn, propagating its decode failure.
func nested[T any](r *fieldReader, key string, fn func(Document, PathRef) (*T, error)) *T {
	m := r.object(key)
	if m == nil {
		return nil
	}
	v, err := fn(m, r.path.Field(key))
	if err != nil {
		r.adopt(err)
		return nil
	}
	return v
}

// objects decodes the array at key element by element with fn. A non-object
// element is a decode failure.
func objects[T any](r *fieldReader, key, class string, fn func(*fieldReader) T) []T {
	items, ok := r.array(key)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for i, it := range items {
		p := r.path.Field(key).Index(i)
		m, ok := it.(map[string]any)
		if !ok {
			r.failIssue(p.Issue(CodeInvalidType, "field", key, "class", r.class, "expected", "object"))
			return nil
		}
		er := newFieldReader(m, p, class)
		v := fn(er)
		if er.err != nil {
			r.adopt(er.err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// toFloat coerces a numeric scalar. NaN and the infinities are rejected so
// that every accepted value can be rendered as JSON.
func toFloat(v any) (float64, bool) {
	f, ok := numeric(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// fieldWriter accumulates an output document, skipping absent values.
type fieldWriter Document

func (w fieldWriter) str(key string, v *string) {
	if v != nil {
		w[key] = *v
	}
}

func (w fieldWriter) text(key, v string) {
	if v != "" {
		w[key] = v
	}
}

func (w fieldWriter) num(key string, v *float64) {
	if v != nil {
		w[key] = *v
	}
}

func (w fieldWriter) time(key string, v *time.Time) {
	if v != nil {
		w[key] = formatISO8601(*v)
	}
}

func (w fieldWriter) doc(key string, r interface{ ToDocument() Document }, present bool) {
	if present {
		w[key] = r.ToDocument()
	}
}

// Float returns a pointer to v, for populating optional numeric fields.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for populating optional string fields.
func String(v string) *string { return &v }

// Time returns a pointer to v, for populating time fields.
func Time(v time.Time) *time.Time { return &v }
