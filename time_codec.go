package detectionformats

import (
	"context"
	"time"
)

// ISO8601Layout is the canonical time rendering of the document format:
// UTC with millisecond precision.
const ISO8601Layout = "2006-01-02T15:04:05.000Z"

// TimeISO8601 returns a Codec that converts between ISO8601 strings and
// time.Time. Decoding accepts any RFC3339 input; encoding always produces
// ISO8601Layout.
func TimeISO8601() Codec[string, time.Time] { return iso8601Codec{} }

type iso8601Codec struct{}

func (iso8601Codec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := parseISO8601(a)
	if err != nil {
		return time.Time{}, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "invalid ISO8601 time", Cause: err}}
	}
	return t, nil
}

func (iso8601Codec) Encode(ctx context.Context, b time.Time) (string, error) {
	return formatISO8601(b), nil
}

func parseISO8601(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2.UTC(), nil
		}
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func formatISO8601(t time.Time) string { return t.UTC().Format(ISO8601Layout) }
