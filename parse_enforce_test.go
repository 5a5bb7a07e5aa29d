package detectionformats_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	df "github.com/seismo/detectionformats"
)

func TestParseFrom_DuplicateKey(t *testing.T) {
	in := []byte(`{"Type":"Detection","ID":"a","ID":"b"}`)

	t.Run("error", func(t *testing.T) {
		opt := df.ParseOpt{Strictness: df.Strictness{OnDuplicateKey: df.Error}}
		_, err := df.ParseFrom(t.Context(), df.JSONBytes(in), opt)
		iss, ok := df.AsIssues(err)
		require.True(t, ok, "expected Issues, got %v", err)
		require.Len(t, iss, 1)
		assert.Equal(t, df.CodeDuplicateKey, iss[0].Code)
		assert.Equal(t, "/ID", iss[0].Path)
	})

	t.Run("warn", func(t *testing.T) {
		var warned df.Issues
		opt := df.ParseOpt{
			Strictness: df.Strictness{OnDuplicateKey: df.Warn},
			IssueSink:  func(is df.Issue) { warned = append(warned, is) },
		}
		d, err := df.ParseFrom(t.Context(), df.JSONBytes(in), opt)
		require.NoError(t, err)
		assert.Equal(t, "b", *d.ID(), "last duplicate wins")
		require.Len(t, warned, 1)
		assert.Equal(t, df.CodeDuplicateKey, warned[0].Code)
	})

	t.Run("ignore", func(t *testing.T) {
		d, err := df.ParseFrom(t.Context(), df.JSONBytes(in))
		require.NoError(t, err)
		assert.Equal(t, "b", *d.ID())
	})
}

func TestParseFrom_MaxDepth(t *testing.T) {
	in := []byte(`{"Data":[{"Type":"Pick","Site":{"Station":"BMN"}}]}`)

	_, err := df.ParseFrom(t.Context(), df.JSONBytes(in), df.ParseOpt{MaxDepth: 3})
	iss, ok := df.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, df.CodeTruncated, iss[0].Code)
	assert.Equal(t, "/Data/0/Site", iss[0].Path)

	_, err = df.ParseFrom(t.Context(), df.JSONBytes(in), df.ParseOpt{MaxDepth: 4})
	require.NoError(t, err)
}

func TestParseFrom_MaxBytes(t *testing.T) {
	in := []byte(`{"Type":"Detection","ID":"12GFH48776857"}`)
	limit := df.ParseOpt{MaxBytes: 10}

	for name, input := range map[string]df.Input{
		"bytes":  df.JSONBytes(in),
		"reader": df.JSONReader(bytes.NewReader(in)),
		"yaml":   df.YAMLBytes([]byte("Type: Detection\nID: 12GFH48776857\n")),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := df.ParseFrom(t.Context(), input, limit)
			iss, ok := df.AsIssues(err)
			require.True(t, ok, "expected Issues, got %v", err)
			assert.Equal(t, df.CodeTruncated, iss[0].Code)
		})
	}

	_, err := df.ParseFrom(t.Context(), df.JSONBytes(in), df.ParseOpt{MaxBytes: int64(len(in))})
	require.NoError(t, err)
}

func TestParseFrom_MalformedInput(t *testing.T) {
	for name, in := range map[string]string{
		"truncated":     `{"Type":"Detection"`,
		"trailing data": `{"Type":"Detection"} {}`,
		"empty":         ``,
		"garbage":       `{"Type":}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := df.ParseFrom(t.Context(), df.JSONBytes([]byte(in)))
			iss, ok := df.AsIssues(err)
			require.True(t, ok, "expected Issues, got %v", err)
			assert.Equal(t, df.CodeParseError, iss[0].Code)
			assert.Error(t, iss[0].Cause)
		})
	}
}

func TestDecodeDocument_RootMustBeObject(t *testing.T) {
	_, err := df.DecodeDocument(t.Context(), df.JSONBytes([]byte(`[1,2]`)))
	iss, ok := df.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, df.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "/", iss[0].Path)
}

func TestParseFrom_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := df.ParseFrom(ctx, df.JSONBytes([]byte(detectionJSON)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamParse(t *testing.T) {
	d, err := df.StreamParse(t.Context(), strings.NewReader(detectionJSON))
	require.NoError(t, err)
	assert.True(t, d.IsValid())

	_, err = df.StreamParse(t.Context(), io.MultiReader(strings.NewReader(detectionJSON)), df.ParseOpt{MaxBytes: 64})
	iss, ok := df.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, df.CodeTruncated, iss[0].Code)
}
