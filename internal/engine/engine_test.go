package engine_test

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/seismo/detectionformats/internal/engine"
	"github.com/seismo/detectionformats/internal/gojson"
)

func TestDecodeTree_Shapes(t *testing.T) {
	v, err := eng.DecodeTree(gojson.NewBytes([]byte(`{"a":[1,"x",true,null],"b":{},"c":[]}`)))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{json.Number("1"), "x", true, nil}, m["a"])
	assert.Equal(t, map[string]any{}, m["b"])
	// empty arrays stay non-nil so "present but empty" survives decoding
	assert.NotNil(t, m["c"])
	assert.Empty(t, m["c"])
}

func TestDecodeTree_Truncated(t *testing.T) {
	_, err := eng.DecodeTree(gojson.NewBytes([]byte(`{"a":[1,2`)))
	require.Error(t, err)
}

func TestDecodeTree_TrailingData(t *testing.T) {
	_, err := eng.DecodeTree(gojson.NewBytes([]byte(`{} {}`)))
	assert.ErrorIs(t, err, eng.ErrTrailingData)
}

func TestDecodeTree_Empty(t *testing.T) {
	_, err := eng.DecodeTree(gojson.NewBytes(nil))
	assert.ErrorIs(t, err, io.EOF)
}

func TestEnforce_DuplicateKey(t *testing.T) {
	in := []byte(`{"Data":[{"Type":"Pick","Type":"Beam"}]}`)

	t.Run("error", func(t *testing.T) {
		src := eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{OnDuplicate: eng.DupError})
		_, err := eng.DecodeTree(src)
		var ie eng.IssueError
		require.True(t, errors.As(err, &ie), "got %v", err)
		assert.Equal(t, "duplicate_key", ie.Code)
		assert.Equal(t, "/Data/0/Type", ie.Path)
	})

	t.Run("warn", func(t *testing.T) {
		var got []eng.SimpleIssue
		src := eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{
			OnDuplicate: eng.DupWarn,
			IssueSink:   func(si eng.SimpleIssue) { got = append(got, si) },
		})
		v, err := eng.DecodeTree(src)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "/Data/0/Type", got[0].Path)

		elem := v.(map[string]any)["Data"].([]any)[0].(map[string]any)
		assert.Equal(t, "Beam", elem["Type"])
	})

	t.Run("ignore", func(t *testing.T) {
		_, err := eng.DecodeTree(eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{}))
		assert.NoError(t, err)
	})
}

func TestEnforce_MaxDepth(t *testing.T) {
	in := []byte(`{"Hypocenter":{"Nested":{"Deeper":{}}}}`)

	_, err := eng.DecodeTree(eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{MaxDepth: 3}))
	var ie eng.IssueError
	require.True(t, errors.As(err, &ie), "got %v", err)
	assert.Equal(t, "truncated", ie.Code)
	assert.Equal(t, "/Hypocenter/Nested/Deeper", ie.Path)

	_, err = eng.DecodeTree(eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{MaxDepth: 4}))
	assert.NoError(t, err)
}

func TestEnforce_PathEscaping(t *testing.T) {
	in := []byte(`{"a/b":{"x~y":1,"x~y":2}}`)
	_, err := eng.DecodeTree(eng.WrapWithEnforcement(gojson.NewBytes(in), eng.EnforceOptions{OnDuplicate: eng.DupError}))
	var ie eng.IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "/a~1b/x~0y", ie.Path)
}
