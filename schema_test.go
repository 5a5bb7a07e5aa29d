package detectionformats_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	df "github.com/seismo/detectionformats"
)

func TestDocumentSchema(t *testing.T) {
	s := df.DocumentSchema()
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"Type", "ID", "Source", "Hypocenter"}, s.Required)
	assert.Equal(t, "Detection", s.Properties["Type"].Const)

	gap := s.Properties["Gap"]
	require.NotNil(t, gap.Minimum)
	require.NotNil(t, gap.Maximum)
	assert.Equal(t, 0.0, *gap.Minimum)
	assert.Equal(t, 360.0, *gap.Maximum)
	assert.Nil(t, s.Properties["RMS"].Minimum)

	variants := s.Properties["Data"].Items.OneOf
	require.Len(t, variants, 3)
	var tags []any
	for _, v := range variants {
		tags = append(tags, v.Properties["Type"].Const)
	}
	assert.Equal(t, []any{"Pick", "Beam", "Correlation"}, tags)
}

func TestDocumentSchema_JSON(t *testing.T) {
	b, err := json.Marshal(df.DocumentSchema())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", m["$schema"])
	props := m["properties"].(map[string]any)
	assert.Equal(t, []any{"New", "Update", "Final", "Retract"}, props["DetectionType"].(map[string]any)["enum"])
	assert.Equal(t, 0.0, props["Bayes"].(map[string]any)["minimum"], "a zero bound is still emitted")
}
