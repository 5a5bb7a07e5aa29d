package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/seismo/detectionformats/i18n"
	"github.com/seismo/detectionformats/internal/cli"
)

const validDoc = `{
  "Type": "Detection", "ID": "12GFH48776857",
  "Source": {"AgencyID": "US", "Author": "TestAuthor"},
  "Hypocenter": {"Latitude": 40.3344, "Longitude": -121.44, "Time": "2015-12-28T21:32:24.017Z", "Depth": 32.44},
  "Gap": 33.67,
  "Data": [
    {"Type": "Origin", "ID": "dropped"},
    {"Type": "Pick", "ID": "p1", "Site": {"Station": "BMN", "Network": "LB"},
     "Source": {"AgencyID": "US", "Author": "TestAuthor"}, "Time": "2015-12-28T21:32:24.017Z"}
  ]
}`

const invalidDoc = `{"Type":"Detection","ID":"","Gap":400}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { i18n.SetLanguage("en") })
	var out, errOut bytes.Buffer
	cmd := cli.RootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_ValidFile(t *testing.T) {
	p := writeFile(t, "ok.json", validDoc)
	stdout, stderr, err := run(t, "validate", p)
	require.NoError(t, err)
	assert.Equal(t, p+": OK\n", stdout)
	assert.Contains(t, stderr, "Data element dropped")
	assert.Contains(t, stderr, "level=warning")
}

func TestValidate_InvalidFileFails(t *testing.T) {
	ok := writeFile(t, "ok.json", validDoc)
	bad := writeFile(t, "bad.json", invalidDoc)

	stdout, _, err := run(t, "validate", ok, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed validation")
	assert.Contains(t, stdout, bad+": INVALID")
	assert.Contains(t, stdout, "  /ID: Empty ID in Detection Class.")
	assert.Contains(t, stdout, "  /Gap: Gap in Detection Class not in the range of 0 to 360.")
}

func TestValidate_DecodeFailure(t *testing.T) {
	p := writeFile(t, "broken.json", `{"Bayes":"x"}`)
	stdout, stderr, err := run(t, "validate", p)
	require.Error(t, err)
	assert.Contains(t, stdout, p+": ERROR")
	assert.Contains(t, stdout, "/Bayes")
	assert.Contains(t, stderr, "decode failed")
}

func TestValidate_MissingFile(t *testing.T) {
	stdout, _, err := run(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, stdout, "ERROR")
}

func TestValidate_JSONOutput(t *testing.T) {
	bad := writeFile(t, "bad.json", invalidDoc)
	stdout, _, err := run(t, "validate", "--output", "json", bad)
	require.Error(t, err)

	var results []struct {
		File   string `json:"file"`
		Valid  bool   `json:"valid"`
		Issues []struct {
			Path string `json:"path"`
			Code string `json:"code"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	var got [][2]string
	for _, is := range results[0].Issues {
		got = append(got, [2]string{is.Path, is.Code})
	}
	assert.Equal(t, [][2]string{
		{"/ID", "empty"},
		{"/Source", "required"},
		{"/Hypocenter", "required"},
		{"/Gap", "out_of_range"},
	}, got)
}

func TestValidate_DuplicateKeysFromEnvironment(t *testing.T) {
	p := writeFile(t, "dup.json", `{"Type":"Detection","ID":"a","ID":"b"}`)

	_, stderr, err := run(t, "validate", p)
	require.Error(t, err, "still invalid, but decodes")
	assert.Contains(t, stderr, "duplicate key")

	t.Setenv("DETECTIONFORMATS_DUPLICATE_KEYS", "error")
	stdout, _, err := run(t, "validate", p)
	require.Error(t, err)
	assert.Contains(t, stdout, p+": ERROR")
}

func TestValidate_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "output: json\nlang: ja\nlog_format: json\n")
	bad := writeFile(t, "bad.json", invalidDoc)

	stdout, _, err := run(t, "--config", cfg, "validate", bad)
	require.Error(t, err)
	assert.True(t, json.Valid([]byte(stdout)), stdout)
	assert.NotContains(t, stdout, "Empty ID in Detection Class.")
}

func TestValidate_BadConfigValue(t *testing.T) {
	p := writeFile(t, "ok.json", validDoc)
	_, _, err := run(t, "--format", "xml", "validate", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestValidate_YAMLByExtension(t *testing.T) {
	p := writeFile(t, "ok.yaml", "Type: Detection\nID: x\nSource: {AgencyID: US, Author: A}\n"+
		"Hypocenter: {Latitude: 1, Longitude: 2, Depth: 3, Time: '2015-12-28T21:32:24.017Z'}\n")
	stdout, _, err := run(t, "validate", p)
	require.NoError(t, err)
	assert.Equal(t, p+": OK\n", stdout)
}

func TestConvert_JSON(t *testing.T) {
	p := writeFile(t, "ok.json", validDoc)
	stdout, _, err := run(t, "convert", p, "--to", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	data := doc["Data"].([]any)
	require.Len(t, data, 1, "unknown elements are dropped")
	assert.Equal(t, "Pick", data[0].(map[string]any)["Type"])
}

func TestConvert_YAML(t *testing.T) {
	p := writeFile(t, "ok.json", validDoc)
	stdout, _, err := run(t, "convert", p, "--to", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "Detection", doc["Type"])
	assert.Equal(t, "2015-12-28T21:32:24.017Z", doc["Hypocenter"].(map[string]any)["Time"])
}

func TestConvert_UnsupportedTarget(t *testing.T) {
	p := writeFile(t, "ok.json", validDoc)
	_, _, err := run(t, "convert", p, "--to", "xml")
	require.Error(t, err)
}

// runWithin is run with a deadline, so a command that never returns fails the
// test instead of hanging it.
func runWithin(t *testing.T, d time.Duration, args ...string) (stdout string, err error) {
	t.Helper()
	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, _, err := run(t, args...)
		done <- result{out, err}
	}()
	select {
	case r := <-done:
		return r.out, r.err
	case <-time.After(d):
		t.Fatalf("%v did not finish within %s", args, d)
		return "", nil
	}
}

func TestSchema(t *testing.T) {
	stdout, err := runWithin(t, 10*time.Second, "schema")
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	assert.Equal(t, "Detection", s["title"])
	assert.Contains(t, s["required"], "Hypocenter")
	assert.Contains(t, stdout, "\n  \"$schema\"", "output is indented")

	data := s["properties"].(map[string]any)["Data"].(map[string]any)
	variants := data["items"].(map[string]any)["oneOf"].([]any)
	assert.Len(t, variants, 3)
}
