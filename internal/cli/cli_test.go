package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/i18n"
	"github.com/reoring/gowot/internal/cli"
	"github.com/reoring/gowot/node"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestCheck_Valid(t *testing.T) {
	out, _, err := run(t, "check", "testdata/lamp.td.json", "testdata/lamp.tm.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "testdata/lamp.td.json: ok (ThingDescription, 2 properties, 1 actions, 1 events, 3 security definitions)")
	assert.Contains(t, out, "testdata/lamp.tm.yaml: ok (ThingModel, 1 properties, 0 actions, 1 events, 0 security definitions)")
}

func TestCheck_ReportsEveryIssue(t *testing.T) {
	out, errOut, err := run(t, "check", "testdata/broken.td.json", "testdata/lamp.td.json")
	require.Error(t, err)
	assert.Equal(t, "invalid documents: 1 of 2", err.Error())
	assert.Contains(t, out, "testdata/lamp.td.json: ok")
	assert.Contains(t, errOut, "testdata/broken.td.json:/securityDefinitions/s: mutually_exclusive:")
	assert.Contains(t, errOut, "testdata/broken.td.json:/actions/a/forms/0/href: required: required property missing")
}

func TestCheck_Japanese(t *testing.T) {
	_, errOut, err := run(t, "--lang", "ja-JP", "check", "testdata/broken.td.json")
	require.Error(t, err)
	assert.Contains(t, errOut, "必須プロパティが不足しています")

	assert.Equal(t, "required property missing", i18n.T("required", nil))
	_, errOut, err = run(t, "check", "testdata/broken.td.json")
	require.Error(t, err)
	assert.Contains(t, errOut, "required: required property missing")
}

func TestCheck_VerboseLogsDrops(t *testing.T) {
	_, errOut, err := run(t, "-v", "check", "testdata/lamp.td.json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "dropping unrecognised element")
	assert.Contains(t, errOut, "value=bogusOp")
	assert.False(t, gowot.Logger().Enabled(context.Background(), slog.LevelDebug))
}

func TestCheck_MaxDepth(t *testing.T) {
	_, errOut, err := run(t, "--max-depth", "2", "check", "testdata/lamp.td.json")
	require.Error(t, err)
	assert.Contains(t, errOut, "too_deep")
}

func TestFmt_KeepsDocument(t *testing.T) {
	out, _, err := run(t, "fmt", "testdata/lamp.td.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"@context\""))
	assert.Contains(t, out, "2.50")

	got, err := node.ParseJSON([]byte(out))
	require.NoError(t, err)
	want, err := node.ParseJSON(mustRead(t, "testdata/lamp.td.json"))
	require.NoError(t, err)
	assert.True(t, node.Equal(want, got))
}

func TestFmt_YAML(t *testing.T) {
	out, _, err := run(t, "fmt", "--yaml", "testdata/lamp.td.json")
	require.NoError(t, err)
	got, err := node.ParseYAML([]byte(out))
	require.NoError(t, err)
	want, err := node.ParseJSON(mustRead(t, "testdata/lamp.td.json"))
	require.NoError(t, err)
	assert.True(t, node.Equal(want, got))
}

func TestFmt_Invalid(t *testing.T) {
	_, errOut, err := run(t, "fmt", "testdata/broken.td.json")
	require.Error(t, err)
	assert.Contains(t, errOut, "mutually_exclusive")
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "schema", "testdata/lamp.td.json", "brightness")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "integer"`)
	assert.Contains(t, out, `"maximum": 100`)

	out, _, err = run(t, "schema", "testdata/lamp.td.json", "overheating", "--from", "data")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "string"`)

	_, _, err = run(t, "schema", "testdata/lamp.td.json", "toggle", "--from", "input")
	require.EqualError(t, err, `input of "toggle" not found`)

	_, _, err = run(t, "schema", "testdata/lamp.td.json", "nope")
	require.Error(t, err)
}

func TestID(t *testing.T) {
	out, _, err := run(t, "id", "-n", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "urn:uuid:"), l)
	}
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}
