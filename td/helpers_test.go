package td_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

func obj(t *testing.T, s string) *node.Object {
	t.Helper()
	n, err := node.ParseJSON([]byte(s))
	require.NoError(t, err)
	o, ok := n.(*node.Object)
	require.True(t, ok)
	return o
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

// requireIssue asserts that err carries an issue with code at path.
func requireIssue(t *testing.T, err error, path, code string) {
	t.Helper()
	require.Error(t, err)
	iss, ok := gowot.AsIssues(err)
	require.True(t, ok, "not Issues: %v", err)
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return
		}
	}
	t.Fatalf("no %s issue at %s in %v", code, path, iss)
}
