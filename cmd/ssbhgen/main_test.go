package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bindingsDir  = "../../bindings"
	registryPath = bindingsDir + "/registry.yaml"
)

var families = []string{"adj_data", "modl_data", "skel_data", "mesh_data", "meshex_data", "matl_data"}

// run executes the root command with args and returns its log output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

// squash drops all whitespace so that alignment differences do not matter.
func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--registry", registryPath, "-v")
	require.NoError(t, err, out)

	assert.Contains(t, out, "level=DEBUG msg=\"loaded registry\"")
	assert.Contains(t, out, "msg=\"registry is valid\" families=6")
}

func TestMappy_UpToDate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "mappy", "--registry", registryPath, "--out", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "zz_generated.mappy.go")

	got, err := os.ReadFile(filepath.Join(dir, "zz_generated.mappy.go"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(bindingsDir, "zz_generated.mappy.go"))
	require.NoError(t, err)

	assert.Equal(t, squash(string(want)), squash(string(got)), "bindings/zz_generated.mappy.go is stale, run go generate ./bindings")
}

func TestStubs_UpToDate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "stubs", "--registry", registryPath, "-o", dir)
	require.NoError(t, err, out)

	for _, name := range families {
		got, err := os.ReadFile(filepath.Join(dir, name+".pyi"))
		require.NoError(t, err)

		want, err := os.ReadFile(filepath.Join(bindingsDir, "stubs", name+".pyi"))
		require.NoError(t, err)

		assert.Equal(t, string(want), string(got), name)
	}
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "schema", "--registry", registryPath, "--out", dir)
	require.NoError(t, err, out)

	for _, name := range families {
		data, err := os.ReadFile(filepath.Join(dir, name+".schema.json"))
		require.NoError(t, err)

		var doc struct {
			Title string         `json:"title"`
			Defs  map[string]any `json:"$defs"`
		}
		require.NoError(t, json.Unmarshal(data, &doc), name)
		assert.True(t, strings.HasPrefix(doc.Title, "ssbh_data_py."+name+"."), doc.Title)
		assert.NotEmpty(t, doc.Defs, name)
	}
}

func TestInvalidRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
families:
  - name: adj_data
    package: ssbh-bindings/ssbhdata/adj
    root: Missing
    types:
      - name: Missing
`), 0o644))

	out, err := run(t, "check", "--registry", path)
	require.ErrorIs(t, err, ErrInvalidRegistry)
	assert.Contains(t, out, "level=ERROR")

	_, err = run(t, "mappy", "extra")
	assert.Error(t, err)
}

func TestMissingRegistry(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	for _, args := range [][]string{
		{"check"},
		{"mappy", "--out", t.TempDir()},
		{"stubs", "--out", t.TempDir()},
		{"schema", "--out", t.TempDir()},
	} {
		sub := args[0]
		out, err := run(t, append(args, "--registry", missing)...)
		require.ErrorIs(t, err, os.ErrNotExist, sub)
		assert.Contains(t, out, "Error: ", sub)
		assert.Contains(t, out, "missing.yaml", sub)
	}
}
