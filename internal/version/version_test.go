package version

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfoDefaults(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, BuildTime)
	assert.NotEmpty(t, GitCommit)
}

func writeManifest(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "node_modules", "@docpress", "core")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveAppVersionFrom(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"@docpress/core","version":"1.2.3"}`)

	got, err := ResolveAppVersionFrom(root)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestResolveAppVersionFrom_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"version":"2.0.0-beta.1"}`)
	nested := filepath.Join(root, "packages", "cli", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := ResolveAppVersionFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-beta.1", got)
}

func TestResolveAppVersionFrom_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"version":"1.0.0"}`)
	pkg := filepath.Join(root, "packages", "site")
	writeManifest(t, pkg, `{"version":"1.1.0"}`)

	got, err := ResolveAppVersionFrom(pkg)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", got)
}

func TestResolveAppVersionFrom_ReadsEveryCall(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `{"version":"1.0.0"}`)

	first, err := ResolveAppVersionFrom(root)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0.1"}`), 0o644))
	second, err := ResolveAppVersionFrom(root)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", first)
	assert.Equal(t, "1.0.1", second)
}

func TestResolveAppVersionFrom_Missing(t *testing.T) {
	got, err := ResolveAppVersionFrom(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "@docpress/core/package.json")
	assert.Empty(t, got)
}

func TestResolveAppVersionFrom_Malformed(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"version":`)

	_, err := ResolveAppVersionFrom(root)
	require.Error(t, err)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestResolveAppVersion_UsesWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"version":"3.4.5"}`)
	chdirForTest(t, root)

	got, err := ResolveAppVersion()
	require.NoError(t, err)
	assert.Equal(t, "3.4.5", got)
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
