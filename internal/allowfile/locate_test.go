package allowfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig places an allowlist config under dir/.opencode.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, ConfigDir)
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	path := filepath.Join(cfgDir, ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolateHome points the home directory at an empty temp dir so global
// candidates on the developer machine cannot leak into results.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestFindConfigFiles_AncestorWalk(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))

	topCfg := writeConfig(t, root, `{}`)
	childCfg := writeConfig(t, child, `{}`)

	found := FindConfigFiles(child, root)
	assert.Equal(t, []string{childCfg, topCfg}, found, "closest config first, walk order")
}

func TestFindConfigFiles_StopsAtBoundary(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	boundary := filepath.Join(root, "work")
	start := filepath.Join(boundary, "project")
	require.NoError(t, os.MkdirAll(start, 0o755))

	writeConfig(t, root, `{}`)
	startCfg := writeConfig(t, start, `{}`)

	found := FindConfigFiles(start, boundary)
	assert.Equal(t, []string{startCfg}, found, "configs above the boundary are not visited")
}

func TestFindConfigFiles_BoundaryConfigIncluded(t *testing.T) {
	isolateHome(t)
	boundary := t.TempDir()
	start := filepath.Join(boundary, "nested")
	require.NoError(t, os.MkdirAll(start, 0o755))

	boundaryCfg := writeConfig(t, boundary, `{}`)

	found := FindConfigFiles(start, boundary)
	assert.Equal(t, []string{boundaryCfg}, found)
}

func TestFindConfigFiles_RootTerminationWithoutBoundary(t *testing.T) {
	isolateHome(t)
	start := t.TempDir()

	// Boundary is not an ancestor of start: the walk must still terminate
	// at the filesystem root.
	found := FindConfigFiles(start, filepath.Join(t.TempDir(), "elsewhere"))
	assert.Empty(t, found)
}

func TestFindConfigFiles_GlobalCandidatesFirst(t *testing.T) {
	home := isolateHome(t)
	start := t.TempDir()

	globalPath := filepath.Join(home, ".config", "opencode", ConfigName)
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte(`{}`), 0o644))

	sharePath := filepath.Join(home, ".local", "share", "opencode", "config", ConfigName)
	require.NoError(t, os.MkdirAll(filepath.Dir(sharePath), 0o755))
	require.NoError(t, os.WriteFile(sharePath, []byte(`{}`), 0o644))

	localCfg := writeConfig(t, start, `{}`)

	found := FindConfigFiles(start, start)
	assert.Equal(t, []string{globalPath, sharePath, localCfg}, found)
}

func TestFindConfigFiles_NoMatches(t *testing.T) {
	isolateHome(t)
	start := t.TempDir()
	assert.Empty(t, FindConfigFiles(start, start), "zero matches is a normal result")
}

func TestFindConfigFiles_EmptyStartDir(t *testing.T) {
	isolateHome(t)
	assert.Empty(t, FindConfigFiles("", ""))
}
