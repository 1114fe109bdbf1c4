package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulutools/zulusetup/internal/platform"
)

// newScratch builds a scratch dir holding one extracted distribution tree.
func newScratch(t *testing.T, distName string) string {
	t.Helper()
	scratch := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(scratch, distName, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, distName, "bin", "java"), []byte("bin"), 0o755))
	return scratch
}

func TestRelocateMovesDistribution(t *testing.T) {
	base := filepath.Join(t.TempDir(), "java")
	scratch := newScratch(t, "zulu21-ca-jdk-linux_x64")

	loc, err := Relocate(scratch, Target{BaseDir: base, Scope: ScopeUser}, platform.Linux)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "zulu21-ca-jdk-linux_x64"), loc.RootDir)
	assert.Equal(t, filepath.Join(loc.RootDir, "bin", "java"), loc.ExecPath)
	assert.Equal(t, ScopeUser, loc.Scope)
	assert.False(t, loc.ReusedExisting)
	assert.FileExists(t, loc.ExecPath)

	// the extracted tree is gone from scratch space
	assert.NoDirExists(t, filepath.Join(scratch, "zulu21-ca-jdk-linux_x64"))
}

func TestRelocateReusesExistingDestination(t *testing.T) {
	base := filepath.Join(t.TempDir(), "java")

	first, err := Relocate(newScratch(t, "zulu21"), Target{BaseDir: base, Scope: ScopeUser}, platform.Linux)
	require.NoError(t, err)
	require.False(t, first.ReusedExisting)

	// mark the existing install so we can tell it was not clobbered
	marker := filepath.Join(first.RootDir, "marker")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	second, err := Relocate(newScratch(t, "zulu21"), Target{BaseDir: base, Scope: ScopeUser}, platform.Linux)
	require.NoError(t, err)
	assert.True(t, second.ReusedExisting)
	assert.Equal(t, first.RootDir, second.RootDir)
	assert.FileExists(t, marker)
}

func TestRelocateEmptyScratch(t *testing.T) {
	base := filepath.Join(t.TempDir(), "java")
	scratch := t.TempDir()
	// a stray file does not count as an extracted distribution
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "README"), []byte("x"), 0o644))

	_, err := Relocate(scratch, Target{BaseDir: base, Scope: ScopeUser}, platform.Linux)
	require.ErrorIs(t, err, ErrExtractionEmpty)
	assert.NoDirExists(t, base)
}

func TestJavaExecPathWindows(t *testing.T) {
	assert.Equal(t,
		filepath.Join("root", "bin", "java.exe"),
		javaExecPath("root", platform.Windows))
}

func TestJavaExecPathMacOSBundleLayout(t *testing.T) {
	root := t.TempDir()
	bundled := filepath.Join(root, "Contents", "Home", "bin")
	require.NoError(t, os.MkdirAll(bundled, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundled, "java"), []byte("bin"), 0o755))

	assert.Equal(t, filepath.Join(bundled, "java"), javaExecPath(root, platform.MacOS))
}
