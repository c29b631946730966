package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "does-not-exist.toml"))

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Scan)
	assert.Contains(t, cfg.Docs, "**/*.md")
	assert.Contains(t, cfg.Docs, "**/.*.md")
	assert.Contains(t, cfg.Docs, "README")
	assert.Contains(t, cfg.Src, "**/*.rs")
	assert.Contains(t, cfg.Src, "**/.*.go")
	assert.Contains(t, cfg.Src, "Makefile")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kek.toml")
	content := `scan = ["src", "docs"]

[category]
docs = ["*.md"]
src = ["*.go", "*.rs"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "docs"}, cfg.Scan)
	assert.Equal(t, []string{"*.md"}, cfg.Docs)
	assert.Equal(t, []string{"*.go", "*.rs"}, cfg.Src)
}

func TestLoadOmittedKeysGetDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kek.toml")
	content := `[category]
docs = []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)

	// Explicitly empty list stays empty; omitted keys fall back.
	assert.Empty(t, cfg.Docs)
	assert.Equal(t, DefaultSrcGlobs(), cfg.Src)
	assert.Equal(t, []string{"."}, cfg.Scan)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kek.toml")
	require.NoError(t, os.WriteFile(path, []byte("unexpected = true\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	_, err := Load(zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadRejectsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kek.toml")
	require.NoError(t, os.WriteFile(path, []byte("scan = [unterminated\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	_, err := Load(zap.NewNop())
	require.Error(t, err)
}

func TestPathHonorsEnvironment(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/custom/kek.toml")
	assert.Equal(t, "/etc/custom/kek.toml", Path())

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigFile, Path())
}

func TestDefaultGlobsIncludeHiddenVariants(t *testing.T) {
	for _, globs := range [][]string{DefaultDocsGlobs(), DefaultSrcGlobs()} {
		hidden := 0
		plain := 0
		for _, g := range globs {
			switch {
			case len(g) > 5 && g[:5] == "**/.*":
				hidden++
			case len(g) > 4 && g[:4] == "**/*":
				plain++
			}
		}
		assert.Equal(t, plain, hidden, "every extension glob needs a hidden-file variant")
	}
}
