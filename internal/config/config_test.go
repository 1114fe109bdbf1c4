package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("ZULUSETUP_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.JDKVersion)
	assert.Empty(t, cfg.APIBase)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("ZULUSETUP_HOME", t.TempDir())

	require.NoError(t, Save(&Config{JDKVersion: 17, APIBase: "https://mirror.example/metadata/v1"}))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.JDKVersion)
	assert.Equal(t, "https://mirror.example/metadata/v1", cfg.APIBase)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ZULUSETUP_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("jdk_version = ["), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestHomePrecedence(t *testing.T) {
	t.Setenv("ZULUSETUP_HOME", "/from-env")
	assert.Equal(t, "/from-env", Home())

	SetConfigDir("/from-flag")
	t.Cleanup(func() { SetConfigDir("") })
	assert.Equal(t, "/from-flag", Home())
}
