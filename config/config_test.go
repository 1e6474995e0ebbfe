package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine_name: talon-dev\nlog_dir: /var/log/talon\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "talon-dev", cfg.EngineName)
	require.Equal(t, "/var/log/talon", cfg.LogDir)
	require.Equal(t, Default().Author, cfg.Author)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine_name: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
