package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), ".punchclockrc"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".punchclockrc")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".punchclockrc")
	want := Config{DataDir: filepath.Join(t.TempDir(), "sync", "punchclock"), DefaultAccount: "0053629"}

	require.NoError(t, want.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_ExpandsHomeInDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".punchclockrc")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir": "~/sync/punchclock"}`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sync", "punchclock"), c.DataDir)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	rcDir := filepath.Join(t.TempDir(), "from-rc")
	envDir := filepath.Join(t.TempDir(), "from-env")

	t.Setenv(EnvDataDir, envDir)
	dir, err := Config{DataDir: rcDir}.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, envDir, dir, "environment beats the runcontrol file")

	t.Setenv(EnvDataDir, "")
	dir, err = Config{DataDir: rcDir}.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, rcDir, dir)

	dir, err = Config{}.ResolveDataDir()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".punchclock"), dir)
}
