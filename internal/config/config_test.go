package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("/home/u/tracker")
	assert.Equal(t, filepath.Join("/home/u/tracker", "data"), cfg.Data.Dir)
	assert.Equal(t, "tracker.db", cfg.Data.Database)
	assert.Equal(t, "$", cfg.Display.Currency)
	assert.Equal(t, filepath.Join("/home/u/tracker", "data", "tracker.db"), cfg.DatabasePath())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("/home/u/tracker")
	cfg.Display.Currency = "R"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_RequiresDataSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: $\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "data.dir and data.database are required")
}

func TestLoad_DefaultsCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data:\n  dir: /x\n  database: t.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Display.Currency)
}

func TestHome(t *testing.T) {
	t.Setenv(EnvHome, "/custom/home")
	assert.Equal(t, "/custom/home", Home())

	t.Setenv(EnvHome, "")
	assert.Equal(t, ".", Home())
}
