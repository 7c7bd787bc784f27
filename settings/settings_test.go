package settings

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppad.toml")
	require.NoError(t, SaveDefault(path))
	assert.Error(t, SaveDefault(path))

	s, err := Load(path)
	require.NoError(t, err)
	assertDefaults(t, s)
}

func assertDefaults(t *testing.T, s Settings) {
	t.Helper()
	def := DefaultSettings()
	assert.Equal(t, def.Storage, s.Storage)
	assert.Equal(t, def.Rules, s.Rules)
	assert.Equal(t, def.Messages, s.Messages)
	assert.Equal(t, def.Sentry, s.Sentry)
	assert.Equal(t, def.Debug, s.Debug)
	assert.Empty(t, s.Operators)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppad.toml")
	require.NoError(t, os.WriteFile(path, []byte("operators = [\"Steve\"]\n\n[storage]\npath = \"pads/all.yaml\"\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Steve"}, s.Operators)
	assert.Equal(t, "pads/all.yaml", s.Storage.Path)
	assert.Equal(t, "rules", s.Rules.Command)
	assert.Equal(t, DefaultSettings().Messages, s.Messages)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppad.toml")
	s, err := LoadOrCreate(path)
	require.NoError(t, err)
	assertDefaults(t, s)
	assert.FileExists(t, path)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppad.toml")
	require.NoError(t, SaveDefault(path))

	reloaded := make(chan Settings, 4)
	w, err := Watch(slog.New(slog.NewTextHandler(io.Discard, nil)), path, func(s Settings) {
		reloaded <- s
	})
	require.NoError(t, err)
	defer w.Close()

	s := DefaultSettings()
	s.Operators = []string{"Alex"}
	data, err := toml.Marshal(s)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	select {
	case got := <-reloaded:
		assert.Equal(t, []string{"Alex"}, got.Operators)
	case <-time.After(5 * time.Second):
		t.Fatal("settings were not reloaded")
	}
}
