package pad

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "jumppads.yaml"))
	pads, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, pads)
}

func TestStoreSaveLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "data", "jumppads.yaml"))

	a := testPad("spawn", mgl64.Vec3{10.5, 64, -3.25})
	a.Yaw = 90
	b := testPad("arena", mgl64.Vec3{-100, 70, 8})
	b.Velocity = mgl64.Vec3{-1.25, 2, 0.75}
	require.NoError(t, s.Save([]JumpPad{a, b}))

	pads, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []JumpPad{a, b}, pads)

	_, err = os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppads.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jump_pads: [name: {"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreInvalidOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumppads.yaml")
	data := "jump_pads:\n  - name: spawn\n    position: [0, 64, 0]\n    velocity: [0, 1, 0]\n    owner: not-a-uuid\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "spawn")
}
