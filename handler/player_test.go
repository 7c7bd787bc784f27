package handler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jumppad-df/jumppad/jumper"
	"github.com/jumppad-df/jumppad/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMover struct {
	id  uuid.UUID
	pos mgl64.Vec3
	vel mgl64.Vec3
	set []mgl64.Vec3
}

func (m *mockMover) UUID() uuid.UUID      { return m.id }
func (m *mockMover) Name() string         { return "Steve" }
func (m *mockMover) Message(...any)       {}
func (m *mockMover) Position() mgl64.Vec3 { return m.pos }
func (m *mockMover) Velocity() mgl64.Vec3 { return m.vel }
func (m *mockMover) SetVelocity(v mgl64.Vec3) {
	m.vel = v
	m.set = append(m.set, v)
}

// step moves the player to the position passed, as the server would after HandleMove returns.
func (m *mockMover) step(h *Player, pos mgl64.Vec3) {
	h.Move(m, pos)
	m.pos = pos
}

type allowAll struct{}

func (allowAll) HasAcknowledgedRules(uuid.UUID) bool { return true }

func TestMoveLaunchesAndRedirects(t *testing.T) {
	r, err := pad.NewRegistry(pad.JumpPad{Name: "spawn", Position: mgl64.Vec3{0.5, 64, 0.5}, Velocity: mgl64.Vec3{0, 1.2, 0.9}})
	require.NoError(t, err)
	j := jumper.New(slog.New(slog.NewTextHandler(io.Discard, nil)), r, allowAll{})
	h := NewPlayer(j, nil)

	m := &mockMover{id: uuid.New(), pos: mgl64.Vec3{2.5, 64, 0.5}}
	m.step(h, mgl64.Vec3{0.5, 64, 0.5})
	require.Len(t, m.set, 1)
	assert.Equal(t, mgl64.Vec3{0, 1.2, 0}, m.set[0])

	m.step(h, mgl64.Vec3{0.5, 65.1, 0.5})
	m.step(h, mgl64.Vec3{0.5, 65.9, 0.5})
	require.Len(t, m.set, 1)

	m.vel = mgl64.Vec3{0, -0.1, 0}
	m.step(h, mgl64.Vec3{0.5, 65.8, 0.5})
	require.Len(t, m.set, 2)
	assert.Equal(t, mgl64.Vec3{0, -0.1, 0.9}, m.set[1])

	m.step(h, mgl64.Vec3{0.5, 65.0, 1.5})
	assert.Len(t, m.set, 2)
}

func TestMoveLaunchesOnceWithinPadBlock(t *testing.T) {
	r, err := pad.NewRegistry(pad.JumpPad{Name: "low", Position: mgl64.Vec3{0.5, 64, 0.5}, Velocity: mgl64.Vec3{0, 0.4, 0.9}})
	require.NoError(t, err)
	j := jumper.New(slog.New(slog.NewTextHandler(io.Discard, nil)), r, allowAll{})
	h := NewPlayer(j, nil)

	m := &mockMover{id: uuid.New(), pos: mgl64.Vec3{2.5, 64, 0.5}}
	m.step(h, mgl64.Vec3{0.5, 64, 0.5})
	// A weak launch keeps the player inside the jump pad's block while rising.
	m.step(h, mgl64.Vec3{0.5, 64.4, 0.5})
	m.step(h, mgl64.Vec3{0.5, 64.72, 0.5})
	require.Len(t, m.set, 1)
	assert.Equal(t, mgl64.Vec3{0, 0.4, 0}, m.set[0])

	m.vel = mgl64.Vec3{0, -0.08, 0}
	m.step(h, mgl64.Vec3{0.5, 64.64, 1.5})
	require.Len(t, m.set, 2)
	assert.Equal(t, mgl64.Vec3{0, -0.08, 0.9}, m.set[1])
}
