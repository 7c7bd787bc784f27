package handler

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jumppad-df/jumppad/jumper"
)

// Mover is a player whose movement is handled by Player.
type Mover interface {
	jumper.Player
	Position() mgl64.Vec3
	SetVelocity(velocity mgl64.Vec3)
}

// Player is a player.Handler that launches players standing on jump pads.
type Player struct {
	player.NopHandler

	j    *jumper.Jumper
	quit func(id uuid.UUID)
}

// NewPlayer returns a Player handler that feeds movement to the Jumper passed. quit is called with the
// UUID of the player when they leave the server, after their launch state has been purged.
func NewPlayer(j *jumper.Jumper, quit func(id uuid.UUID)) *Player {
	return &Player{j: j, quit: quit}
}

// HandleMove ...
func (h *Player) HandleMove(ctx *player.Context, newPos mgl64.Vec3, _ cube.Rotation) {
	h.Move(ctx.Val(), newPos)
}

// HandleQuit ...
func (h *Player) HandleQuit(p *player.Player) {
	h.j.PurgePlayer(p.UUID())
	if h.quit != nil {
		h.quit(p.UUID())
	}
}

// Move handles a player moving from their current position to the position passed. A pending redirect
// is resolved before the new position is checked for a jump pad. While a launch is in flight the player
// has not settled, so the jump pad is not checked and the vertical impulse is applied once per launch.
func (h *Player) Move(p Mover, newPos mgl64.Vec3) {
	if vel, ok := h.j.OnVerticalMotionObserved(p, p.Position(), newPos).Velocity(); ok {
		p.SetVelocity(vel)
	}
	if h.j.State(p.UUID()).PendingRedirect != nil {
		return
	}
	if vel, ok := h.j.OnPositionSettle(p, newPos).Velocity(); ok {
		p.SetVelocity(vel)
	}
}
