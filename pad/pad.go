package pad

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// JumpPad is a registered location that launches players standing on it.
type JumpPad struct {
	// Name is the unique name of the jump pad.
	Name string
	// Position is the exact position the jump pad was created at. Players teleported to the pad are
	// placed here.
	Position mgl64.Vec3
	// Yaw is the facing of the jump pad in degrees. Players teleported to the pad face this way.
	Yaw float64
	// Velocity is the launch vector of the pad. The Y component is the up speed, the X and Z components
	// are the forward speed resolved against Yaw.
	Velocity mgl64.Vec3
	// Owner is the UUID of the player that created the pad, and OwnerName the name they had.
	Owner     uuid.UUID
	OwnerName string
}

// BlockPos returns the block position that the jump pad occupies.
func (p JumpPad) BlockPos() cube.Pos {
	return cube.PosFromVec3(p.Position)
}

// String ...
func (p JumpPad) String() string {
	pos := p.BlockPos()
	return fmt.Sprintf("%s (%d, %d, %d) up=%.2f forward=%.2f owner=%s",
		p.Name, pos[0], pos[1], pos[2], p.Velocity.Y(), mgl64.Vec2{p.Velocity.X(), p.Velocity.Z()}.Len(), p.OwnerName)
}
