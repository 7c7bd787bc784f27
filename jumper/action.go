package jumper

import "github.com/go-gl/mathgl/mgl64"

// Action is the outcome of a movement event handled by the Jumper. It is either no action, or an
// instruction to set the velocity of the player to a specific vector.
type Action struct {
	velocity mgl64.Vec3
	set      bool
}

// NoAction returns an Action that leaves the player untouched.
func NoAction() Action {
	return Action{}
}

// SetVelocity returns an Action that sets the velocity of the player to the vector passed.
func SetVelocity(velocity mgl64.Vec3) Action {
	return Action{velocity: velocity, set: true}
}

// Velocity returns the velocity the player should be given. The second return value is false if the
// Action is NoAction.
func (a Action) Velocity() (mgl64.Vec3, bool) {
	return a.velocity, a.set
}
