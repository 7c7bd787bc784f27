package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Trajectory returns the initial velocity that carries a body from one point to another under Gravity,
// with the apex of the arc at least heightGain above the higher of the two points. An error wrapping
// ErrInvalidTrajectoryInput is returned if the points are horizontally coincident or if the arc is
// impossible, so the result is always a finite vector.
func Trajectory(from, to mgl64.Vec3, heightGain float64) (mgl64.Vec3, error) {
	diff := to.Sub(from)
	endGain := diff.Y()
	horizDist := math.Sqrt(Vec3HzDistSqr(diff))
	if horizDist == 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: endpoints are horizontally coincident", ErrInvalidTrajectoryInput)
	}

	maxGain := math.Max(heightGain, endGain+heightGain)
	if maxGain <= 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: apex gain %v is not positive", ErrInvalidTrajectoryInput, maxGain)
	}

	// Solve the ballistic quadratic for the slope of the arc. The negative root selects the branch that
	// arrives at the destination while descending.
	a := -horizDist * horizDist / (4 * maxGain)
	b := horizDist
	c := -endGain
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: destination is unreachable with apex gain %v", ErrInvalidTrajectoryInput, maxGain)
	}
	slope := -b/(2*a) - math.Sqrt(discriminant)/(2*a)

	vy := math.Sqrt(maxGain * Gravity)
	vh := vy / slope

	vel := mgl64.Vec3{vh * diff.X() / horizDist, vy, vh * diff.Z() / horizDist}
	if !IsFinite(vel) {
		return mgl64.Vec3{}, fmt.Errorf("%w: solved velocity %v is not finite", ErrInvalidTrajectoryInput, vel)
	}
	return vel, nil
}
