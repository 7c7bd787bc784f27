package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3HzDistSqr returns the squared horizontal length of a vector.
func Vec3HzDistSqr(vec3 mgl64.Vec3) float64 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// VerticalOnly returns the vector passed with its horizontal components zeroed.
func VerticalOnly(vec3 mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{0, vec3.Y(), 0}
}

// IsFinite returns false if any component of the vector is NaN or infinite.
func IsFinite(vec3 mgl64.Vec3) bool {
	for _, v := range vec3 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LaunchVector returns the launch velocity of a pad facing the yaw passed (in degrees). The vertical
// component is the up speed and the horizontal components are the forward speed resolved against the
// facing direction, following the same convention as a player's look direction.
func LaunchVector(yaw, up, forward float64) mgl64.Vec3 {
	yawRad := mgl64.DegToRad(yaw)
	return mgl64.Vec3{
		-math.Sin(yawRad) * forward,
		up,
		math.Cos(yawRad) * forward,
	}
}
