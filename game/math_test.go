package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLaunchVectorFacing(t *testing.T) {
	tests := map[string]struct {
		yaw  float64
		want mgl64.Vec3
	}{
		"south": {yaw: 0, want: mgl64.Vec3{0, 1.5, 2}},
		"west":  {yaw: 90, want: mgl64.Vec3{-2, 1.5, 0}},
		"north": {yaw: 180, want: mgl64.Vec3{0, 1.5, -2}},
		"east":  {yaw: -90, want: mgl64.Vec3{2, 1.5, 0}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := LaunchVector(tc.yaw, 1.5, 2)
			assert.True(t, got.ApproxEqualThreshold(tc.want, 1e-9), "got %v, want %v", got, tc.want)
		})
	}
}

func TestLaunchVectorNoForwardSpeed(t *testing.T) {
	got := LaunchVector(37, 2, 0)
	assert.Equal(t, 2.0, got.Y())
	assert.Equal(t, 0.0, Vec3HzDistSqr(got))
}

func TestVerticalOnly(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{0, 1.2, 0}, VerticalOnly(mgl64.Vec3{0.4, 1.2, -0.8}))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(mgl64.Vec3{1, -2, 3}))
	assert.False(t, IsFinite(mgl64.Vec3{math.NaN(), 0, 0}))
	assert.False(t, IsFinite(mgl64.Vec3{0, math.Inf(-1), 0}))
}
