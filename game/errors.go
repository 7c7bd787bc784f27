package game

import "github.com/jumppad-df/jumppad/jperror"

// ErrInvalidTrajectoryInput is returned by Trajectory when no finite launch velocity exists for the
// endpoints and height passed.
var ErrInvalidTrajectoryInput = jperror.New("invalid trajectory input")
