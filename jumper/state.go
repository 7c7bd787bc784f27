package jumper

import (
	"github.com/jumppad-df/jumppad/pad"
	"github.com/sasha-s/go-deadlock"
)

// State is a snapshot of the launch state of a single player.
type State struct {
	// MustBeInformed is true if the player should still be told to read the rules the next time they
	// step on a jump pad without having acknowledged them.
	MustBeInformed bool
	// JumpEnabled is false while jump pads are suppressed for the player, such as right after being
	// teleported onto one.
	JumpEnabled bool
	// PendingRedirect holds the jump pad that launched the player while the horizontal redirect has not
	// yet been applied. It is nil otherwise.
	PendingRedirect *pad.JumpPad
}

// freshState returns the state of a player that has not been seen this session.
func freshState() State {
	return State{MustBeInformed: true, JumpEnabled: true}
}

// playerState is the state entry of one player. Each player has its own lock so that movement of
// different players never contends on the same entry.
type playerState struct {
	mu deadlock.Mutex
	State
}

// setJumpEnabled sets JumpEnabled, only writing when the value changes.
func (s *playerState) setJumpEnabled(enabled bool) {
	if s.JumpEnabled != enabled {
		s.JumpEnabled = enabled
	}
}

// setMustBeInformed sets MustBeInformed, only writing when the value changes.
func (s *playerState) setMustBeInformed(flag bool) {
	if s.MustBeInformed != flag {
		s.MustBeInformed = flag
	}
}

// snapshot copies the state so that it can be handed out without the lock held.
func (s *playerState) snapshot() State {
	st := s.State
	if st.PendingRedirect != nil {
		p := *st.PendingRedirect
		st.PendingRedirect = &p
	}
	return st
}
