package jumper

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jumppad-df/jumppad/game"
	"github.com/jumppad-df/jumppad/pad"
	"github.com/sasha-s/go-deadlock"
)

// DefaultRulesMessage is sent to players stepping on a jump pad before acknowledging the rules, unless
// another message is set using SetRulesMessage.
const DefaultRulesMessage = "Please read the global rules (/rules) to get access to the jump pads."

// Player is a player whose movement is fed to the Jumper.
type Player interface {
	// UUID returns the identity of the player, which stays the same for the whole session.
	UUID() uuid.UUID
	// Name returns the name of the player.
	Name() string
	// Message sends a message to the player.
	Message(a ...any)
	// Velocity returns the current velocity of the player.
	Velocity() mgl64.Vec3
}

// Registry looks up the jump pad at a position.
type Registry interface {
	ByPosition(pos mgl64.Vec3) (pad.JumpPad, bool)
}

// RulesChecker reports whether a player has acknowledged the rules, which is required for jump pads to
// launch them.
type RulesChecker interface {
	HasAcknowledgedRules(id uuid.UUID) bool
}

// Jumper decides when players standing on jump pads are launched. A launch happens in two phases: the
// player is first given the vertical part of the launch vector, and once they start descending the
// horizontal part is applied while the vertical speed they have at that moment is kept.
//
// Jumper keeps one state entry per player. Callers must serialise the events of a single player, but
// events of different players may be handled concurrently. PurgePlayer must be called when a player
// disconnects, or their entry is never released.
type Jumper struct {
	log      *slog.Logger
	registry Registry
	rules    RulesChecker

	rulesMessage atomic.Pointer[string]

	mu      deadlock.RWMutex
	players map[uuid.UUID]*playerState
}

// New returns a Jumper looking up jump pads in the Registry and rule acknowledgements in the
// RulesChecker passed.
func New(log *slog.Logger, registry Registry, rules RulesChecker) *Jumper {
	j := &Jumper{
		log:      log,
		registry: registry,
		rules:    rules,
		players:  make(map[uuid.UUID]*playerState),
	}
	j.SetRulesMessage(DefaultRulesMessage)
	return j
}

// SetRulesMessage changes the message sent to players that must read the rules before using jump pads.
func (j *Jumper) SetRulesMessage(msg string) {
	j.rulesMessage.Store(&msg)
}

// OnPositionSettle handles a player settling at a position. If the position is on a jump pad and the
// player is allowed to use it, the player is launched upwards and the horizontal redirect is queued
// for when they start descending.
func (j *Jumper) OnPositionSettle(p Player, pos mgl64.Vec3) Action {
	info, found := j.registry.ByPosition(pos)
	acknowledged := found && j.rules.HasAcknowledgedRules(p.UUID())

	s := j.state(p.UUID())
	s.mu.Lock()
	if !found {
		// The player left the jump pad, so they may be informed and launched again.
		s.setMustBeInformed(true)
		s.setJumpEnabled(true)
		s.mu.Unlock()
		return NoAction()
	}
	if !acknowledged {
		inform := s.MustBeInformed
		s.setMustBeInformed(false)
		s.mu.Unlock()

		if inform {
			p.Message(*j.rulesMessage.Load())
		}
		return NoAction()
	}
	if !s.JumpEnabled {
		s.mu.Unlock()
		return NoAction()
	}
	pending := info
	s.PendingRedirect = &pending
	s.mu.Unlock()

	vel := game.VerticalOnly(info.Velocity)
	j.log.Debug("launched player", "player", p.Name(), "pad", info.Name, "velocity", vel)
	return SetVelocity(vel)
}

// OnVerticalMotionObserved handles a player moving from one position to another. If the player was
// launched by a jump pad and is now descending, the horizontal part of the launch vector is applied
// and the vertical velocity of the player is kept.
func (j *Jumper) OnVerticalMotionObserved(p Player, previous, current mgl64.Vec3) Action {
	s, ok := j.lookup(p.UUID())
	if !ok {
		return NoAction()
	}

	s.mu.Lock()
	info := s.PendingRedirect
	if info == nil || current.Y() >= previous.Y() {
		s.mu.Unlock()
		return NoAction()
	}
	s.PendingRedirect = nil
	s.mu.Unlock()

	vel := mgl64.Vec3{info.Velocity.X(), p.Velocity().Y(), info.Velocity.Z()}
	j.log.Debug("redirected player", "player", p.Name(), "pad", info.Name, "velocity", vel)
	return SetVelocity(vel)
}

// SetJumpEnabled enables or disables jump pads for the player with the UUID passed. Jump pads are
// enabled again automatically once the player steps off a jump pad.
func (j *Jumper) SetJumpEnabled(id uuid.UUID, enabled bool) {
	s := j.state(id)
	s.mu.Lock()
	s.setJumpEnabled(enabled)
	s.mu.Unlock()
}

// SetMustBeInformed sets whether the player with the UUID passed should be told to read the rules the
// next time they step on a jump pad without having acknowledged them.
func (j *Jumper) SetMustBeInformed(id uuid.UUID, flag bool) {
	s := j.state(id)
	s.mu.Lock()
	s.setMustBeInformed(flag)
	s.mu.Unlock()
}

// PurgePlayer releases all state held for the player with the UUID passed, including a redirect that
// was never applied. It must be called when the player disconnects.
func (j *Jumper) PurgePlayer(id uuid.UUID) {
	j.mu.Lock()
	delete(j.players, id)
	j.mu.Unlock()
}

// State returns a snapshot of the state of the player with the UUID passed. Players that have not been
// seen have the state of a fresh session.
func (j *Jumper) State(id uuid.UUID) State {
	s, ok := j.lookup(id)
	if !ok {
		return freshState()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Tracked returns the amount of players that the Jumper holds state for.
func (j *Jumper) Tracked() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.players)
}

// lookup returns the state entry of a player if it exists.
func (j *Jumper) lookup(id uuid.UUID) (*playerState, bool) {
	j.mu.RLock()
	s, ok := j.players[id]
	j.mu.RUnlock()
	return s, ok
}

// state returns the state entry of a player, creating a fresh one if the player has not been seen.
func (j *Jumper) state(id uuid.UUID) *playerState {
	if s, ok := j.lookup(id); ok {
		return s
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	s, ok := j.players[id]
	if !ok {
		s = &playerState{State: freshState()}
		j.players[id] = s
	}
	return s
}
