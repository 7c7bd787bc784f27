package command

import (
	"fmt"
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jumppad-df/jumppad/game"
	"github.com/jumppad-df/jumppad/jperror"
	"github.com/jumppad-df/jumppad/pad"
	"github.com/jumppad-df/jumppad/permission"
)

var (
	// ErrNoPermission is returned when a player runs a command without holding its permission.
	ErrNoPermission = jperror.New("you must have permission")
	// ErrNotOnPad is returned when a command that needs the player to stand on a jump pad is run elsewhere.
	ErrNotOnPad = jperror.New("you must go to a jumppad before you edit the jumppad, use /jumppad goto <name>")
)

// Actor is the player running a command.
type Actor interface {
	UUID() uuid.UUID
	Name() string
	Position() mgl64.Vec3
	Rotation() cube.Rotation
	Teleport(pos mgl64.Vec3)
}

// Suppressor disables jump pads for a player until they step off a jump pad.
type Suppressor interface {
	SetJumpEnabled(id uuid.UUID, enabled bool)
}

// Permissions is the permission store consulted before running commands.
type Permissions interface {
	HasPerm(id uuid.UUID, perm uint64) bool
	AddPerm(id uuid.UUID, perm uint64)
}

// Manager implements the jump pad commands independently of the command framework.
type Manager struct {
	log        *slog.Logger
	registry   *pad.Registry
	suppressor Suppressor
	perms      Permissions
	save       func()
}

// NewManager returns a Manager that changes the jump pads in the Registry passed. save is called after
// every change to the Registry.
func NewManager(log *slog.Logger, registry *pad.Registry, suppressor Suppressor, perms Permissions, save func()) *Manager {
	return &Manager{log: log, registry: registry, suppressor: suppressor, perms: perms, save: save}
}

// Add creates a jump pad at the position of the actor, facing the way the actor is looking.
func (m *Manager) Add(a Actor, name string, up, forward float64) (pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionAdd); err != nil {
		return pad.JumpPad{}, err
	}
	p := m.padAt(a, name, up, forward)
	if err := m.registry.Add(p); err != nil {
		return pad.JumpPad{}, err
	}
	// The creator is standing on the new pad and should not be launched right away.
	m.suppressor.SetJumpEnabled(a.UUID(), false)
	m.log.Info("created jump pad", "player", a.Name(), "pad", p.Name, "pos", p.BlockPos(), "velocity", p.Velocity)
	m.save()
	return p, nil
}

// Edit changes the launch vector of the jump pad the actor is standing on.
func (m *Manager) Edit(a Actor, up, forward float64) (pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionEdit); err != nil {
		return pad.JumpPad{}, err
	}
	old, ok := m.registry.ByPosition(a.Position())
	if !ok {
		return pad.JumpPad{}, ErrNotOnPad
	}
	p := m.padAt(a, old.Name, up, forward)
	if err := m.registry.Update(p); err != nil {
		return pad.JumpPad{}, err
	}
	m.suppressor.SetJumpEnabled(a.UUID(), false)
	m.log.Info("edited jump pad", "player", a.Name(), "pad", p.Name, "velocity", p.Velocity)
	m.save()
	return p, nil
}

// Remove removes the jump pad with the name passed.
func (m *Manager) Remove(a Actor, name string) (pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionRemove); err != nil {
		return pad.JumpPad{}, err
	}
	p, err := m.registry.Remove(name)
	if err != nil {
		return pad.JumpPad{}, err
	}
	m.log.Info("removed jump pad", "player", a.Name(), "pad", p.Name)
	m.save()
	return p, nil
}

// Goto teleports the actor to the jump pad with the name passed. Jump pads are suppressed for the actor
// so that arriving on the pad does not launch them.
func (m *Manager) Goto(a Actor, name string) (pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionGoto); err != nil {
		return pad.JumpPad{}, err
	}
	p, ok := m.registry.ByName(name)
	if !ok {
		return pad.JumpPad{}, fmt.Errorf("%w: %s", pad.ErrUnknownPad, name)
	}
	a.Teleport(p.Position)
	m.suppressor.SetJumpEnabled(a.UUID(), false)
	return p, nil
}

// List returns all jump pads.
func (m *Manager) List(a Actor) ([]pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionList); err != nil {
		return nil, err
	}
	return m.registry.All(), nil
}

// Link changes the launch vector of the jump pad with the name passed so that it throws players in an
// arc onto the target jump pad, peaking at least height blocks above the higher of the two.
func (m *Manager) Link(a Actor, name, target string, height float64) (pad.JumpPad, error) {
	if err := m.verifyPermission(a, permission.PermissionEdit); err != nil {
		return pad.JumpPad{}, err
	}
	p, ok := m.registry.ByName(name)
	if !ok {
		return pad.JumpPad{}, fmt.Errorf("%w: %s", pad.ErrUnknownPad, name)
	}
	dst, ok := m.registry.ByName(target)
	if !ok {
		return pad.JumpPad{}, fmt.Errorf("%w: %s", pad.ErrUnknownPad, target)
	}
	vel, err := game.Trajectory(p.Position, dst.Position, height)
	if err != nil {
		return pad.JumpPad{}, fmt.Errorf("link %s to %s: %w", name, target, err)
	}
	p.Velocity = vel
	if err := m.registry.Update(p); err != nil {
		return pad.JumpPad{}, err
	}
	m.log.Info("linked jump pad", "player", a.Name(), "pad", p.Name, "target", dst.Name, "velocity", vel)
	m.save()
	return p, nil
}

// AcknowledgeRules grants the actor access to jump pads for the rest of the session.
func (m *Manager) AcknowledgeRules(a Actor) {
	m.perms.AddPerm(a.UUID(), permission.PermissionJump)
}

// padAt returns a jump pad at the position of the actor with a launch vector facing the way the actor
// is looking.
func (m *Manager) padAt(a Actor, name string, up, forward float64) pad.JumpPad {
	yaw := a.Rotation().Yaw()
	return pad.JumpPad{
		Name:      name,
		Position:  a.Position(),
		Yaw:       yaw,
		Velocity:  game.LaunchVector(yaw, up, forward),
		Owner:     a.UUID(),
		OwnerName: a.Name(),
	}
}

func (m *Manager) verifyPermission(a Actor, perm uint64) error {
	if m.perms.HasPerm(a.UUID(), perm) {
		return nil
	}
	return fmt.Errorf("%w %s", ErrNoPermission, permission.Name(perm))
}
