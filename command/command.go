package command

import (
	"errors"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jumppad-df/jumppad/game"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Register registers the /jumppad command and the rules command with the server. lines returns the
// rules to show and granted returns the message sent once they were read. Both are called every time
// the rules command runs, so reloaded settings take effect immediately.
func Register(m *Manager, rulesCommand string, lines func() []string, granted func() string) {
	cmd.Register(cmd.New("jumppad", "Manage jump pads.", []string{"jp"},
		add{m: m}, edit{m: m}, remove{m: m}, gotoPad{m: m}, list{m: m}, link{m: m},
	))
	cmd.Register(cmd.New(rulesCommand, "Read the rules to get access to the jump pads.", nil,
		rules{m: m, lines: lines, granted: granted},
	))
}

// playerOnly is embedded by runnables that may only be run by players.
type playerOnly struct{}

// Allow ...
func (playerOnly) Allow(src cmd.Source) bool {
	_, ok := src.(*player.Player)
	return ok
}

type add struct {
	playerOnly
	m *Manager

	Sub     cmd.SubCommand        `cmd:"add"`
	Name    string                `cmd:"name"`
	Up      float64               `cmd:"up_speed"`
	Forward cmd.Optional[float64] `cmd:"forward_speed"`
}

// Run ...
func (c add) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, err := c.m.Add(src.(*player.Player), c.Name, c.Up, c.Forward.LoadOr(0))
	if err != nil {
		outputError(o, err)
		return
	}
	o.Print(text.Colourf("<green>Created jump pad %s.</green>", p.Name))
}

type edit struct {
	playerOnly
	m *Manager

	Sub     cmd.SubCommand        `cmd:"edit"`
	Up      float64               `cmd:"up_speed"`
	Forward cmd.Optional[float64] `cmd:"forward_speed"`
}

// Run ...
func (c edit) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, err := c.m.Edit(src.(*player.Player), c.Up, c.Forward.LoadOr(0))
	if err != nil {
		outputError(o, err)
		return
	}
	o.Print(text.Colourf("<green>Edited jump pad %s.</green>", p.Name))
}

type remove struct {
	playerOnly
	m *Manager

	Sub  cmd.SubCommand `cmd:"remove"`
	Name string         `cmd:"name"`
}

// Run ...
func (c remove) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, err := c.m.Remove(src.(*player.Player), c.Name)
	if err != nil {
		outputError(o, err)
		return
	}
	o.Print(text.Colourf("<green>Removed jump pad %s.</green>", p.Name))
}

type gotoPad struct {
	playerOnly
	m *Manager

	Sub  cmd.SubCommand `cmd:"goto"`
	Name string         `cmd:"name"`
}

// Run ...
func (c gotoPad) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	pl := src.(*player.Player)
	p, err := c.m.Goto(pl, c.Name)
	if err != nil {
		outputError(o, err)
		return
	}
	pl.Move(mgl64.Vec3{}, p.Yaw-pl.Rotation().Yaw(), 0)
}

type list struct {
	playerOnly
	m *Manager

	Sub cmd.SubCommand `cmd:"list"`
}

// Run ...
func (c list) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	pads, err := c.m.List(src.(*player.Player))
	if err != nil {
		outputError(o, err)
		return
	}
	o.Print("Jump pads:")
	for _, p := range pads {
		o.Print(p.String())
	}
}

type link struct {
	playerOnly
	m *Manager

	Sub    cmd.SubCommand `cmd:"link"`
	Name   string         `cmd:"name"`
	Target string         `cmd:"target"`
	Height float64        `cmd:"height"`
}

// Run ...
func (c link) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, err := c.m.Link(src.(*player.Player), c.Name, c.Target, c.Height)
	if err != nil {
		outputError(o, err)
		return
	}
	o.Print(text.Colourf("<green>Linked jump pad %s to %s.</green>", p.Name, c.Target))
}

type rules struct {
	playerOnly
	m       *Manager
	lines   func() []string
	granted func() string
}

// Run ...
func (c rules) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	for _, l := range c.lines() {
		o.Print(l)
	}
	c.m.AcknowledgeRules(src.(*player.Player))
	o.Print(c.granted())
}

// outputError reports an error to the player running a command.
func outputError(o *cmd.Output, err error) {
	if errors.Is(err, game.ErrInvalidTrajectoryInput) {
		o.Errorf("Cannot link these jump pads: %v", err)
		return
	}
	o.Error(err)
}
