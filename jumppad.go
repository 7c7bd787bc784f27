package jumppad

import (
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/jumppad-df/jumppad/command"
	"github.com/jumppad-df/jumppad/handler"
	"github.com/jumppad-df/jumppad/jumper"
	"github.com/jumppad-df/jumppad/pad"
	"github.com/jumppad-df/jumppad/permission"
	"github.com/jumppad-df/jumppad/settings"
	"github.com/jumppad-df/jumppad/worker"
)

// Plugin is an instance of the jump pad plugin. It owns the jump pads, the launch state of every player
// and the permissions granted this session.
type Plugin struct {
	log      *slog.Logger
	settings atomic.Pointer[settings.Settings]

	store    *pad.Store
	registry *pad.Registry
	perms    *permission.Store
	jumper   *jumper.Jumper
	manager  *command.Manager
	handler  *handler.Player
	saver    *worker.Pool
}

// New returns a new Plugin using the settings passed. Jump pads are loaded from the storage path in the
// settings. If a Sentry DSN is configured, Sentry is initialised so that panics in background jobs are
// reported.
func New(log *slog.Logger, s settings.Settings) (*Plugin, error) {
	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN}); err != nil {
			return nil, fmt.Errorf("init sentry: %w", err)
		}
	}

	store := pad.NewStore(s.Storage.Path)
	pads, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load jump pads: %w", err)
	}
	registry, err := pad.NewRegistry(pads...)
	if err != nil {
		return nil, fmt.Errorf("load jump pads: %w", err)
	}

	p := &Plugin{
		log:      log,
		store:    store,
		registry: registry,
		perms:    permission.NewStore(),
		saver:    worker.New(log, 1),
	}
	p.jumper = jumper.New(log, registry, p.perms)
	p.manager = command.NewManager(log, registry, p.jumper, p.perms, p.save)
	p.handler = handler.NewPlayer(p.jumper, p.perms.Purge)
	p.UpdateSettings(s)

	log.Info("loaded jump pads", "count", registry.Len(), "path", store.Path())
	return p, nil
}

// RegisterCommands registers the /jumppad command and the rules command with the server.
func (p *Plugin) RegisterCommands() {
	command.Register(p.manager, p.Settings().Rules.Command,
		func() []string { return p.Settings().Rules.Lines },
		func() string { return p.Settings().Messages.PermissionGranted },
	)
}

// Attach makes jump pads work for the player passed. Players listed as operators in the settings are
// granted every permission needed to manage jump pads.
func (p *Plugin) Attach(pl *player.Player) {
	if slices.Contains(p.Settings().Operators, pl.Name()) {
		p.perms.AddPerm(pl.UUID(), permission.PermissionAdmin)
	}
	pl.Handle(p.handler)
}

// Settings returns the settings currently in use.
func (p *Plugin) Settings() settings.Settings {
	return *p.settings.Load()
}

// UpdateSettings replaces the settings in use. The storage path and rules command are only read when
// the Plugin is created and are not affected.
func (p *Plugin) UpdateSettings(s settings.Settings) {
	p.settings.Store(&s)
	p.jumper.SetRulesMessage(s.Messages.ReadRules)
}

// Jumper returns the Jumper handling launches. It may be used to suppress jump pads for players that
// are teleported by other plugins.
func (p *Plugin) Jumper() *jumper.Jumper {
	return p.jumper
}

// Registry returns the registry holding all jump pads.
func (p *Plugin) Registry() *pad.Registry {
	return p.registry
}

// Permissions returns the permission store of the session.
func (p *Plugin) Permissions() *permission.Store {
	return p.perms
}

// Forget releases everything held for the player with the UUID passed. The handler attached with Attach
// does this automatically when the player quits.
func (p *Plugin) Forget(id uuid.UUID) {
	p.jumper.PurgePlayer(id)
	p.perms.Purge(id)
}

// save writes the registry to disk in the background. The registry is read when the job runs, so the
// last job always writes the latest jump pads.
func (p *Plugin) save() {
	if !p.saver.Submit(p.write) {
		p.write()
	}
}

func (p *Plugin) write() {
	if err := p.store.Save(p.registry.All()); err != nil {
		p.log.Error("save jump pads", "path", p.store.Path(), "err", err)
	}
}

// Close waits for pending saves and writes the jump pads to disk one last time.
func (p *Plugin) Close() error {
	p.saver.Close()
	if err := p.store.Save(p.registry.All()); err != nil {
		return fmt.Errorf("save jump pads: %w", err)
	}
	return nil
}
