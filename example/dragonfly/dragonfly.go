package main

import (
	"log/slog"
	"os"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jumppad-df/jumppad"
	"github.com/jumppad-df/jumppad/settings"
)

const settingsPath = "jumppad.toml"

// The following program runs a dragonfly server with jump pads enabled.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	chat.Global.Subscribe(chat.StdoutSubscriber{})

	s, err := settings.LoadOrCreate(settingsPath)
	if err != nil {
		panic(err)
	}
	if s.Debug.StatsView {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Debug.StatsViewAddr))
		mgr := statsview.New()
		go mgr.Start()
	}

	pl, err := jumppad.New(log, s)
	if err != nil {
		panic(err)
	}
	defer pl.Close()
	pl.RegisterCommands()

	w, err := settings.Watch(log, settingsPath, pl.UpdateSettings)
	if err != nil {
		log.Error("watch settings", "err", err)
	} else {
		defer w.Close()
	}

	conf, err := server.DefaultConfig().Config(log)
	if err != nil {
		panic(err)
	}
	srv := conf.New()
	srv.CloseOnProgramEnd()
	srv.Listen()
	for p := range srv.Accept() {
		pl.Attach(p)
	}
}
