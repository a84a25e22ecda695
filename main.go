package main

import (
	"flag"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/duojump/settings"
	"github.com/sirupsen/logrus"
)

func main() {
	settingsPath := flag.String("settings", "", "settings file (default ~/.config/duojump/settings.toml)")
	arenaFile := flag.String("arena", "", "arena prefab file in prefabs/ or a path on disk")
	debug := flag.Bool("debug", false, "enable debug mode (F3 physics overlay, F9 snapshot export)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload arena tuning and physics constants when the file changes")
	statsAddr := flag.String("stats", "", "serve a runtime stats dashboard on this address")
	sentryDSN := flag.String("sentry-dsn", "", "report crashes to this Sentry DSN")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	path := *settingsPath
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			logger.WithError(err).Warn("no user config dir, using default settings")
		}
		path = p
	}
	cfg, err := settings.Load(path)
	if err != nil {
		logger.Fatal(err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "arena":
			cfg.Arena.File = *arenaFile
		case "debug":
			cfg.Log.Debug = *debug
		case "m":
			cfg.Window.BaseMonitor = *baseMonitor
		case "watch":
			cfg.Arena.Watch = *watch
		case "stats":
			cfg.Service.StatsAddr = *statsAddr
		case "sentry-dsn":
			cfg.Service.SentryDSN = *sentryDSN
		}
	})
	logger.SetLevel(cfg.Level())

	if cfg.Service.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Service.SentryDSN}); err != nil {
			logger.WithError(err).Warn("sentry disabled")
		} else {
			defer sentry.Flush(5 * time.Second)
			defer func() {
				if r := recover(); r != nil {
					sentry.CurrentHub().Recover(r)
					sentry.Flush(5 * time.Second)
					panic(r)
				}
			}()
		}
	}

	if cfg.Service.StatsAddr != "" {
		viewer.SetConfiguration(viewer.WithAddr(cfg.Service.StatsAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.WithField("addr", cfg.Service.StatsAddr).Info("stats dashboard started")
	}

	if cfg.Window.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	if cfg.Window.Width > 0 {
		w = cfg.Window.Width
	}
	if cfg.Window.Height > 0 {
		h = cfg.Window.Height
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(GameOptions{
		ArenaFile: cfg.Arena.File,
		Debug:     cfg.Log.Debug,
		Watch:     cfg.Arena.Watch,
		Log:       logger,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		logger.Fatal(err)
	}
}
