package main

import (
	"context"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/devin-hart/dungeon-crawltographer/assets"
	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/editor"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/remote"
	"github.com/devin-hart/dungeon-crawltographer/script"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "path to the yaml configuration")
	mapPath := flag.String("map", "", "map file to open at startup")
	listen := flag.String("listen", "", "remote receiver address (overrides remote.listen)")
	noRemote := flag.Bool("no-remote", false, "do not accept remote controller commands")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	logger.SetDebug(*debug)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("config")
	}
	if *listen != "" {
		cfg.Remote.Listen = *listen
	}

	if macros, _ := script.List(cfg.ScriptsDir); len(macros) == 0 {
		if _, err := assets.Install(cfg.ScriptsDir); err != nil {
			logger.Log.WithError(err).Warn("starter macros not installed")
		}
	}

	ed := editor.New(editor.Options{GridSize: cfg.GridSize, HistorySize: cfg.HistorySize})
	if *mapPath != "" {
		if err := ed.Load(*mapPath); err != nil {
			logger.Log.WithError(err).Error("failed to open map")
		}
	}

	queue := &remote.Queue{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !*noRemote {
		rx, err := remote.Listen(cfg.Remote.Listen, queue)
		if err != nil {
			logger.Log.WithError(err).Error("remote input disabled")
		} else {
			go func() {
				if err := rx.Serve(ctx); err != nil {
					logger.Log.WithError(err).Error("remote receiver stopped")
				}
			}()
		}
	}

	game, err := NewMapper(cfg, *cfgPath, ed, queue)
	if err != nil {
		logger.Log.WithError(err).Fatal("ui")
	}
	if *mapPath != "" {
		game.savePath = *mapPath
	}

	if w, err := config.Watch(*cfgPath); err != nil {
		logger.Log.WithError(err).Warn("config hot reload disabled")
	} else {
		game.watcher = w
		defer w.Close()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Dungeon Crawltographer")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("run")
	}
}
