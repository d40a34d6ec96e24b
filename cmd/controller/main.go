// Command controller sends movement commands to a running mapper over UDP.
// By default it opens a small window that reads the first gamepad (with
// arrow keys and space as a fallback); -tty reads the terminal instead.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/remote"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "path to the YAML config")
	target := flag.String("target", "", "mapper address host:port (default remote.target from config)")
	tty := flag.Bool("tty", false, "read input from the terminal instead of a gamepad window")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	logger.SetDebug(*debug)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	if *target != "" {
		cfg.Remote.Target = *target
	}

	sender, err := remote.Dial(remote.SenderConfig{
		Target:       cfg.Remote.Target,
		AckTimeout:   cfg.Remote.AckTimeout,
		Attempts:     cfg.Remote.Attempts,
		PollInterval: cfg.Remote.PollInterval,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("dial mapper")
	}
	defer sender.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *tty {
		// The screen owns the terminal until it is finalised.
		if !*debug {
			logger.Log.SetOutput(io.Discard)
		}
		in := remote.NewPulseInput(16)
		go runSender(ctx, sender, in)
		if err := runTerminal(ctx, in, sender); err != nil {
			logger.Log.WithError(err).Fatal("terminal")
		}
		return
	}

	in := &remote.LevelInput{}
	go runSender(ctx, sender, in)

	ebiten.SetWindowSize(padWidth*2, padHeight*2)
	ebiten.SetWindowTitle("Crawltographer Controller")
	if err := ebiten.RunGame(newPad(ctx, in, sender, cfg.Remote.Target)); err != nil && err != errQuit {
		logger.Log.WithError(err).Fatal("run controller")
	}
}

func runSender(ctx context.Context, s *remote.Sender, src remote.InputSource) {
	if err := s.Run(ctx, src); err != nil {
		logger.Log.WithError(err).Error("sender stopped")
	}
}
