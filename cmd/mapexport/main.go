// Command mapexport renders one floor of a saved map to a PNG.
package main

import (
	"flag"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/mapfile"
)

func main() {
	in := flag.String("in", "", "map file to read")
	out := flag.String("out", "", "PNG to write (default: <in>.png)")
	floor := flag.Int("floor", 0, "floor to render")
	cell := flag.Int("cell", 24, "cell size in pixels")
	cfgPath := flag.String("config", config.DefaultFile, "path to the YAML config")
	flag.Parse()

	logger.Init()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		name := *in
		*out = name[:len(name)-len(filepath.Ext(name))] + ".png"
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	m, err := mapfile.Load(*in, grid.Pos{X: cfg.GridSize / 2, Y: cfg.GridSize / 2})
	if err != nil {
		logger.Log.WithError(err).Fatal("load map")
	}

	img := Render(m.Store, *floor, Options{CellSize: *cell, Outline: 2, Palette: cfg.Palette()})

	f, err := os.Create(*out)
	if err != nil {
		logger.Log.WithError(err).Fatal("create output")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		logger.Log.WithError(err).Fatal("encode png")
	}
	logger.Log.WithFields(logrus.Fields{
		"out":   *out,
		"floor": *floor,
		"cells": m.Store.Len(*floor),
	}).Info("map exported")
}
