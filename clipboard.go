package main

import (
	"golang.design/x/clipboard"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/mapfile"
)

// Clipboard moves cell clips through the system clipboard, falling back to
// an in-process copy when the system clipboard is unavailable.
type Clipboard struct {
	system bool
	local  grid.Clip
}

func NewClipboard() *Clipboard {
	c := &Clipboard{}
	if err := clipboard.Init(); err != nil {
		logger.Log.WithError(err).Warn("system clipboard unavailable, using local copy")
		return c
	}
	c.system = true
	return c
}

func (c *Clipboard) Put(clip grid.Clip) {
	c.local = clip
	if !c.system {
		return
	}
	data, err := mapfile.EncodeClip(clip)
	if err != nil {
		logger.Log.WithError(err).Warn("encode clip")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

// Get returns the current clip. Foreign clipboard text falls back to the
// last local copy.
func (c *Clipboard) Get() grid.Clip {
	if !c.system {
		return c.local
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return c.local
	}
	clip, err := mapfile.DecodeClip(data)
	if err != nil {
		logger.Log.WithError(err).Debug("clipboard holds no map cells")
		return c.local
	}
	return clip
}
