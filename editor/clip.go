package editor

import (
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/history"
)

// CopySelection returns the existing selected cells keyed by their offset
// from the selection's top-left corner.
func (e *Editor) CopySelection() grid.Clip {
	lo, _, ok := e.sel.Bounds()
	if !ok {
		return nil
	}
	clip := make(grid.Clip)
	for _, p := range e.sel.Positions() {
		if c, ok := e.store.Lookup(e.nav.Floor, p); ok {
			clip[p.Sub(lo)] = *c
		}
	}
	return clip
}

// Paste writes clip with its origin at `at` as one action. Locked
// destination cells are left alone.
func (e *Editor) Paste(clip grid.Clip, at grid.Pos) int {
	f := e.nav.Floor
	n := 0
	_ = e.Edit(func(*Tx) error {
		for off, c := range clip {
			p := at.Add(off.X, off.Y)
			if e.paste(f, p, c) {
				n++
			}
		}
		return nil
	})
	return n
}

func (e *Editor) paste(f int, p grid.Pos, c grid.Cell) bool {
	cur, ok := e.store.Lookup(f, p)
	var prev *grid.Cell
	if ok {
		if cur.Locked {
			return false
		}
		prev = history.Snapshot(cur)
	}
	e.store.Set(f, p, c)
	e.gesture.Record(history.Delta{Floor: f, Pos: p, Prev: prev, Next: history.Snapshot(&c)})
	return true
}
