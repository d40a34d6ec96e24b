// Package editor holds the map editing state and every operation the
// presentation layer and the remote receiver drive it with. An Editor is not
// safe for concurrent use; all calls happen on the main loop.
package editor

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/history"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/mapfile"
	"github.com/devin-hart/dungeon-crawltographer/view"
)

const (
	MinZoom     = 0.3
	MaxZoom     = 3.0
	ZoomStep    = 0.1
	ZoomFactor  = 1.1
	LabelMax    = 20
	DefaultGrid = 100
)

// Button selects what a click does to a cell.
type Button int

const (
	ButtonMark Button = iota + 1
	ButtonErase
)

// Options configures a new Editor. Zero values take defaults.
type Options struct {
	GridSize    int
	HistorySize int
}

// Nav is the navigation state of the current map.
type Nav struct {
	Floor    int
	Pos      grid.Pos
	Rotation int
	Pan      cp.Vector
	Zoom     float64
}

type Editor struct {
	store   *grid.Store
	nav     Nav
	sel     *Selection
	log     *history.Log
	gesture history.Gesture

	icon       grid.Icon
	playerMode bool
	gridSize   int
}

func New(opts Options) *Editor {
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultGrid
	}
	e := &Editor{
		sel:      NewSelection(),
		log:      history.NewLog(opts.HistorySize),
		icon:     grid.IconEntrance,
		gridSize: opts.GridSize,
	}
	e.NewMap()
	return e
}

// Home is the position a new map starts at.
func (e *Editor) Home() grid.Pos {
	return grid.Pos{X: e.gridSize / 2, Y: e.gridSize / 2}
}

// NewMap discards the current map and resets navigation, history and
// selection.
func (e *Editor) NewMap() {
	e.store = grid.NewStore()
	e.nav = Nav{Pos: e.Home(), Zoom: 1}
	e.log.Clear()
	e.gesture.Take()
	e.sel.Clear()
}

func (e *Editor) Store() *grid.Store    { return e.store }
func (e *Editor) Nav() Nav              { return e.nav }
func (e *Editor) Selection() *Selection { return e.sel }
func (e *Editor) History() *history.Log { return e.log }
func (e *Editor) SelectedIcon() grid.Icon {
	return e.icon
}
func (e *Editor) PlayerMode() bool { return e.playerMode }

// Cell returns the cell at p on floor, creating it if needed.
func (e *Editor) Cell(floor int, p grid.Pos) *grid.Cell {
	return e.store.Cell(floor, p)
}

// Dirty reports whether a gesture has uncommitted edits.
func (e *Editor) Dirty() bool {
	return e.gesture.Len() > 0
}

// MarkCell marks p on the current floor explored with icon. Locked cells
// are skipped. The change joins the open gesture until Commit.
func (e *Editor) MarkCell(p grid.Pos, icon grid.Icon) {
	f := e.nav.Floor
	c, ok := e.store.Lookup(f, p)
	if ok && c.Locked {
		return
	}
	var prev *grid.Cell
	if ok {
		prev = history.Snapshot(c)
	} else {
		c = e.store.Cell(f, p)
	}
	c.Explored = true
	c.Icon = icon
	e.gesture.Record(history.Delta{Floor: f, Pos: p, Prev: prev, Next: history.Snapshot(c)})
}

// EraseCell removes p from the current floor regardless of its lock.
func (e *Editor) EraseCell(p grid.Pos) {
	f := e.nav.Floor
	c, ok := e.store.Lookup(f, p)
	if !ok {
		return
	}
	prev := history.Snapshot(c)
	e.store.Delete(f, p)
	e.gesture.Record(history.Delta{Floor: f, Pos: p, Prev: prev})
}

func (e *Editor) apply(p grid.Pos, b Button) {
	switch b {
	case ButtonMark:
		e.MarkCell(p, e.icon)
	case ButtonErase:
		e.EraseCell(p)
	}
}

// Click handles a press (drag=false) or a drag step (drag=true) over p. A
// press replaces the selection, a drag step extends it.
func (e *Editor) Click(p grid.Pos, b Button, drag bool) {
	if !drag {
		e.sel.Clear()
	}
	e.sel.Add(p)
	e.apply(p, b)
}

// ApplyToSelection marks or erases every selected cell.
func (e *Editor) ApplyToSelection(b Button) {
	for _, p := range e.sel.Positions() {
		e.apply(p, b)
	}
}

// Commit closes the open gesture and pushes it to the history.
func (e *Editor) Commit() {
	e.log.Push(e.gesture.Take())
}

// Discard reverts and drops the open gesture.
func (e *Editor) Discard() {
	e.gesture.Take().Revert(e.store)
}

func (e *Editor) Undo() bool {
	e.Commit()
	a, ok := e.log.Undo()
	if ok {
		a.Revert(e.store)
	}
	return ok
}

func (e *Editor) Redo() bool {
	e.Commit()
	a, ok := e.log.Redo()
	if ok {
		a.Apply(e.store)
	}
	return ok
}

// ToggleSelect adds p to the selection or removes it if already selected.
func (e *Editor) ToggleSelect(p grid.Pos) {
	if e.sel.Has(p) {
		e.sel.Remove(p)
		return
	}
	e.sel.Add(p)
}

func (e *Editor) Select(p grid.Pos, additive bool) {
	if !additive {
		e.sel.Clear()
	}
	e.sel.Add(p)
}

func (e *Editor) SelectRange(a, b grid.Pos, additive bool) {
	if !additive {
		e.sel.Clear()
	}
	e.sel.AddRect(a, b)
}

func (e *Editor) ClearSelection() {
	e.sel.Clear()
}

// ToggleLockOnSelection sets every selected cell to the inverse of the
// first selected cell's lock state, as one action.
func (e *Editor) ToggleLockOnSelection() {
	ps := e.sel.Positions()
	if len(ps) == 0 {
		return
	}
	f := e.nav.Floor
	state := true
	if c, ok := e.store.Lookup(f, ps[0]); ok {
		state = !c.Locked
	}
	e.Commit()
	for _, p := range ps {
		e.setLocked(f, p, state)
	}
	e.Commit()
}

func (e *Editor) setLocked(f int, p grid.Pos, state bool) {
	c, ok := e.store.Lookup(f, p)
	var prev *grid.Cell
	if ok {
		if c.Locked == state {
			return
		}
		prev = history.Snapshot(c)
	} else {
		c = e.store.Cell(f, p)
	}
	c.Locked = state
	e.gesture.Record(history.Delta{Floor: f, Pos: p, Prev: prev, Next: history.Snapshot(c)})
}

// SetLabel sets the label of p on the current floor, truncated to
// LabelMax runes, as one action.
func (e *Editor) SetLabel(p grid.Pos, text string) {
	if r := []rune(text); len(r) > LabelMax {
		text = string(r[:LabelMax])
	}
	e.Commit()
	e.setLabel(e.nav.Floor, p, text)
	e.Commit()
}

func (e *Editor) setLabel(f int, p grid.Pos, text string) {
	c, ok := e.store.Lookup(f, p)
	var prev *grid.Cell
	if ok {
		if c.Label == text {
			return
		}
		prev = history.Snapshot(c)
	} else {
		c = e.store.Cell(f, p)
	}
	c.Label = text
	e.gesture.Record(history.Delta{Floor: f, Pos: p, Prev: prev, Next: history.Snapshot(c)})
}

// LabelTarget returns the cell that can be labelled: the only selected
// cell, if it is explored and unlocked.
func (e *Editor) LabelTarget() (grid.Pos, bool) {
	if e.sel.Len() != 1 {
		return grid.Pos{}, false
	}
	p := e.sel.Positions()[0]
	c, ok := e.store.Lookup(e.nav.Floor, p)
	if !ok || !c.Explored || c.Locked {
		return grid.Pos{}, false
	}
	return p, true
}

// MovePlayer steps one cell along the facing direction, or against it when
// forward is false. In player mode the destination becomes explored.
func (e *Editor) MovePlayer(forward bool) {
	dir := -1
	if !forward {
		dir = 1
	}
	var dx, dy int
	switch e.nav.Rotation {
	case 0:
		dy = dir
	case 90:
		dx = dir
	case 180:
		dy = -dir
	case 270:
		dx = -dir
	}
	e.nav.Pos = e.nav.Pos.Add(dx, dy)
	if e.playerMode {
		e.store.Cell(e.nav.Floor, e.nav.Pos).Explored = true
	}
}

// Rotate turns by steps quarter turns. Positive steps turn left.
func (e *Editor) Rotate(steps int) {
	e.nav.Rotation = view.NormalizeRotation(e.nav.Rotation + 90*steps)
}

// PanCamera moves the camera by a screen-axis delta in cells.
func (e *Editor) PanCamera(dx, dy float64) {
	d := view.ScreenToGridDelta(cp.Vector{X: dx, Y: dy}, e.nav.Rotation)
	e.nav.Pan = e.nav.Pan.Add(d)
}

// DragCamera sets the pan for a drag that started at start and has since
// moved (dx, dy) pixels with cells cellPx pixels wide.
func (e *Editor) DragCamera(start cp.Vector, dx, dy, cellPx float64) {
	s := cellPx * e.nav.Zoom
	d := view.ScreenToGridDelta(cp.Vector{X: dx / s, Y: dy / s}, e.nav.Rotation)
	e.nav.Pan = start.Sub(d)
}

func (e *Editor) Zoom(step float64) {
	e.nav.Zoom = clampZoom(e.nav.Zoom + step)
}

func (e *Editor) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	e.nav.Zoom = clampZoom(e.nav.Zoom * factor)
}

func clampZoom(z float64) float64 {
	return min(MaxZoom, max(MinZoom, z))
}

// ChangeFloor moves delta floors up or down and clears the selection.
func (e *Editor) ChangeFloor(delta int) {
	e.Commit()
	e.nav.Floor += delta
	e.store.Floor(e.nav.Floor)
	e.sel.Clear()
}

func (e *Editor) TogglePlayerMode() bool {
	e.playerMode = !e.playerMode
	return e.playerMode
}

func (e *Editor) SetSelectedIcon(icon grid.Icon) {
	if icon.Valid() {
		e.icon = icon
	}
}

// MarkCurrent marks the current position with the selected icon as its own
// action. An open gesture is left open; if that gesture already changed the
// cell the mark joins it instead, so undo order stays consistent.
func (e *Editor) MarkCurrent() {
	if e.gesture.Touches(e.nav.Floor, e.nav.Pos) {
		e.MarkCell(e.nav.Pos, e.icon)
		return
	}
	open := e.gesture.Take()
	e.MarkCell(e.nav.Pos, e.icon)
	e.Commit()
	e.gesture.Resume(open)
}

// Transform returns the view transform for the current navigation state.
func (e *Editor) Transform(vp view.Viewport, cellSize float64) view.Transform {
	return view.Transform{
		Viewport: vp,
		CellSize: cellSize,
		Origin:   e.nav.Pos,
		Pan:      e.nav.Pan,
		Zoom:     e.nav.Zoom,
		Rotation: e.nav.Rotation,
	}
}

// Status is a one-line summary for the status bar.
func (e *Editor) Status() string {
	mode := "edit"
	if e.playerMode {
		mode = "player"
	}
	return fmt.Sprintf("Floor %d  Pos %s  Rot %d  Zoom %.1fx  %s  Icon %s",
		e.nav.Floor, e.nav.Pos, e.nav.Rotation, e.nav.Zoom, mode, e.icon)
}

// Save writes the current map to path.
func (e *Editor) Save(path string) error {
	e.Commit()
	return mapfile.Save(path, mapfile.Map{
		Store:    e.store,
		Floor:    e.nav.Floor,
		Pos:      e.nav.Pos,
		Rotation: e.nav.Rotation,
	})
}

// Load replaces the current map with the one at path. On error the current
// map is left untouched.
func (e *Editor) Load(path string) error {
	m, err := mapfile.Load(path, e.Home())
	if err != nil {
		return err
	}
	e.store = m.Store
	e.nav = Nav{Floor: m.Floor, Pos: m.Pos, Rotation: m.Rotation, Zoom: 1}
	e.log.Clear()
	e.gesture.Take()
	e.sel.Clear()
	logger.Log.WithFields(logrus.Fields{
		"floors": len(m.Store.Floors()),
		"floor":  m.Floor,
	}).Debug("editor state replaced")
	return nil
}
