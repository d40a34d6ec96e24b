// Package view maps between grid coordinates and screen pixels for a
// rotatable, pannable, zoomable map view.
package view

import (
	"math"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/jakecoffman/cp"
)

// Viewport describes the window and the horizontal chrome bands reserved
// above the grid area.
type Viewport struct {
	Width, Height int

	TitleBar      int
	MenuBar       int
	IconPanel     int
	ShowIconPanel bool
}

// Top returns the first pixel row belonging to the grid area.
func (v Viewport) Top() int {
	top := v.TitleBar + v.MenuBar
	if v.ShowIconPanel {
		top += v.IconPanel
	}
	return top
}

// Center returns the pixel center of the grid area.
func (v Viewport) Center() (float64, float64) {
	top := v.Top()
	cx := v.Width / 2
	cy := (v.Height-top)/2 + top
	return float64(cx), float64(cy)
}

// InGrid reports whether the screen point lies below the chrome bands.
func (v Viewport) InGrid(sx, sy int) bool {
	return sy >= v.Top() && sx >= 0 && sx < v.Width && sy < v.Height
}

// Transform is a snapshot of the navigation state needed to convert
// coordinates. It holds no references and is cheap to rebuild every frame.
type Transform struct {
	Viewport Viewport
	CellSize float64

	Origin   grid.Pos
	Pan      cp.Vector
	Zoom     float64
	Rotation int
}

// NormalizeRotation folds deg into [0, 360).
func NormalizeRotation(deg int) int {
	return ((deg % 360) + 360) % 360
}

// rotor returns the unit vector (cos, sin) for deg. Quarter turns are exact
// so that repeated rotation never accumulates drift.
func rotor(deg int) cp.Vector {
	switch NormalizeRotation(deg) {
	case 0:
		return cp.Vector{X: 1, Y: 0}
	case 90:
		return cp.Vector{X: 0, Y: 1}
	case 180:
		return cp.Vector{X: -1, Y: 0}
	case 270:
		return cp.Vector{X: 0, Y: -1}
	}
	return cp.ForAngle(float64(deg) * math.Pi / 180)
}

// ScreenToGridDelta rotates a screen-axis vector into grid axes.
func ScreenToGridDelta(d cp.Vector, rotation int) cp.Vector {
	return d.Unrotate(rotor(rotation))
}

// GridToScreenDelta rotates a grid-axis vector into screen axes.
func GridToScreenDelta(d cp.Vector, rotation int) cp.Vector {
	return d.Rotate(rotor(rotation))
}

// Scale is the on-screen size of one cell in pixels.
func (t Transform) Scale() float64 {
	return t.CellSize * t.Zoom
}

// ScreenToGrid returns the cell under the screen point.
func (t Transform) ScreenToGrid(sx, sy float64) grid.Pos {
	cx, cy := t.Viewport.Center()
	s := t.Scale()
	off := cp.Vector{X: (sx - cx) / s, Y: (sy - cy) / s}
	r := ScreenToGridDelta(off, t.Rotation)

	gx := float64(t.Origin.X) + r.X - t.Pan.X
	gy := float64(t.Origin.Y) + r.Y - t.Pan.Y
	return grid.Pos{X: int(math.RoundToEven(gx)), Y: int(math.RoundToEven(gy))}
}

// GridToScreen returns the screen position of the center of cell p.
func (t Transform) GridToScreen(p grid.Pos) (float64, float64) {
	return t.gridToScreen(p, true)
}

// GridToScreenUnrotated is GridToScreen without the rotation step, for
// overlays that stay aligned to the screen.
func (t Transform) GridToScreenUnrotated(p grid.Pos) (float64, float64) {
	return t.gridToScreen(p, false)
}

func (t Transform) gridToScreen(p grid.Pos, rotate bool) (float64, float64) {
	off := cp.Vector{
		X: float64(p.X-t.Origin.X) + t.Pan.X,
		Y: float64(p.Y-t.Origin.Y) + t.Pan.Y,
	}
	if rotate {
		off = GridToScreenDelta(off, t.Rotation)
	}
	cx, cy := t.Viewport.Center()
	s := t.Scale()
	return cx + off.X*s, cy + off.Y*s
}
