package view

import (
	"fmt"
	"math"
	"testing"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/jakecoffman/cp"
)

func testViewport() Viewport {
	return Viewport{Width: 1280, Height: 800, TitleBar: 30, MenuBar: 30, IconPanel: 70, ShowIconPanel: true}
}

func TestViewportCenter(t *testing.T) {
	v := testViewport()
	cx, cy := v.Center()
	if cx != 640 {
		t.Fatalf("expected cx 640, got %v", cx)
	}
	// (800-130)/2 + 130
	if cy != 465 {
		t.Fatalf("expected cy 465, got %v", cy)
	}

	v.ShowIconPanel = false
	_, cy = v.Center()
	if cy != 430 {
		t.Fatalf("expected cy 430 without icon panel, got %v", cy)
	}
}

func TestRoundTrip(t *testing.T) {
	positions := []grid.Pos{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 53, Y: 47}, {X: -12, Y: 8}, {X: 101, Y: -7}}
	zooms := []float64{0.3, 1.0, 1.7, 3.0}
	rotations := []int{0, 90, 180, 270}
	pans := []cp.Vector{{X: 0, Y: 0}, {X: 3, Y: -2}, {X: -1.5, Y: 0.25}}

	for _, rot := range rotations {
		for _, z := range zooms {
			for _, pan := range pans {
				tr := Transform{
					Viewport: testViewport(),
					CellSize: 32,
					Origin:   grid.Pos{X: 50, Y: 50},
					Pan:      pan,
					Zoom:     z,
					Rotation: rot,
				}
				for _, p := range positions {
					name := fmt.Sprintf("rot%d_zoom%.1f_pan%v_%v", rot, z, pan, p)
					sx, sy := tr.GridToScreen(p)
					if got := tr.ScreenToGrid(sx, sy); got != p {
						t.Fatalf("%s: expected %v, got %v", name, p, got)
					}

					// Screen points inside a cell map back to within half a cell.
					qx, qy := sx+tr.Scale()*0.3, sy-tr.Scale()*0.2
					g := tr.ScreenToGrid(qx, qy)
					bx, by := tr.GridToScreen(g)
					if math.Abs(bx-qx) > tr.Scale()/2+1e-9 || math.Abs(by-qy) > tr.Scale()/2+1e-9 {
						t.Fatalf("%s: screen point (%v,%v) came back as (%v,%v)", name, qx, qy, bx, by)
					}
				}
			}
		}
	}
}

func TestRotationDirections(t *testing.T) {
	tr := Transform{Viewport: testViewport(), CellSize: 10, Origin: grid.Pos{}, Zoom: 1}
	cx, cy := tr.Viewport.Center()

	cases := []struct {
		rot    int
		cell   grid.Pos
		dx, dy float64
	}{
		{0, grid.Pos{X: 1, Y: 0}, 10, 0},
		{90, grid.Pos{X: 1, Y: 0}, 0, 10},
		{180, grid.Pos{X: 1, Y: 0}, -10, 0},
		{270, grid.Pos{X: 1, Y: 0}, 0, -10},
		{90, grid.Pos{X: -1, Y: 0}, 0, -10},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("rot%d_%v", c.rot, c.cell), func(t *testing.T) {
			tr.Rotation = c.rot
			sx, sy := tr.GridToScreen(c.cell)
			if math.Abs(sx-cx-c.dx) > 1e-9 || math.Abs(sy-cy-c.dy) > 1e-9 {
				t.Fatalf("expected offset (%v,%v), got (%v,%v)", c.dx, c.dy, sx-cx, sy-cy)
			}
		})
	}
}

func TestUnrotatedIgnoresRotation(t *testing.T) {
	tr := Transform{Viewport: testViewport(), CellSize: 20, Origin: grid.Pos{X: 4, Y: 4}, Zoom: 1.5, Rotation: 90}
	ux, uy := tr.GridToScreenUnrotated(grid.Pos{X: 6, Y: 3})
	tr.Rotation = 0
	rx, ry := tr.GridToScreen(grid.Pos{X: 6, Y: 3})
	if ux != rx || uy != ry {
		t.Fatalf("expected unrotated (%v,%v) to equal rotation-0 (%v,%v)", ux, uy, rx, ry)
	}
}

func TestNormalizeRotation(t *testing.T) {
	cases := map[int]int{0: 0, 90: 90, 360: 0, -90: 270, 450: 90, -360: 0}
	for in, want := range cases {
		if got := NormalizeRotation(in); got != want {
			t.Fatalf("NormalizeRotation(%d): expected %d, got %d", in, want, got)
		}
	}
}

// A grid rectangle stays an axis-aligned screen rectangle under quarter-turn
// rotation, so a marquee spanning the rotated corner cells covers exactly the
// cells of the range.
func TestRotatedRangeIsAxisAligned(t *testing.T) {
	a, b := grid.Pos{X: 48, Y: 47}, grid.Pos{X: 53, Y: 51}
	for _, rot := range []int{0, 90, 180, 270} {
		tr := Transform{
			Viewport: testViewport(),
			CellSize: 32,
			Origin:   grid.Pos{X: 50, Y: 50},
			Pan:      cp.Vector{X: 1.5, Y: -2},
			Zoom:     1,
			Rotation: rot,
		}
		s := tr.Scale()
		ax, ay := tr.GridToScreen(a)
		bx, by := tr.GridToScreen(b)
		x0, x1 := math.Min(ax, bx)-s/2, math.Max(ax, bx)+s/2
		y0, y1 := math.Min(ay, by)-s/2, math.Max(ay, by)+s/2

		cols, rows := float64(b.X-a.X+1), float64(b.Y-a.Y+1)
		if rot == 90 || rot == 270 {
			cols, rows = rows, cols
		}
		if w, h := x1-x0, y1-y0; math.Abs(w-cols*s) > 1e-9 || math.Abs(h-rows*s) > 1e-9 {
			t.Fatalf("rot %d: expected %vx%v marquee, got %vx%v", rot, cols*s, rows*s, w, h)
		}
		for x := a.X; x <= b.X; x++ {
			for y := a.Y; y <= b.Y; y++ {
				cx, cy := tr.GridToScreen(grid.Pos{X: x, Y: y})
				if cx < x0 || cx > x1 || cy < y0 || cy > y1 {
					t.Fatalf("rot %d: cell %d,%d at (%v,%v) outside marquee", rot, x, y, cx, cy)
				}
			}
		}
		if rot == 0 {
			ux, uy := tr.GridToScreenUnrotated(a)
			if ux != ax || uy != ay {
				t.Fatalf("expected unrotated variant to agree at rotation 0")
			}
		}
	}
}
