package main

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/view"
)

func (m *Mapper) Draw(screen *ebiten.Image) {
	screen.Fill(m.palette.Background)

	tr := m.transform()
	m.drawGridLines(screen, tr)
	m.drawCells(screen, tr)
	m.drawSelection(screen, tr)
	m.drawPlayer(screen, tr)
	m.drawTitleBar(screen)

	m.ui.Draw(screen)
	m.prompt.Draw(screen, m.face)
	if m.showHelp {
		m.help.Draw(screen)
	}
}

func (m *Mapper) drawGridLines(screen *ebiten.Image, tr view.Transform) {
	s := tr.Scale()
	if s < 6 {
		return
	}
	top := float64(tr.Viewport.Top())
	w, h := float64(tr.Viewport.Width), float64(tr.Viewport.Height)
	cx, cy := tr.Viewport.Center()
	ox, oy := tr.GridToScreen(tr.ScreenToGrid(cx, cy))

	col := m.palette.Grid
	for x := math.Mod(ox-s/2, s); x < w; x += s {
		if x < 0 {
			continue
		}
		vector.StrokeLine(screen, float32(x), float32(top), float32(x), float32(h), 1, col, false)
	}
	startY := top + math.Mod(math.Mod(oy-s/2-top, s)+s, s)
	for y := startY; y < h; y += s {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, col, false)
	}
}

// cellRect is the screen rectangle of cell p. Rotation is always a multiple
// of 90 degrees, so cells stay axis aligned.
func cellRect(tr view.Transform, p grid.Pos) (x, y, s float32) {
	sx, sy := tr.GridToScreen(p)
	size := tr.Scale()
	return float32(sx - size/2), float32(sy - size/2), float32(size)
}

func (m *Mapper) drawCells(screen *ebiten.Image, tr view.Transform) {
	store := m.ed.Store()
	floor := m.ed.Nav().Floor
	top := float32(tr.Viewport.Top())
	w, h := float32(tr.Viewport.Width), float32(tr.Viewport.Height)

	for _, p := range store.Positions(floor) {
		c, _ := store.Lookup(floor, p)
		x, y, s := cellRect(tr, p)
		if x+s < 0 || y+s < top || x > w || y > h {
			continue
		}
		if c.Explored {
			vector.FillRect(screen, x+1, y+1, s-2, s-2, m.palette.Explored, false)
		}
		if st, ok := view.IconStyles[c.Icon]; ok && c.Explored {
			inset := s / 4
			vector.FillRect(screen, x+inset, y+inset, s-2*inset, s-2*inset, st.Color, false)
			if s >= 16 {
				m.drawText(screen, st.Glyph, m.small, float64(x+s/2-3), float64(y+s/2-6), color.Black)
			}
		}
		if c.Locked {
			vector.StrokeRect(screen, x+2, y+2, s-4, s-4, 2, m.palette.Locked, false)
		}
		if c.Label != "" && s >= 20 {
			m.drawText(screen, c.Label, m.small, float64(x), float64(y+s), m.palette.Label)
		}
	}
}

func (m *Mapper) drawSelection(screen *ebiten.Image, tr view.Transform) {
	for _, p := range m.ed.Selection().Positions() {
		x, y, s := cellRect(tr, p)
		vector.StrokeRect(screen, x, y, s, s, 2, m.palette.Selection, false)
	}

	if m.rangeStart == nil {
		return
	}
	// Quarter turns keep the range axis aligned, so the rotated corner
	// cells bound it exactly.
	cur := tr.ScreenToGrid(cursorF())
	ax, ay, s := cellRect(tr, *m.rangeStart)
	bx, by, _ := cellRect(tr, cur)
	x0, y0 := min(ax, bx), min(ay, by)
	x1, y1 := max(ax, bx)+s, max(ay, by)+s
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, m.palette.Selection, false)
}

// drawPlayer draws the cursor as a triangle. Forward is always screen-up
// because the map turns around the player.
func (m *Mapper) drawPlayer(screen *ebiten.Image, tr view.Transform) {
	sx, sy := tr.GridToScreen(m.ed.Nav().Pos)
	r := float32(tr.Scale() * 0.35)
	x, y := float32(sx), float32(sy)
	col := m.palette.Player
	vector.StrokeLine(screen, x, y-r, x-r, y+r, 2, col, true)
	vector.StrokeLine(screen, x-r, y+r, x+r, y+r, 2, col, true)
	vector.StrokeLine(screen, x+r, y+r, x, y-r, 2, col, true)
}

func (m *Mapper) drawTitleBar(screen *ebiten.Image) {
	h := float32(m.cfg.Chrome.TitleBar)
	if h <= 0 {
		return
	}
	vector.FillRect(screen, 0, 0, float32(m.width), h, m.palette.Panel, false)
	status := m.ed.Status()
	if m.savePath != "" {
		status += "  " + m.savePath
	}
	if m.ed.History().CanUndo() {
		status += "  (undo)"
	}
	m.drawText(screen, status, m.face, 8, float64(h)/2-8, color.White)

	if m.notice != "" && time.Now().Before(m.noticeUntil) {
		tw, _ := text.Measure(m.notice, m.face, 0)
		m.drawText(screen, m.notice, m.face, float64(m.width)-tw-8, float64(h)/2-8, colornames.Yellow)
	}
}

func (m *Mapper) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
