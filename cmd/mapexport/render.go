package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/view"
)

// Options controls Render.
type Options struct {
	CellSize int
	// Outline is the thickness in pixels of the border traced around the
	// explored region. Zero disables it.
	Outline int
	Palette config.Palette
}

// Render draws the explored cells of floor f. The image is cropped to the
// explored bounds plus one cell of margin; an empty floor yields a single
// background cell.
func Render(s *grid.Store, f int, opt Options) *image.RGBA {
	if opt.CellSize < 1 {
		opt.CellSize = 1
	}
	cs := opt.CellSize

	var lo, hi grid.Pos
	explored := make([]grid.Pos, 0, s.Len(f))
	for _, p := range s.Positions(f) {
		if c, ok := s.Lookup(f, p); ok && c.Explored {
			explored = append(explored, p)
		}
	}
	for i, p := range explored {
		if i == 0 {
			lo, hi = p, p
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	origin := lo.Add(-1, -1)
	cols, rows := hi.X-lo.X+3, hi.Y-lo.Y+3
	if len(explored) == 0 {
		origin, cols, rows = grid.Pos{}, 1, 1
	}

	rect := image.Rect(0, 0, cols*cs, rows*cs)
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, &image.Uniform{opt.Palette.Background}, image.Point{}, draw.Src)

	cellRect := func(p grid.Pos) image.Rectangle {
		d := p.Sub(origin)
		return image.Rect(d.X*cs, d.Y*cs, d.X*cs+cs, d.Y*cs+cs)
	}

	// Explored area on its own layer so the outline can be traced from it.
	area := image.NewRGBA(rect)
	for _, p := range explored {
		draw.Draw(area, cellRect(p), &image.Uniform{opt.Palette.Explored}, image.Point{}, draw.Src)
	}
	if opt.Outline > 0 {
		border := outline(area, opt.Outline, opt.Palette.Grid)
		draw.Draw(img, rect, border, image.Point{}, draw.Over)
	}
	draw.Draw(img, rect, area, image.Point{}, draw.Over)

	d := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	for _, p := range explored {
		c, _ := s.Lookup(f, p)
		r := cellRect(p)
		if g, ok := view.IconStyles[c.Icon]; ok {
			inset := cs / 4
			draw.Draw(img, r.Inset(inset), &image.Uniform{g.Color}, image.Point{}, draw.Src)
			if cs >= 16 {
				d.Src = image.NewUniform(color.Black)
				d.Dot = fixed.P(r.Min.X+cs/2-3, r.Min.Y+cs/2+4)
				d.DrawString(g.Glyph)
			}
		}
		if c.Locked {
			strokeRect(img, r.Inset(2), opt.Palette.Locked)
		}
		if c.Label != "" && cs >= 20 {
			d.Src = image.NewUniform(opt.Palette.Label)
			d.Dot = fixed.P(r.Min.X+1, r.Max.Y-2)
			d.DrawString(c.Label)
		}
	}
	return img
}

// outline returns pixels within thickness of an opaque pixel of src that are
// not opaque themselves.
func outline(src *image.RGBA, thickness int, col color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(b)

	opaque := func(x, y int) bool {
		return src.Pix[src.PixOffset(x+b.Min.X, y+b.Min.Y)+3] != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if opaque(x, y) {
				continue
			}
			found := false
			for yy := max(y-thickness, 0); yy <= min(y+thickness, h-1) && !found; yy++ {
				for xx := max(x-thickness, 0); xx <= min(x+thickness, w-1); xx++ {
					if opaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(x+b.Min.X, y+b.Min.Y, col)
			}
		}
	}
	return out
}

func strokeRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, col)
		img.SetRGBA(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, col)
		img.SetRGBA(r.Max.X-1, y, col)
	}
}
