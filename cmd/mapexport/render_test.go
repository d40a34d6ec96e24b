package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/grid"
)

func testPalette() config.Palette {
	return config.Default().Palette()
}

func TestRenderBounds(t *testing.T) {
	s := grid.NewStore()
	s.Set(0, grid.Pos{X: 10, Y: 10}, grid.Cell{Explored: true})
	s.Set(0, grid.Pos{X: 12, Y: 11}, grid.Cell{Explored: true, Icon: grid.IconChest})
	// unexplored cells do not widen the image
	s.Set(0, grid.Pos{X: 40, Y: 40}, grid.Cell{})

	img := Render(s, 0, Options{CellSize: 8, Palette: testPalette()})
	// 3 columns + margin each side, 2 rows + margin each side
	if got, want := img.Bounds(), image.Rect(0, 0, 5*8, 4*8); got != want {
		t.Fatalf("expected bounds %v, got %v", want, got)
	}

	p := testPalette()
	// cell (10,10) sits at column 1, row 1
	if got := img.RGBAAt(8+1, 8+1); got != p.Explored {
		t.Fatalf("expected explored colour %v, got %v", p.Explored, got)
	}
	if got := img.RGBAAt(1, 1); got != p.Background {
		t.Fatalf("expected background in the margin, got %v", got)
	}
	// chest at (12,11) is column 3, row 2; its centre is icon coloured
	if got := img.RGBAAt(3*8+4, 2*8+4); got == p.Explored || got == p.Background {
		t.Fatalf("expected an icon fill at the chest, got %v", got)
	}
}

func TestRenderEmptyFloor(t *testing.T) {
	img := Render(grid.NewStore(), 3, Options{CellSize: 16, Palette: testPalette()})
	if got, want := img.Bounds(), image.Rect(0, 0, 16, 16); got != want {
		t.Fatalf("expected bounds %v, got %v", want, got)
	}
}

func TestOutline(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	src.SetRGBA(2, 2, color.RGBA{0xff, 0xff, 0xff, 0xff})
	red := color.RGBA{0xff, 0, 0, 0xff}

	out := outline(src, 1, red)
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, color.RGBA{}},
		{1, 1, red},
		{3, 2, red},
		{0, 0, color.RGBA{}},
		{4, 4, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := out.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Fatalf("expected %v at (%d,%d), got %v", tt.want, tt.x, tt.y, got)
		}
	}
}
