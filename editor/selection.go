package editor

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

// Selection is the set of selected coordinates on the current floor.
type Selection struct {
	set mapset.Set[grid.Pos]
}

func NewSelection() *Selection {
	return &Selection{set: mapset.New[grid.Pos]()}
}

func (s *Selection) Add(p grid.Pos) {
	s.set.Put(p)
}

func (s *Selection) Remove(p grid.Pos) {
	s.set.Remove(p)
}

func (s *Selection) Has(p grid.Pos) bool {
	return s.set.Has(p)
}

// AddRect adds every coordinate of the rectangle spanned by a and b,
// inclusive on both ends.
func (s *Selection) AddRect(a, b grid.Pos) {
	lo, hi := grid.Rect(a, b)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			s.set.Put(grid.Pos{X: x, Y: y})
		}
	}
}

func (s *Selection) Clear() {
	s.set = mapset.New[grid.Pos]()
}

func (s *Selection) Len() int {
	return s.set.Size()
}

// Positions returns the selection in row-major order.
func (s *Selection) Positions() []grid.Pos {
	out := make([]grid.Pos, 0, s.set.Size())
	s.set.Each(func(p grid.Pos) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Bounds returns the smallest rectangle covering the selection.
func (s *Selection) Bounds() (lo, hi grid.Pos, ok bool) {
	first := true
	s.set.Each(func(p grid.Pos) {
		if first {
			lo, hi, first = p, p, false
			return
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	})
	return lo, hi, !first
}
