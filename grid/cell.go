package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is the state of one grid coordinate on one floor. The zero value is an
// unexplored, unlabelled, unlocked cell with no icon.
type Cell struct {
	Explored bool
	Icon     Icon
	Label    string
	Locked   bool
}

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}

func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

// String formats p as "x,y", the key form used in map files.
func (p Pos) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePos parses the "x,y" form produced by String.
func ParsePos(s string) (Pos, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Pos{}, fmt.Errorf("grid: position %q: missing comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Pos{}, fmt.Errorf("grid: position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Pos{}, fmt.Errorf("grid: position %q: %w", s, err)
	}
	return Pos{X: x, Y: y}, nil
}

// Less orders positions row-major (y, then x).
func (p Pos) Less(o Pos) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Rect returns the inclusive rectangle spanned by two corners, normalised so
// that lo <= hi on both axes.
func Rect(a, b Pos) (lo, hi Pos) {
	lo, hi = a, b
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	return lo, hi
}

// Clip is a set of cells keyed by offsets from an anchor, used to move a
// region between positions or floors.
type Clip map[Pos]Cell
