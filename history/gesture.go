package history

import "github.com/devin-hart/dungeon-crawltographer/grid"

// Gesture accumulates the deltas of an edit in progress until it is
// committed as one Action.
type Gesture struct {
	pending Action
}

func (g *Gesture) Record(d Delta) {
	g.pending = append(g.pending, d)
}

// Len is the number of deltas recorded since the last Take.
func (g *Gesture) Len() int {
	return len(g.pending)
}

// Touches reports whether a pending delta changed p on floor f.
func (g *Gesture) Touches(f int, p grid.Pos) bool {
	for _, d := range g.pending {
		if d.Floor == f && d.Pos == p {
			return true
		}
	}
	return false
}

// Resume puts a taken action back in front of whatever was recorded since,
// so the gesture carries on as if it had never been taken.
func (g *Gesture) Resume(a Action) {
	g.pending = append(a, g.pending...)
}

// Take returns the accumulated deltas and resets the gesture.
func (g *Gesture) Take() Action {
	a := g.pending
	g.pending = nil
	return a
}
