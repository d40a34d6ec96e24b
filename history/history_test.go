package history

import (
	"testing"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

func cellPtr(c grid.Cell) *grid.Cell {
	return &c
}

func action(x int) Action {
	return Action{{Pos: grid.Pos{X: x}, Next: cellPtr(grid.Cell{Explored: true})}}
}

func TestLogUndoRedoCursor(t *testing.T) {
	l := NewLog(0)
	if l.Capacity() != MaxActions {
		t.Fatalf("expected default capacity %d, got %d", MaxActions, l.Capacity())
	}
	if _, ok := l.Undo(); ok {
		t.Fatalf("expected undo on empty log to be a no-op")
	}

	l.Push(action(1))
	l.Push(action(2))
	l.Push(nil)
	if l.Len() != 2 || l.Index() != 1 {
		t.Fatalf("expected len 2 index 1, got len %d index %d", l.Len(), l.Index())
	}

	a, ok := l.Undo()
	if !ok || a[0].Pos.X != 2 {
		t.Fatalf("expected to undo action 2, got %v ok=%v", a, ok)
	}
	a, ok = l.Redo()
	if !ok || a[0].Pos.X != 2 {
		t.Fatalf("expected to redo action 2, got %v ok=%v", a, ok)
	}
	if _, ok := l.Redo(); ok {
		t.Fatalf("expected redo at tail to be a no-op")
	}

	l.Undo()
	l.Undo()
	if _, ok := l.Undo(); ok {
		t.Fatalf("expected undo past start to be a no-op")
	}
	if l.Index() != -1 {
		t.Fatalf("expected index -1, got %d", l.Index())
	}
}

func TestLogBranchDiscard(t *testing.T) {
	l := NewLog(10)
	for i := 1; i <= 4; i++ {
		l.Push(action(i))
	}
	l.Undo()
	l.Undo()
	l.Push(action(9))

	if l.Len() != 3 {
		t.Fatalf("expected 3 actions after branch, got %d", l.Len())
	}
	if l.CanRedo() {
		t.Fatalf("expected redo to be unavailable after a new action")
	}
	if _, ok := l.Redo(); ok {
		t.Fatalf("expected redo to be a no-op")
	}
	a, _ := l.Undo()
	if a[0].Pos.X != 9 {
		t.Fatalf("expected newest action 9, got %d", a[0].Pos.X)
	}
}

func TestLogEviction(t *testing.T) {
	l := NewLog(0)
	for i := 1; i <= MaxActions+1; i++ {
		l.Push(action(i))
	}
	if l.Len() != MaxActions {
		t.Fatalf("expected %d actions, got %d", MaxActions, l.Len())
	}
	if l.Index() != MaxActions-1 {
		t.Fatalf("expected index %d, got %d", MaxActions-1, l.Index())
	}

	var last Action
	n := 0
	for {
		a, ok := l.Undo()
		if !ok {
			break
		}
		last = a
		n++
	}
	if n != MaxActions {
		t.Fatalf("expected %d undos, got %d", MaxActions, n)
	}
	if last[0].Pos.X != 2 {
		t.Fatalf("expected oldest surviving action 2, got %d", last[0].Pos.X)
	}
}

func TestActionRevertApply(t *testing.T) {
	s := grid.NewStore()
	p := grid.Pos{X: 5, Y: 5}

	// create, overwrite, erase
	chest := grid.Cell{Explored: true, Icon: grid.IconChest}
	boss := grid.Cell{Explored: true, Icon: grid.IconBoss, Label: "big", Locked: true}
	a := Action{
		{Pos: p, Prev: nil, Next: cellPtr(chest)},
		{Pos: p, Prev: cellPtr(chest), Next: cellPtr(boss)},
		{Floor: 2, Pos: p, Prev: nil, Next: cellPtr(boss)},
	}

	a.Apply(s)
	got, ok := s.Lookup(0, p)
	if !ok || *got != boss {
		t.Fatalf("expected boss after apply, got %+v ok=%v", got, ok)
	}
	if got, ok := s.Lookup(2, p); !ok || *got != boss {
		t.Fatalf("expected boss on floor 2 after apply, got %+v ok=%v", got, ok)
	}

	a.Revert(s)
	if _, ok := s.Lookup(0, p); ok {
		t.Fatalf("expected cell removed after revert")
	}
	if _, ok := s.Lookup(2, p); ok {
		t.Fatalf("expected floor 2 cell removed after revert")
	}
}

func TestSnapshotCopies(t *testing.T) {
	c := &grid.Cell{Label: "a"}
	snap := Snapshot(c)
	c.Label = "b"
	if snap.Label != "a" {
		t.Fatalf("expected snapshot label a, got %q", snap.Label)
	}
	if Snapshot(nil) != nil {
		t.Fatalf("expected nil snapshot of nil cell")
	}
}

func TestGestureTake(t *testing.T) {
	var g Gesture
	g.Record(Delta{Pos: grid.Pos{X: 1}})
	g.Record(Delta{Pos: grid.Pos{X: 2}})
	if g.Len() != 2 {
		t.Fatalf("expected 2 pending deltas, got %d", g.Len())
	}
	a := g.Take()
	if len(a) != 2 || g.Len() != 0 {
		t.Fatalf("expected take to return 2 and reset, got %d/%d", len(a), g.Len())
	}
}
