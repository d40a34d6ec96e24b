// Package history implements the bounded linear undo/redo log of cell edits.
package history

import "github.com/devin-hart/dungeon-crawltographer/grid"

// MaxActions is the default number of actions a Log retains.
const MaxActions = 100

// Delta records one cell change. A nil Prev means the cell did not exist
// before the change; a nil Next means the change deleted it.
type Delta struct {
	Floor int
	Pos   grid.Pos
	Prev  *grid.Cell
	Next  *grid.Cell
}

// Action is one undoable batch of deltas, in the order they were made.
type Action []Delta

// Target is the cell storage an Action is replayed against.
type Target interface {
	Set(floor int, p grid.Pos, c grid.Cell)
	Delete(floor int, p grid.Pos) bool
}

// Revert restores every Prev snapshot, newest delta first.
func (a Action) Revert(t Target) {
	for i := len(a) - 1; i >= 0; i-- {
		restore(t, a[i].Floor, a[i].Pos, a[i].Prev)
	}
}

// Apply replays every Next snapshot in recording order.
func (a Action) Apply(t Target) {
	for _, d := range a {
		restore(t, d.Floor, d.Pos, d.Next)
	}
}

func restore(t Target, floor int, p grid.Pos, c *grid.Cell) {
	if c == nil {
		t.Delete(floor, p)
		return
	}
	t.Set(floor, p, *c)
}

// Snapshot copies c so later edits to the stored cell do not leak into the
// history. A nil cell stays nil.
func Snapshot(c *grid.Cell) *grid.Cell {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// Log is a bounded list of actions with a cursor at the last applied one.
type Log struct {
	actions  []Action
	index    int
	capacity int
}

// NewLog returns an empty log holding at most capacity actions; a
// non-positive capacity selects MaxActions.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = MaxActions
	}
	return &Log{index: -1, capacity: capacity}
}

// Push appends a as the newest action. Actions after the cursor are
// discarded first; when the log is full the oldest action is evicted.
// Empty actions are ignored.
func (l *Log) Push(a Action) {
	if len(a) == 0 {
		return
	}
	l.actions = append(l.actions[:l.index+1], a)
	if len(l.actions) > l.capacity {
		l.actions[0] = nil
		l.actions = l.actions[1:]
	} else {
		l.index++
	}
}

// Undo returns the action at the cursor and moves the cursor back. It
// reports false when there is nothing to undo.
func (l *Log) Undo() (Action, bool) {
	if l.index < 0 {
		return nil, false
	}
	a := l.actions[l.index]
	l.index--
	return a, true
}

// Redo moves the cursor forward and returns the action it now points at.
// It reports false when the cursor is already at the newest action.
func (l *Log) Redo() (Action, bool) {
	if l.index >= len(l.actions)-1 {
		return nil, false
	}
	l.index++
	return l.actions[l.index], true
}

func (l *Log) CanUndo() bool { return l.index >= 0 }

func (l *Log) CanRedo() bool { return l.index < len(l.actions)-1 }

// Len is the number of retained actions.
func (l *Log) Len() int { return len(l.actions) }

// Index is the position of the last applied action, -1 when none.
func (l *Log) Index() int { return l.index }

func (l *Log) Capacity() int { return l.capacity }

// Clear drops every action.
func (l *Log) Clear() {
	l.actions = nil
	l.index = -1
}
