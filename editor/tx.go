package editor

import "github.com/devin-hart/dungeon-crawltographer/grid"

// Tx batches edits on the current floor into a single action. It is only
// valid inside the function passed to Edit.
type Tx struct {
	e *Editor
}

func (tx *Tx) Mark(p grid.Pos, icon grid.Icon) { tx.e.MarkCell(p, icon) }

func (tx *Tx) Erase(p grid.Pos) { tx.e.EraseCell(p) }

func (tx *Tx) Label(p grid.Pos, text string) {
	if r := []rune(text); len(r) > LabelMax {
		text = string(r[:LabelMax])
	}
	tx.e.setLabel(tx.e.nav.Floor, p, text)
}

func (tx *Tx) Lock(p grid.Pos, locked bool) { tx.e.setLocked(tx.e.nav.Floor, p, locked) }

func (tx *Tx) Editor() *Editor { return tx.e }

// Edit runs fn and commits everything it changed as one action. If fn
// returns an error the changes are reverted and nothing is recorded.
func (e *Editor) Edit(fn func(tx *Tx) error) error {
	e.Commit()
	if err := fn(&Tx{e: e}); err != nil {
		e.Discard()
		return err
	}
	e.Commit()
	return nil
}
