package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/devin-hart/dungeon-crawltographer/editor"
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/view"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (m *Mapper) handleHelpKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		m.showHelp = false
	}
}

func (m *Mapper) handleKeys() {
	pressed := inpututil.IsKeyJustPressed
	ed := m.ed

	if ctrlPressed() {
		switch {
		case pressed(ebiten.KeyZ):
			ed.Undo()
		case pressed(ebiten.KeyY):
			ed.Redo()
		case pressed(ebiten.KeyS):
			m.saveMap()
		case pressed(ebiten.KeyO), pressed(ebiten.KeyL):
			m.openMap()
		case pressed(ebiten.KeyN):
			ed.NewMap()
			m.savePath = ""
		case pressed(ebiten.KeyC):
			if clip := ed.CopySelection(); len(clip) > 0 {
				m.clip.Put(clip)
				m.notify("Copied cells")
			}
		case pressed(ebiten.KeyV):
			m.paste()
		}
		return
	}

	switch {
	case pressed(ebiten.KeyW):
		ed.MovePlayer(true)
	case pressed(ebiten.KeyS):
		ed.MovePlayer(false)
	case pressed(ebiten.KeyA):
		ed.Rotate(1)
	case pressed(ebiten.KeyD):
		ed.Rotate(-1)
	case pressed(ebiten.KeyArrowUp):
		ed.PanCamera(0, -1)
	case pressed(ebiten.KeyArrowDown):
		ed.PanCamera(0, 1)
	case pressed(ebiten.KeyArrowLeft):
		ed.PanCamera(-1, 0)
	case pressed(ebiten.KeyArrowRight):
		ed.PanCamera(1, 0)
	case pressed(ebiten.KeyEqual), pressed(ebiten.KeyNumpadAdd):
		ed.Zoom(editor.ZoomStep)
	case pressed(ebiten.KeyMinus), pressed(ebiten.KeyNumpadSubtract):
		ed.Zoom(-editor.ZoomStep)
	case pressed(ebiten.KeyPageUp):
		ed.ChangeFloor(1)
	case pressed(ebiten.KeyPageDown):
		ed.ChangeFloor(-1)
	case pressed(ebiten.KeyL):
		m.startLabel()
	case pressed(ebiten.KeyK):
		ed.ToggleLockOnSelection()
	case pressed(ebiten.KeyP):
		if ed.TogglePlayerMode() {
			m.notify("Player mode on")
		} else {
			m.notify("Player mode off")
		}
	case pressed(ebiten.KeyI):
		m.cfg.Chrome.ShowIconPanel = !m.cfg.Chrome.ShowIconPanel
		m.rebuildUI()
	case pressed(ebiten.KeyH), pressed(ebiten.KeyF1):
		m.showHelp = true
	case pressed(ebiten.KeyF5):
		m.promptMacro()
	case pressed(ebiten.KeyF11):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case pressed(ebiten.KeyEnter):
		ed.ApplyToSelection(editor.ButtonMark)
		ed.Commit()
	case pressed(ebiten.KeyDelete):
		ed.ApplyToSelection(editor.ButtonErase)
		ed.Commit()
	case pressed(ebiten.KeyEscape):
		ed.ClearSelection()
	}

	icons := grid.Icons()
	for i, k := range digitKeys {
		if pressed(k) && i < len(icons) {
			ed.SetSelectedIcon(icons[i])
		}
	}
}

func (m *Mapper) paste() {
	clip := m.clip.Get()
	if len(clip) == 0 {
		return
	}
	at := m.transform().ScreenToGrid(cursorF())
	n := m.ed.Paste(clip, at)
	m.notify(fmt.Sprintf("Pasted %d cells", n))
}

func cursorF() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// handleMouse turns pointer input into edit gestures. A gesture is
// committed when its button is released.
func (m *Mapper) handleMouse(tr view.Transform) {
	mx, my := ebiten.CursorPosition()
	inGrid := tr.Viewport.InGrid(mx, my)
	cell := tr.ScreenToGrid(float64(mx), float64(my))
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ed := m.ed

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inGrid {
		switch {
		case shift:
			start := cell
			m.rangeStart = &start
		case ctrlPressed():
			ed.ToggleSelect(cell)
		default:
			m.leftDown = true
			m.lastCell = cell
			ed.Click(cell, editor.ButtonMark, false)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inGrid {
		m.rightDown = true
		m.lastCell = cell
		ed.Click(cell, editor.ButtonErase, shift)
	}

	if inGrid && cell != m.lastCell {
		switch {
		case m.leftDown:
			ed.Click(cell, editor.ButtonMark, true)
			m.lastCell = cell
		case m.rightDown:
			ed.Click(cell, editor.ButtonErase, true)
			m.lastCell = cell
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if m.rangeStart != nil {
			ed.SelectRange(*m.rangeStart, cell, ctrlPressed())
			m.rangeStart = nil
		}
		m.leftDown = false
		ed.Commit()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		m.rightDown = false
		ed.Commit()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		m.panning = true
		m.panFromX, m.panFromY = mx, my
		m.panFrom = ed.Nav().Pan
	}
	if m.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		ed.DragCamera(m.panFrom, float64(mx-m.panFromX), float64(my-m.panFromY), float64(m.cfg.CellSize))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		m.panning = false
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		ed.ZoomBy(editor.ZoomFactor)
	} else if wy < 0 {
		ed.ZoomBy(1 / editor.ZoomFactor)
	}
}
