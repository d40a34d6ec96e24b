package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

// IconPalette is the radio group of icon buttons below the menu bar.
type IconPalette struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	icons   []grid.Icon
	current grid.Icon
	set     bool
}

// SetIcon highlights icon's button when hotkeys change the selection.
func (p *IconPalette) SetIcon(icon grid.Icon) {
	if p == nil || (p.set && p.current == icon) {
		return
	}
	for i, ic := range p.icons {
		if ic == icon {
			p.current, p.set = icon, true
			p.group.SetActive(p.buttons[i])
			return
		}
	}
}

type menuItem struct {
	name   string
	action func()
}

func (m *Mapper) menuItems() []menuItem {
	return []menuItem{
		{"New", m.ed.NewMap},
		{"Open", m.openMap},
		{"Save", m.saveMap},
		{"Undo", func() { m.ed.Undo() }},
		{"Redo", func() { m.ed.Redo() }},
		{"Floor +", func() { m.ed.ChangeFloor(1) }},
		{"Floor -", func() { m.ed.ChangeFloor(-1) }},
		{"Player", func() { m.ed.TogglePlayerMode() }},
		{"Macro", m.promptMacro},
		{"Help", func() { m.showHelp = !m.showHelp }},
	}
}

// buildUI lays out the menu bar and, when enabled, the icon palette under
// the title bar.
func (m *Mapper) buildUI(face *text.GoTextFace) (*ebitenui.UI, *IconPalette) {
	var f text.Face = face
	chrome := m.cfg.Chrome

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: chrome.TitleBar}),
		)),
	)

	menu := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(m.palette.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 3, Bottom: 3, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(m.width, chrome.MenuBar)),
	)
	for _, item := range m.menuItems() {
		action := item.action
		menu.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(item.name, &f, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, chrome.MenuBar-6)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				if !m.prompt.IsOpen() {
					action()
				}
			}),
		))
	}
	root.AddChild(menu)

	if !chrome.ShowIconPanel {
		return &ebitenui.UI{Container: root}, nil
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{24, 24, 32, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(m.width, chrome.IconPanel)),
	)

	palette := &IconPalette{icons: grid.Icons()}
	for i, icon := range palette.icons {
		name := icon.String()
		if i < 10 {
			name = string(rune('0'+i)) + " " + name
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(name, &f, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, chrome.IconPanel-16)),
		)
		palette.buttons = append(palette.buttons, btn)
		panel.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(palette.buttons))
	for _, b := range palette.buttons {
		elements = append(elements, b)
	}
	palette.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range palette.buttons {
				if args.Active == b {
					palette.current, palette.set = palette.icons[i], true
					m.ed.SetSelectedIcon(palette.icons[i])
					return
				}
			}
		}),
	)
	palette.SetIcon(m.ed.SelectedIcon())
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, palette
}
