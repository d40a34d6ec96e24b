package view

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

// IconStyle is how an icon is drawn inside its cell.
type IconStyle struct {
	Glyph string
	Color color.RGBA
}

// IconStyles has an entry for every icon except IconNone.
var IconStyles = map[grid.Icon]IconStyle{
	grid.IconEntrance:   {"E", colornames.Limegreen},
	grid.IconChest:      {"C", colornames.Gold},
	grid.IconDoor:       {"D", colornames.Saddlebrown},
	grid.IconStairsUp:   {"^", colornames.Lightskyblue},
	grid.IconStairsDown: {"v", colornames.Steelblue},
	grid.IconBoss:       {"B", colornames.Crimson},
	grid.IconNPC:        {"N", colornames.Mediumpurple},
	grid.IconSwitch:     {"S", colornames.Orange},
	grid.IconTrap:       {"T", colornames.Tomato},
	grid.IconSave:       {"*", colornames.Aqua},
}
