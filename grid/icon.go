package grid

// Icon is the semantic marker placed on a cell.
type Icon uint8

const (
	IconNone Icon = iota
	IconEntrance
	IconChest
	IconDoor
	IconStairsUp
	IconStairsDown
	IconBoss
	IconNPC
	IconSwitch
	IconTrap
	IconSave

	iconCount
)

// iconTags are the persisted tag strings, indexed by Icon.
var iconTags = [iconCount]string{
	IconNone:       "none",
	IconEntrance:   "entrance",
	IconChest:      "chest",
	IconDoor:       "door",
	IconStairsUp:   "stairs_up",
	IconStairsDown: "stairs_down",
	IconBoss:       "boss",
	IconNPC:        "npc",
	IconSwitch:     "switch",
	IconTrap:       "trap",
	IconSave:       "save",
}

func (i Icon) String() string {
	if !i.Valid() {
		return "unknown"
	}
	return iconTags[i]
}

// Valid reports whether i is one of the defined icons.
func (i Icon) Valid() bool {
	return i < iconCount
}

// ParseIcon maps a persisted tag back to its Icon.
func ParseIcon(tag string) (Icon, bool) {
	for i, t := range iconTags {
		if t == tag {
			return Icon(i), true
		}
	}
	return IconNone, false
}

// Icons returns every icon in palette order.
func Icons() []Icon {
	out := make([]Icon, 0, iconCount)
	for i := Icon(0); i < iconCount; i++ {
		out = append(out, i)
	}
	return out
}
