package mapfile

import (
	"encoding/json"
	"fmt"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

// clipMagic marks clipboard payloads produced by EncodeClip.
const clipMagic = "crawltographer/clip"

type clipDocument struct {
	Kind  string              `json:"kind"`
	Cells map[string]clipCell `json:"cells"`
}

type clipCell struct {
	Explored bool   `json:"explored"`
	Icon     string `json:"icon"`
	Label    string `json:"label,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
}

// EncodeClip serialises a clip for the system clipboard.
func EncodeClip(c grid.Clip) ([]byte, error) {
	doc := clipDocument{Kind: clipMagic, Cells: make(map[string]clipCell, len(c))}
	for p, cell := range c {
		doc.Cells[p.String()] = clipCell{
			Explored: cell.Explored,
			Icon:     cell.Icon.String(),
			Label:    cell.Label,
			Locked:   cell.Locked,
		}
	}
	return json.Marshal(doc)
}

// DecodeClip parses data produced by EncodeClip. Foreign clipboard content
// yields ErrMalformed.
func DecodeClip(data []byte) (grid.Clip, error) {
	var doc clipDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != clipMagic {
		return nil, fmt.Errorf("%w: not a clip", ErrMalformed)
	}
	out := make(grid.Clip, len(doc.Cells))
	for ps, cc := range doc.Cells {
		p, err := grid.ParsePos(ps)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		icon, ok := grid.ParseIcon(cc.Icon)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, cc.Icon)
		}
		out[p] = grid.Cell{Explored: cc.Explored, Icon: icon, Label: cc.Label, Locked: cc.Locked}
	}
	return out, nil
}
