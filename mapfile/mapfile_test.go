package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devin-hart/dungeon-crawltographer/grid"
)

var home = grid.Pos{X: 50, Y: 50}

func TestEncodeWritesOnlyExplored(t *testing.T) {
	s := grid.NewStore()
	s.Set(0, grid.Pos{X: 1, Y: 2}, grid.Cell{Explored: true, Icon: grid.IconChest, Label: "gold"})
	s.Set(0, grid.Pos{X: 3, Y: 3}, grid.Cell{Icon: grid.IconBoss})
	s.Set(-1, grid.Pos{X: 0, Y: 0}, grid.Cell{Explored: true, Locked: true})

	var buf bytes.Buffer
	if err := Encode(&buf, Map{Store: s, Floor: -1, Pos: grid.Pos{X: 4, Y: 5}, Rotation: 180}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var raw struct {
		Floors       map[string]map[string]map[string]any `json:"floors"`
		CurrentFloor int                                  `json:"current_floor"`
		CurrentPos   []int                                `json:"current_pos"`
		Rotation     int                                  `json:"rotation"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw.Floors["0"]) != 1 {
		t.Fatalf("expected 1 cell on floor 0, got %v", raw.Floors["0"])
	}
	if got := raw.Floors["0"]["1,2"]["icon"]; got != "chest" {
		t.Fatalf("expected icon chest, got %v", got)
	}
	if got := raw.Floors["-1"]["0,0"]["locked"]; got != true {
		t.Fatalf("expected locked true, got %v", got)
	}
	if raw.CurrentFloor != -1 || raw.Rotation != 180 || raw.CurrentPos[0] != 4 || raw.CurrentPos[1] != 5 {
		t.Fatalf("unexpected navigation fields: %+v", raw)
	}
	if !strings.Contains(buf.String(), "\n  \"floors\"") {
		t.Fatalf("expected two-space indentation, got %s", buf.String())
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr error
		check   func(t *testing.T, m Map)
	}{
		{
			name: "defaults",
			doc:  `{"floors": {"0": {"1,2": {"icon": "door"}}}}`,
			check: func(t *testing.T, m Map) {
				if m.Floor != 0 || m.Pos != home || m.Rotation != 0 {
					t.Fatalf("expected default navigation, got %+v", m)
				}
				c, ok := m.Store.Lookup(0, grid.Pos{X: 1, Y: 2})
				if !ok || !c.Explored || c.Icon != grid.IconDoor || c.Label != "" || c.Locked {
					t.Fatalf("expected explored door with defaults, got %+v", c)
				}
			},
		},
		{
			name: "full",
			doc:  `{"floors": {"3": {"-1,-2": {"icon": "save", "label": "rest", "locked": true}}}, "current_floor": 3, "current_pos": [7, 8], "rotation": 270}`,
			check: func(t *testing.T, m Map) {
				if m.Floor != 3 || m.Pos != (grid.Pos{X: 7, Y: 8}) || m.Rotation != 270 {
					t.Fatalf("unexpected navigation %+v", m)
				}
				c, _ := m.Store.Lookup(3, grid.Pos{X: -1, Y: -2})
				if c.Label != "rest" || !c.Locked {
					t.Fatalf("unexpected cell %+v", c)
				}
			},
		},
		{
			name: "current floor created",
			doc:  `{"floors": {}, "current_floor": 4}`,
			check: func(t *testing.T, m Map) {
				if !m.Store.HasFloor(4) || !m.Store.HasFloor(0) {
					t.Fatalf("expected floors 0 and 4, got %v", m.Store.Floors())
				}
			},
		},
		{name: "unknown icon", doc: `{"floors": {"0": {"1,1": {"icon": "dragon"}}}}`, wantErr: ErrUnknownIcon},
		{name: "missing icon", doc: `{"floors": {"0": {"1,1": {"label": "x"}}}}`, wantErr: ErrMalformed},
		{name: "missing floors", doc: `{"current_floor": 1}`, wantErr: ErrMalformed},
		{name: "bad floor key", doc: `{"floors": {"up": {}}}`, wantErr: ErrMalformed},
		{name: "bad position", doc: `{"floors": {"0": {"11": {"icon": "none"}}}}`, wantErr: ErrMalformed},
		{name: "short current_pos", doc: `{"floors": {}, "current_pos": [5]}`, wantErr: ErrMalformed},
		{name: "long current_pos", doc: `{"floors": {}, "current_pos": [5, 6, 7]}`, wantErr: ErrMalformed},
		{name: "bad rotation", doc: `{"floors": {}, "rotation": 45}`, wantErr: ErrMalformed},
		{name: "not json", doc: `floors`, wantErr: ErrMalformed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(c.doc), home)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			c.check(t, m)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	s := grid.NewStore()
	s.Set(0, grid.Pos{X: 0, Y: 0}, grid.Cell{Explored: true, Icon: grid.IconEntrance})
	s.Set(2, grid.Pos{X: 5, Y: -5}, grid.Cell{Explored: true, Icon: grid.IconStairsUp, Label: "up"})

	path := filepath.Join(t.TempDir(), "nested", "dir", "map.json")
	if err := Save(path, Map{Store: s, Floor: 2, Pos: grid.Pos{X: 5, Y: -5}, Rotation: 90}); err != nil {
		t.Fatalf("save: %v", err)
	}
	m, err := Load(path, home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Floor != 2 || m.Rotation != 90 || m.Pos != (grid.Pos{X: 5, Y: -5}) {
		t.Fatalf("unexpected navigation %+v", m)
	}
	c, ok := m.Store.Lookup(2, grid.Pos{X: 5, Y: -5})
	if !ok || c.Label != "up" || c.Icon != grid.IconStairsUp {
		t.Fatalf("unexpected cell %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.json"), home); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"floors": {"0": {"0,0": {"icon": 7}}}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, home); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestClipRoundTrip(t *testing.T) {
	clip := grid.Clip{
		{X: 0, Y: 0}: {Explored: true, Icon: grid.IconTrap, Label: "spikes"},
		{X: 1, Y: 0}: {Locked: true},
	}
	data, err := EncodeClip(clip)
	if err != nil {
		t.Fatalf("encode clip: %v", err)
	}
	got, err := DecodeClip(data)
	if err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	if len(got) != 2 || got[grid.Pos{X: 0, Y: 0}] != clip[grid.Pos{X: 0, Y: 0}] || got[grid.Pos{X: 1, Y: 0}] != clip[grid.Pos{X: 1, Y: 0}] {
		t.Fatalf("expected %v, got %v", clip, got)
	}

	if _, err := DecodeClip([]byte("some text from another app")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed for foreign text, got %v", err)
	}
	if _, err := DecodeClip([]byte(`{"kind": "other"}`)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed for foreign json, got %v", err)
	}
}
