// Package mapfile reads and writes the JSON map document.
package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/logger"
)

var (
	// ErrMalformed reports a document that does not have the map layout.
	ErrMalformed = errors.New("malformed map document")
	// ErrUnknownIcon reports an icon tag outside the fixed enumeration.
	ErrUnknownIcon = errors.New("unknown icon tag")
)

// Map is everything a map file holds.
type Map struct {
	Store    *grid.Store
	Floor    int
	Pos      grid.Pos
	Rotation int
}

type fileCell struct {
	Icon   *string `json:"icon"`
	Label  string  `json:"label"`
	Locked bool    `json:"locked"`
}

type document struct {
	Floors       map[string]map[string]fileCell `json:"floors"`
	CurrentFloor *int                           `json:"current_floor"`
	CurrentPos   []int                          `json:"current_pos"`
	Rotation     *int                           `json:"rotation"`
}

// Encode writes m to w. Only explored cells are written.
func Encode(w io.Writer, m Map) error {
	doc := document{
		Floors:       make(map[string]map[string]fileCell),
		CurrentFloor: &m.Floor,
		CurrentPos:   []int{m.Pos.X, m.Pos.Y},
		Rotation:     &m.Rotation,
	}
	if m.Store != nil {
		for f, floor := range m.Store.Snapshot() {
			cells := make(map[string]fileCell)
			for p, c := range floor {
				if !c.Explored {
					continue
				}
				tag := c.Icon.String()
				cells[p.String()] = fileCell{Icon: &tag, Label: c.Label, Locked: c.Locked}
			}
			doc.Floors[strconv.Itoa(f)] = cells
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Decode reads a map document. Missing current_floor, current_pos and
// rotation fall back to 0, defaultPos and 0. Every decoded cell is explored.
func Decode(r io.Reader, defaultPos grid.Pos) (Map, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Map{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Floors == nil {
		return Map{}, fmt.Errorf("%w: missing floors", ErrMalformed)
	}

	m := Map{Store: grid.NewStore(), Pos: defaultPos}
	if doc.CurrentFloor != nil {
		m.Floor = *doc.CurrentFloor
	}
	if doc.CurrentPos != nil {
		if len(doc.CurrentPos) != 2 {
			return Map{}, fmt.Errorf("%w: current_pos has %d elements", ErrMalformed, len(doc.CurrentPos))
		}
		m.Pos = grid.Pos{X: doc.CurrentPos[0], Y: doc.CurrentPos[1]}
	}
	if doc.Rotation != nil {
		m.Rotation = *doc.Rotation
		switch m.Rotation {
		case 0, 90, 180, 270:
		default:
			return Map{}, fmt.Errorf("%w: rotation %d", ErrMalformed, m.Rotation)
		}
	}

	for fs, cells := range doc.Floors {
		f, err := strconv.Atoi(fs)
		if err != nil {
			return Map{}, fmt.Errorf("%w: floor key %q", ErrMalformed, fs)
		}
		m.Store.Floor(f)
		for ps, fc := range cells {
			p, err := grid.ParsePos(ps)
			if err != nil {
				return Map{}, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			if fc.Icon == nil {
				return Map{}, fmt.Errorf("%w: cell %s on floor %d has no icon", ErrMalformed, ps, f)
			}
			icon, ok := grid.ParseIcon(*fc.Icon)
			if !ok {
				return Map{}, fmt.Errorf("%w: %q at %s on floor %d", ErrUnknownIcon, *fc.Icon, ps, f)
			}
			m.Store.Set(f, p, grid.Cell{Explored: true, Icon: icon, Label: fc.Label, Locked: fc.Locked})
		}
	}
	m.Store.Floor(m.Floor)
	return m, nil
}

// Save writes m to filename, creating parent directories. Relative names
// resolve against the working directory.
func Save(filename string, m Map) error {
	path, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("mapfile: save %s: %w", filename, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mapfile: save %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return fmt.Errorf("mapfile: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("mapfile: save %s: %w", path, err)
	}
	logger.Log.WithField("path", path).Info("map saved")
	return nil
}

// Load reads the map at filename. On any error nothing is returned that a
// caller could partially apply.
func Load(filename string, defaultPos grid.Pos) (Map, error) {
	path, err := filepath.Abs(filename)
	if err != nil {
		return Map{}, fmt.Errorf("mapfile: load %s: %w", filename, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return Map{}, fmt.Errorf("mapfile: load %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, defaultPos)
	if err != nil {
		return Map{}, fmt.Errorf("mapfile: load %s: %w", path, err)
	}
	logger.Log.WithField("path", path).Info("map loaded")
	return m, nil
}
