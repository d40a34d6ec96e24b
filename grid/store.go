package grid

import (
	"sort"
)

// Floor is the sparse cell mapping of one floor.
type Floor map[Pos]*Cell

// Store owns every floor of a map. Floor 0 always exists.
type Store struct {
	floors map[int]Floor
}

func NewStore() *Store {
	return &Store{floors: map[int]Floor{0: {}}}
}

// getOrInsert returns m[k], inserting mk() first when the key is absent.
func getOrInsert[K comparable, V any](m map[K]V, k K, mk func() V) V {
	if v, ok := m[k]; ok {
		return v
	}
	v := mk()
	m[k] = v
	return v
}

// Floor returns the cells of floor f, creating an empty floor if needed.
func (s *Store) Floor(f int) Floor {
	return getOrInsert(s.floors, f, func() Floor { return Floor{} })
}

func (s *Store) HasFloor(f int) bool {
	_, ok := s.floors[f]
	return ok
}

// Cell returns the cell at p on floor f, creating the floor and a default
// cell when either is missing. It never fails.
func (s *Store) Cell(f int, p Pos) *Cell {
	return getOrInsert(s.Floor(f), p, func() *Cell { return &Cell{} })
}

// Lookup returns the cell at p on floor f without creating anything.
func (s *Store) Lookup(f int, p Pos) (*Cell, bool) {
	fl, ok := s.floors[f]
	if !ok {
		return nil, false
	}
	c, ok := fl[p]
	return c, ok
}

// Set replaces the cell at p on floor f with a copy of c.
func (s *Store) Set(f int, p Pos, c Cell) {
	*s.Cell(f, p) = c
}

// Delete removes the cell at p on floor f and reports whether it existed.
func (s *Store) Delete(f int, p Pos) bool {
	fl, ok := s.floors[f]
	if !ok {
		return false
	}
	if _, ok := fl[p]; !ok {
		return false
	}
	delete(fl, p)
	return true
}

// Floors returns the floor indices in ascending order.
func (s *Store) Floors() []int {
	out := make([]int, 0, len(s.floors))
	for f := range s.floors {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of stored cells on floor f.
func (s *Store) Len(f int) int {
	return len(s.floors[f])
}

// Positions returns the stored coordinates of floor f in row-major order.
func (s *Store) Positions(f int) []Pos {
	fl := s.floors[f]
	out := make([]Pos, 0, len(fl))
	for p := range fl {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Snapshot returns a deep value copy of every floor.
func (s *Store) Snapshot() map[int]map[Pos]Cell {
	out := make(map[int]map[Pos]Cell, len(s.floors))
	for f, fl := range s.floors {
		cells := make(map[Pos]Cell, len(fl))
		for p, c := range fl {
			cells[p] = *c
		}
		out[f] = cells
	}
	return out
}
