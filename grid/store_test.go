package grid

import "testing"

func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore()
	if !s.HasFloor(0) {
		t.Fatalf("expected floor 0 to exist on a new store")
	}

	if _, ok := s.Lookup(3, Pos{1, 2}); ok {
		t.Fatalf("expected lookup on missing floor to miss")
	}
	if s.HasFloor(3) {
		t.Fatalf("lookup must not create floors")
	}

	c := s.Cell(3, Pos{1, 2})
	if *c != (Cell{}) {
		t.Fatalf("expected default cell, got %+v", *c)
	}
	if !s.HasFloor(3) {
		t.Fatalf("expected Cell to create floor 3")
	}
	c.Label = "x"
	if got := s.Cell(3, Pos{1, 2}); got.Label != "x" {
		t.Fatalf("expected same cell handle on second access, got %+v", *got)
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	s.Set(0, Pos{5, 5}, Cell{Explored: true, Icon: IconChest})

	if !s.Delete(0, Pos{5, 5}) {
		t.Fatalf("expected delete of existing cell to report true")
	}
	if s.Delete(0, Pos{5, 5}) {
		t.Fatalf("expected second delete to report false")
	}
	if s.Delete(9, Pos{0, 0}) {
		t.Fatalf("expected delete on missing floor to report false")
	}
	if s.HasFloor(9) {
		t.Fatalf("delete must not create floors")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewStore()
	s.Set(0, Pos{1, 1}, Cell{Explored: true, Label: "a"})
	snap := s.Snapshot()
	s.Cell(0, Pos{1, 1}).Label = "b"
	s.Cell(2, Pos{0, 0})

	if got := snap[0][Pos{1, 1}].Label; got != "a" {
		t.Fatalf("expected snapshot to keep label a, got %q", got)
	}
	if _, ok := snap[2]; ok {
		t.Fatalf("expected snapshot to miss floors created after it")
	}
}

func TestPositionsSorted(t *testing.T) {
	s := NewStore()
	for _, p := range []Pos{{3, 1}, {0, 2}, {1, 1}, {-4, 0}} {
		s.Cell(0, p)
	}
	want := []Pos{{-4, 0}, {1, 1}, {3, 1}, {0, 2}}
	got := s.Positions(0)
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParsePos(t *testing.T) {
	cases := []struct {
		in   string
		want Pos
		ok   bool
	}{
		{"5,5", Pos{5, 5}, true},
		{"-3,12", Pos{-3, 12}, true},
		{" 2, -1", Pos{2, -1}, true},
		{"7", Pos{}, false},
		{"a,1", Pos{}, false},
		{"1,", Pos{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParsePos(c.in)
			if c.ok != (err == nil) {
				t.Fatalf("expected ok=%v, got err=%v", c.ok, err)
			}
			if c.ok && got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestIconTags(t *testing.T) {
	for _, ic := range Icons() {
		got, ok := ParseIcon(ic.String())
		if !ok || got != ic {
			t.Fatalf("expected %s to parse back, got %v ok=%v", ic, got, ok)
		}
	}
	if _, ok := ParseIcon("dragon"); ok {
		t.Fatalf("expected unknown tag to fail")
	}
	if len(Icons()) != 11 {
		t.Fatalf("expected 11 icons, got %d", len(Icons()))
	}
}
