package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devin-hart/dungeon-crawltographer/editor"
	"github.com/devin-hart/dungeon-crawltographer/grid"
)

func TestRunIsOneAction(t *testing.T) {
	ed := editor.New(editor.Options{})
	src := `
for x := 0; x < 3; x++ {
	for y := 0; y < 3; y++ {
		mark(x, y, "chest")
	}
}
label(1, 1, "vault")
lock(1, 1, true)
erase(2, 2)
`
	if err := Run(context.Background(), ed, []byte(src)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := ed.Store().Len(0); n != 8 {
		t.Fatalf("expected 8 cells, got %d", n)
	}
	c, _ := ed.Store().Lookup(0, grid.Pos{X: 1, Y: 1})
	if c.Label != "vault" || !c.Locked || c.Icon != grid.IconChest {
		t.Fatalf("unexpected centre cell %+v", c)
	}
	if ed.History().Len() != 1 {
		t.Fatalf("expected one action, got %d", ed.History().Len())
	}
	ed.Undo()
	if n := ed.Store().Len(0); n != 0 {
		t.Fatalf("expected undo to remove the macro, got %d cells", n)
	}
}

func TestRunReadsState(t *testing.T) {
	ed := editor.New(editor.Options{})
	ed.SetSelectedIcon(grid.IconNPC)
	ed.ChangeFloor(1)
	src := `
p := pos()
mark(p[0] + floor(), p[1])
c := cell(p[0] + 5, p[1])
if c == undefined && len(icons) == 11 {
	label(p[0] + 1, p[1], "ok")
}
`
	if err := Run(context.Background(), ed, []byte(src)); err != nil {
		t.Fatalf("run: %v", err)
	}
	home := ed.Nav().Pos
	c, ok := ed.Store().Lookup(1, home.Add(1, 0))
	if !ok || c.Icon != grid.IconNPC || c.Label != "ok" {
		t.Fatalf("expected npc labelled ok next to home, got %+v ok=%v", c, ok)
	}
}

func TestRunRollsBack(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"wrong args", `mark(0, 0); erase(1)`},
		{"unknown icon", `mark(0, 0); mark(1, 1, "dragon")`},
		{"bad type", `mark(0, 0); erase("north", 0)`},
		{"compile error", `mark(0, 0`},
		{"runtime error", `mark(0, 0); x := 1 / 0`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ed := editor.New(editor.Options{})
			if err := Run(context.Background(), ed, []byte(c.src)); err == nil {
				t.Fatalf("expected an error")
			}
			if ed.Store().Len(0) != 0 || ed.History().Len() != 0 {
				t.Fatalf("expected no changes after a failed macro")
			}
		})
	}
}

func TestRunHonoursContext(t *testing.T) {
	ed := editor.New(editor.Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := Run(ctx, ed, []byte(`mark(0, 0); for { }`)); err == nil {
		t.Fatalf("expected the endless macro to be stopped")
	}
	if ed.Store().Len(0) != 0 {
		t.Fatalf("expected rollback after cancellation")
	}
}

func TestFrameBudgetStopsEndlessMacro(t *testing.T) {
	ed := editor.New(editor.Options{GridSize: 20})
	ctx, cancel := context.WithTimeout(context.Background(), FrameBudget)
	defer cancel()

	start := time.Now()
	if err := Run(ctx, ed, []byte(`for { }`)); err == nil {
		t.Fatalf("expected the endless macro to be stopped")
	}
	if took := time.Since(start); took > 10*FrameBudget {
		t.Fatalf("expected the macro stopped near %v, took %v", FrameBudget, took)
	}
}

func TestListAndRunFile(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.tengo":   `mark(0, 0, "boss")`,
		"a.tengo":   `mark(1, 0, "save")`,
		"notes.txt": "ignored",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := List(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.tengo" {
		t.Fatalf("expected a.tengo and b.tengo, got %v", files)
	}

	ed := editor.New(editor.Options{})
	for _, f := range files {
		if err := RunFile(context.Background(), ed, f); err != nil {
			t.Fatalf("run %s: %v", f, err)
		}
	}
	if ed.History().Len() != 2 || ed.Store().Len(0) != 2 {
		t.Fatalf("expected two macros applied")
	}

	if files, err := List(filepath.Join(dir, "missing")); err != nil || files != nil {
		t.Fatalf("expected no macros for a missing dir, got %v %v", files, err)
	}
}
