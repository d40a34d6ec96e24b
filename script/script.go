// Package script runs tengo macros against the editor. A macro's edits
// form one undoable action; a failing macro leaves the map untouched.
package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/devin-hart/dungeon-crawltographer/editor"
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/logger"
)

const (
	// Ext is the file extension of macro files.
	Ext = ".tengo"

	// FrameBudget bounds a macro run from the frame loop so a runaway
	// script costs at most a dropped frame or two.
	FrameBudget = 20 * time.Millisecond
)

// modules are the stdlib modules macros may import. os is left out.
var modules = []string{"math", "text", "times", "rand", "fmt", "json", "enum"}

// Run compiles and runs src.
func Run(ctx context.Context, ed *editor.Editor, src []byte) error {
	return ed.Edit(func(tx *editor.Tx) error {
		s := tengo.NewScript(src)
		for name, v := range builtins(tx) {
			if err := s.Add(name, v); err != nil {
				return fmt.Errorf("script: add %s: %w", name, err)
			}
		}
		s.SetImports(stdlib.GetModuleMap(modules...))

		compiled, err := s.Compile()
		if err != nil {
			return fmt.Errorf("script: compile: %w", err)
		}
		if err := compiled.RunContext(ctx); err != nil {
			return fmt.Errorf("script: run: %w", err)
		}
		return nil
	})
}

// RunFile runs the macro at path.
func RunFile(ctx context.Context, ed *editor.Editor, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	if err := Run(ctx, ed, src); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	logger.Log.WithField("path", path).Info("macro applied")
	return nil
}

// List returns the macro files in dir, sorted by name. A missing directory
// has no macros.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("script: list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func builtins(tx *editor.Tx) map[string]any {
	ed := tx.Editor()

	icons := make([]any, 0)
	for _, ic := range grid.Icons() {
		icons = append(icons, ic.String())
	}

	return map[string]any{
		"icons": icons,

		"mark": &tengo.UserFunction{Name: "mark", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 && len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			p, err := posArgs(args)
			if err != nil {
				return nil, err
			}
			icon := ed.SelectedIcon()
			if len(args) == 3 {
				tag, ok := tengo.ToString(args[2])
				if !ok {
					return nil, &tengo.ErrInvalidArgumentType{Name: "icon", Expected: "string", Found: args[2].TypeName()}
				}
				if icon, ok = grid.ParseIcon(tag); !ok {
					return nil, fmt.Errorf("mark: unknown icon %q", tag)
				}
			}
			tx.Mark(p, icon)
			return tengo.UndefinedValue, nil
		}},

		"erase": &tengo.UserFunction{Name: "erase", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			p, err := posArgs(args)
			if err != nil {
				return nil, err
			}
			tx.Erase(p)
			return tengo.UndefinedValue, nil
		}},

		"label": &tengo.UserFunction{Name: "label", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			p, err := posArgs(args)
			if err != nil {
				return nil, err
			}
			text, ok := tengo.ToString(args[2])
			if !ok {
				return nil, &tengo.ErrInvalidArgumentType{Name: "text", Expected: "string", Found: args[2].TypeName()}
			}
			tx.Label(p, text)
			return tengo.UndefinedValue, nil
		}},

		"lock": &tengo.UserFunction{Name: "lock", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			p, err := posArgs(args)
			if err != nil {
				return nil, err
			}
			on, ok := tengo.ToBool(args[2])
			if !ok {
				return nil, &tengo.ErrInvalidArgumentType{Name: "locked", Expected: "bool", Found: args[2].TypeName()}
			}
			tx.Lock(p, on)
			return tengo.UndefinedValue, nil
		}},

		"cell": &tengo.UserFunction{Name: "cell", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			p, err := posArgs(args)
			if err != nil {
				return nil, err
			}
			c, ok := ed.Store().Lookup(ed.Nav().Floor, p)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return &tengo.ImmutableMap{Value: map[string]tengo.Object{
				"explored": boolObject(c.Explored),
				"icon":     &tengo.String{Value: c.Icon.String()},
				"label":    &tengo.String{Value: c.Label},
				"locked":   boolObject(c.Locked),
			}}, nil
		}},

		"pos": &tengo.UserFunction{Name: "pos", Value: func(args ...tengo.Object) (tengo.Object, error) {
			p := ed.Nav().Pos
			return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(p.X)}, &tengo.Int{Value: int64(p.Y)}}}, nil
		}},

		"floor": &tengo.UserFunction{Name: "floor", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(ed.Nav().Floor)}, nil
		}},
	}
}

func posArgs(args []tengo.Object) (grid.Pos, error) {
	x, ok := tengo.ToInt(args[0])
	if !ok {
		return grid.Pos{}, &tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToInt(args[1])
	if !ok {
		return grid.Pos{}, &tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: args[1].TypeName()}
	}
	return grid.Pos{X: x, Y: y}, nil
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
