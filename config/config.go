// Package config loads crawltographer.yaml on top of the embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "crawltographer.yaml"

// ErrInvalid reports a configuration value out of range.
var ErrInvalid = errors.New("invalid config")

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window      Window `yaml:"window"`
	CellSize    int    `yaml:"cell_size"`
	GridSize    int    `yaml:"grid_size"`
	HistorySize int    `yaml:"history_size"`
	Chrome      Chrome `yaml:"chrome"`
	Remote      Remote `yaml:"remote"`
	MapsDir     string `yaml:"maps_dir"`
	ScriptsDir  string `yaml:"scripts_dir"`
	Colors      Colors `yaml:"colors"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Chrome struct {
	TitleBar      int  `yaml:"title_bar"`
	MenuBar       int  `yaml:"menu_bar"`
	IconPanel     int  `yaml:"icon_panel"`
	ShowIconPanel bool `yaml:"show_icon_panel"`
}

type Remote struct {
	Listen       string        `yaml:"listen"`
	Target       string        `yaml:"target"`
	AckTimeout   time.Duration `yaml:"ack_timeout"`
	Attempts     int           `yaml:"attempts"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Colors holds colour names from golang.org/x/image/colornames.
type Colors struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Explored   string `yaml:"explored"`
	Selection  string `yaml:"selection"`
	Player     string `yaml:"player"`
	Locked     string `yaml:"locked"`
	Label      string `yaml:"label"`
	Panel      string `yaml:"panel"`
}

// Palette is Colors resolved to RGBA values.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Explored   color.RGBA
	Selection  color.RGBA
	Player     color.RGBA
	Locked     color.RGBA
	Label      color.RGBA
	Panel      color.RGBA
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Parse overlays data on the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", filename, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window %dx%d", c.Window.Width, c.Window.Height)
	check(c.CellSize > 0, "cell_size %d", c.CellSize)
	check(c.GridSize > 0, "grid_size %d", c.GridSize)
	check(c.HistorySize > 0, "history_size %d", c.HistorySize)
	check(c.Chrome.TitleBar >= 0 && c.Chrome.MenuBar >= 0 && c.Chrome.IconPanel >= 0, "negative chrome height")
	check(c.Remote.Attempts >= 1, "remote.attempts %d", c.Remote.Attempts)
	check(c.Remote.AckTimeout > 0, "remote.ack_timeout %s", c.Remote.AckTimeout)
	check(c.Remote.PollInterval > 0, "remote.poll_interval %s", c.Remote.PollInterval)
	if _, err := c.Colors.Resolve(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Resolve looks every name up in colornames.
func (c Colors) Resolve() (Palette, error) {
	var p Palette
	var unknown []string
	for _, f := range []struct {
		name string
		dst  *color.RGBA
	}{
		{c.Background, &p.Background},
		{c.Grid, &p.Grid},
		{c.Explored, &p.Explored},
		{c.Selection, &p.Selection},
		{c.Player, &p.Player},
		{c.Locked, &p.Locked},
		{c.Label, &p.Label},
		{c.Panel, &p.Panel},
	} {
		rgba, ok := colornames.Map[strings.ToLower(f.name)]
		if !ok {
			unknown = append(unknown, f.name)
			continue
		}
		*f.dst = rgba
	}
	if len(unknown) > 0 {
		return Palette{}, fmt.Errorf("unknown colours %q", unknown)
	}
	return p, nil
}

// Palette resolves the colours of a validated config.
func (c Config) Palette() Palette {
	p, _ := c.Colors.Resolve()
	return p
}
