package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"

	"github.com/devin-hart/dungeon-crawltographer/config"
	"github.com/devin-hart/dungeon-crawltographer/editor"
	"github.com/devin-hart/dungeon-crawltographer/grid"
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/remote"
	"github.com/devin-hart/dungeon-crawltographer/script"
	"github.com/devin-hart/dungeon-crawltographer/view"
)

const noticeDuration = 3 * time.Second

// Mapper is the ebiten game hosting the editor. Everything that mutates the
// editor runs inside Update.
type Mapper struct {
	cfg     config.Config
	cfgPath string
	palette config.Palette
	ed      *editor.Editor
	queue   *remote.Queue
	watcher *config.Watcher
	clip    *Clipboard

	ui       *ebitenui.UI
	icons    *IconPalette
	help     *ebitenui.UI
	showHelp bool
	prompt   *Prompt
	face     *text.GoTextFace
	small    *text.GoTextFace

	width, height int
	builtW        int

	leftDown, rightDown bool
	lastCell            grid.Pos
	rangeStart          *grid.Pos
	panning             bool
	panFromX, panFromY  int
	panFrom             cp.Vector

	savePath    string
	notice      string
	noticeUntil time.Time
}

func NewMapper(cfg config.Config, cfgPath string, ed *editor.Editor, queue *remote.Queue) (*Mapper, error) {
	face, err := loadFace(14)
	if err != nil {
		return nil, err
	}
	small, err := loadFace(10)
	if err != nil {
		return nil, err
	}
	m := &Mapper{
		cfg:     cfg,
		cfgPath: cfgPath,
		palette: cfg.Palette(),
		ed:      ed,
		queue:   queue,
		clip:    NewClipboard(),
		prompt:  &Prompt{},
		face:    face,
		small:   small,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	m.rebuildUI()
	m.help = NewHelpUI(m)
	return m, nil
}

func (m *Mapper) rebuildUI() {
	m.ui, m.icons = m.buildUI(m.face)
	m.builtW = m.width
}

func (m *Mapper) viewport() view.Viewport {
	c := m.cfg.Chrome
	return view.Viewport{
		Width:         m.width,
		Height:        m.height,
		TitleBar:      c.TitleBar,
		MenuBar:       c.MenuBar,
		IconPanel:     c.IconPanel,
		ShowIconPanel: c.ShowIconPanel,
	}
}

func (m *Mapper) transform() view.Transform {
	return m.ed.Transform(m.viewport(), float64(m.cfg.CellSize))
}

func (m *Mapper) notify(msg string) {
	m.notice = msg
	m.noticeUntil = time.Now().Add(noticeDuration)
}

func (m *Mapper) Update() error {
	if m.width != m.builtW {
		m.rebuildUI()
	}
	m.reloadConfig()

	if events := m.queue.Drain(); len(events) > 0 {
		m.ed.ApplyEvents(events)
	}

	if m.prompt.Update() {
		return nil
	}
	if m.showHelp {
		m.help.Update()
		m.handleHelpKeys()
		return nil
	}

	m.ui.Update()
	m.handleKeys()
	m.handleMouse(m.transform())
	m.icons.SetIcon(m.ed.SelectedIcon())
	return nil
}

func (m *Mapper) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.width, m.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// reloadConfig applies presentation settings from a changed config file.
// Remote addresses stay bound to their startup values.
func (m *Mapper) reloadConfig() {
	if m.watcher == nil || !m.watcher.Changed() {
		return
	}
	cfg, err := config.Load(m.watcher.Path())
	if err != nil {
		logger.Log.WithError(err).Warn("config reload rejected")
		m.notify("Config error: " + err.Error())
		return
	}
	cfg.Remote = m.cfg.Remote
	m.cfg = cfg
	m.palette = cfg.Palette()
	m.rebuildUI()
	logger.Log.WithField("path", m.watcher.Path()).Info("config reloaded")
	m.notify("Config reloaded")
}

func (m *Mapper) saveMap() {
	if path, err := pickSavePath(m.cfg.MapsDir); err == nil {
		m.saveTo(path)
		return
	} else if err == errPickCancelled {
		return
	}
	initial := filepath.Base(m.savePath)
	if m.savePath == "" {
		initial = ""
	}
	m.prompt.Open("Save as:", initial, 0, func(name string) {
		if path := normalizeMapPath(m.cfg.MapsDir, name); path != "" {
			m.saveTo(path)
		}
	})
}

func (m *Mapper) saveTo(path string) {
	if err := m.ed.Save(path); err != nil {
		logger.Log.WithError(err).Error("save failed")
		m.notify("Save failed: " + err.Error())
		return
	}
	m.savePath = path
	m.notify("Saved " + path)
}

func (m *Mapper) openMap() {
	if path, err := pickLoadPath(m.cfg.MapsDir); err == nil {
		m.loadFrom(path)
		return
	} else if err == errPickCancelled {
		return
	}
	m.prompt.Open("Open:", "", 0, func(name string) {
		if path := normalizeMapPath(m.cfg.MapsDir, name); path != "" {
			m.loadFrom(path)
		}
	})
}

func (m *Mapper) loadFrom(path string) {
	if err := m.ed.Load(path); err != nil {
		logger.Log.WithError(err).Error("load failed")
		m.notify("Load failed: " + err.Error())
		return
	}
	m.savePath = path
	m.notify("Loaded " + path)
}

func (m *Mapper) startLabel() {
	p, ok := m.ed.LabelTarget()
	if !ok {
		return
	}
	initial := ""
	if c, ok := m.ed.Store().Lookup(m.ed.Nav().Floor, p); ok {
		initial = c.Label
	}
	m.prompt.Open("Label:", initial, editor.LabelMax, func(s string) {
		m.ed.SetLabel(p, s)
	})
}

func (m *Mapper) promptMacro() {
	m.prompt.Open("Macro ("+m.cfg.ScriptsDir+"):", "", 0, func(name string) {
		if name == "" {
			return
		}
		if filepath.Ext(name) == "" {
			name += script.Ext
		}
		ctx, cancel := context.WithTimeout(context.Background(), script.FrameBudget)
		defer cancel()
		if err := script.RunFile(ctx, m.ed, filepath.Join(m.cfg.ScriptsDir, name)); err != nil {
			logger.Log.WithError(err).Warn("macro failed")
			m.notify("Macro failed: " + err.Error())
			return
		}
		m.notify("Macro " + name + " applied")
	})
}
