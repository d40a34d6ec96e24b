package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prompt is a one-line modal text input used for labels, file names and
// macro names. Enter submits, Escape cancels.
type Prompt struct {
	open     bool
	label    string
	input    []rune
	limit    int
	onSubmit func(string)
	chars    []rune
}

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt. limit caps the input length in runes; 0 means no
// limit.
func (p *Prompt) Open(label, initial string, limit int, onSubmit func(string)) {
	p.label = label
	p.input = []rune(initial)
	p.limit = limit
	p.onSubmit = onSubmit
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = nil
	p.onSubmit = nil
}

// Update consumes keyboard input while open and reports whether it did.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		if p.limit > 0 && len(p.input) >= p.limit {
			break
		}
		p.input = append(p.input, r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		cur, fn := string(p.input), p.onSubmit
		p.Close()
		if fn != nil {
			fn(cur)
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image, face text.Face) {
	if !p.open {
		return
	}
	sw := float32(screen.Bounds().Dx())
	sh := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, sh/2-24, sw, 48, color.RGBA{A: 0xcc}, false)
	vector.StrokeRect(screen, 8, sh/2-20, sw-16, 40, 1, color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(16, float64(sh/2-10))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, p.label+" "+string(p.input)+"_", face, op)
}
