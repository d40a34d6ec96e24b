package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/devin-hart/dungeon-crawltographer/remote"
)

const (
	padWidth  = 240
	padHeight = 120
)

var errQuit = errors.New("quit")

// padBindings is checked in order; the first held button wins.
var padBindings = []struct {
	button ebiten.StandardGamepadButton
	cmd    remote.Command
}{
	{ebiten.StandardGamepadButtonLeftTop, remote.CommandForward},
	{ebiten.StandardGamepadButtonLeftBottom, remote.CommandBackward},
	{ebiten.StandardGamepadButtonLeftLeft, remote.CommandRotateLeft},
	{ebiten.StandardGamepadButtonLeftRight, remote.CommandRotateRight},
	{ebiten.StandardGamepadButtonFrontBottomLeft, remote.CommandMarkCell},
}

var keyBindings = []struct {
	key ebiten.Key
	cmd remote.Command
}{
	{ebiten.KeyArrowUp, remote.CommandForward},
	{ebiten.KeyArrowDown, remote.CommandBackward},
	{ebiten.KeyArrowLeft, remote.CommandRotateLeft},
	{ebiten.KeyArrowRight, remote.CommandRotateRight},
	{ebiten.KeySpace, remote.CommandMarkCell},
}

// padCommand maps the held gamepad buttons to a command.
func padCommand(held func(ebiten.StandardGamepadButton) bool) (remote.Command, bool) {
	for _, b := range padBindings {
		if held(b.button) {
			return b.cmd, true
		}
	}
	return remote.CommandUnknown, false
}

func keyCommand(held func(ebiten.Key) bool) (remote.Command, bool) {
	for _, b := range keyBindings {
		if held(b.key) {
			return b.cmd, true
		}
	}
	return remote.CommandUnknown, false
}

type pad struct {
	ctx    context.Context
	in     *remote.LevelInput
	sender *remote.Sender
	target string

	gamepads []ebiten.GamepadID
	current  remote.Command
}

func newPad(ctx context.Context, in *remote.LevelInput, s *remote.Sender, target string) *pad {
	return &pad{ctx: ctx, in: in, sender: s, target: target}
}

func (p *pad) Update() error {
	if p.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		p.in.Release()
		return errQuit
	}

	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	cmd, ok := remote.CommandUnknown, false
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		cmd, ok = padCommand(func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		})
		if ok {
			break
		}
	}
	if !ok {
		cmd, ok = keyCommand(ebiten.IsKeyPressed)
	}

	if ok {
		p.in.Set(cmd)
		p.current = cmd
	} else {
		p.in.Release()
		p.current = remote.CommandUnknown
	}
	return nil
}

func (p *pad) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x20, 0xff})
	held := "-"
	if p.current.Valid() {
		held = p.current.String()
	}
	msg := fmt.Sprintf("target  %s\ngamepads %d\nholding %s\nsent    %d\n\nEsc quits", p.target, len(p.gamepads), held, p.sender.Seq())
	ebitenutil.DebugPrint(screen, msg)
}

func (p *pad) Layout(outsideWidth, outsideHeight int) (int, int) {
	return padWidth, padHeight
}
