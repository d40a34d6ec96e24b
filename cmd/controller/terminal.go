package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/devin-hart/dungeon-crawltographer/remote"
)

// termCommand maps a terminal key event to a command. quit is true for
// Esc, Ctrl+C and q.
func termCommand(ev *tcell.EventKey) (cmd remote.Command, ok, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return remote.CommandUnknown, false, true
	case tcell.KeyUp:
		return remote.CommandForward, true, false
	case tcell.KeyDown:
		return remote.CommandBackward, true, false
	case tcell.KeyLeft:
		return remote.CommandRotateLeft, true, false
	case tcell.KeyRight:
		return remote.CommandRotateRight, true, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return remote.CommandForward, true, false
		case 's', 'S':
			return remote.CommandBackward, true, false
		case 'a', 'A':
			return remote.CommandRotateLeft, true, false
		case 'd', 'D':
			return remote.CommandRotateRight, true, false
		case ' ', 'm', 'M':
			return remote.CommandMarkCell, true, false
		case 'q', 'Q':
			return remote.CommandUnknown, false, true
		}
	}
	return remote.CommandUnknown, false, false
}

func runTerminal(ctx context.Context, in *remote.PulseInput, s *remote.Sender) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := "-"
	draw := func() {
		screen.Clear()
		lines := []string{
			"arrows/WASD move and turn, space marks, q quits",
			fmt.Sprintf("last: %s  sent: %d", last, s.Seq()),
		}
		for y, line := range lines {
			for x, r := range line {
				screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
		}
		screen.Show()
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, open := <-events:
			if !open {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, ok, quit := termCommand(ev)
				if quit {
					return nil
				}
				if ok && in.Press(cmd) {
					last = cmd.String()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			draw()
		}
	}
}
