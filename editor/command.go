package editor

import (
	"github.com/devin-hart/dungeon-crawltographer/logger"
	"github.com/devin-hart/dungeon-crawltographer/remote"
)

// ApplyCommand runs a remote command. It reports false for commands it does
// not know.
func (e *Editor) ApplyCommand(cmd remote.Command) bool {
	switch cmd {
	case remote.CommandForward:
		e.MovePlayer(true)
	case remote.CommandBackward:
		e.MovePlayer(false)
	case remote.CommandRotateLeft:
		e.Rotate(1)
	case remote.CommandRotateRight:
		e.Rotate(-1)
	case remote.CommandMarkCell:
		e.MarkCurrent()
	default:
		logger.Log.WithField("command", cmd.String()).Debug("ignoring remote command")
		return false
	}
	return true
}

// ApplyEvents runs every drained remote event in order.
func (e *Editor) ApplyEvents(events []remote.Event) int {
	n := 0
	for _, evt := range events {
		if e.ApplyCommand(evt.Command) {
			n++
		}
	}
	return n
}
