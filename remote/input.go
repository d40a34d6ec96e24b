package remote

import "sync/atomic"

// LevelInput holds a held-down input state written by another goroutine,
// such as a gamepad reader.
type LevelInput struct {
	v atomic.Uint32
}

// Set records cmd as held. CommandUnknown releases.
func (in *LevelInput) Set(cmd Command) { in.v.Store(uint32(cmd)) }

func (in *LevelInput) Release() { in.v.Store(uint32(CommandUnknown)) }

func (in *LevelInput) Poll() (Command, bool) {
	c := Command(in.v.Load())
	return c, c.Valid()
}

// PulseInput turns discrete key presses into a command followed by a
// neutral poll, so pressing the same key twice sends twice.
type PulseInput struct {
	ch      chan Command
	release bool
}

func NewPulseInput(buffer int) *PulseInput {
	if buffer < 1 {
		buffer = 1
	}
	return &PulseInput{ch: make(chan Command, buffer)}
}

// Press queues cmd. Presses beyond the buffer are dropped.
func (in *PulseInput) Press(cmd Command) bool {
	select {
	case in.ch <- cmd:
		return true
	default:
		return false
	}
}

// Poll must only be called from the sending goroutine.
func (in *PulseInput) Poll() (Command, bool) {
	if in.release {
		in.release = false
		return CommandUnknown, false
	}
	select {
	case c := <-in.ch:
		in.release = true
		return c, c.Valid()
	default:
		return CommandUnknown, false
	}
}
