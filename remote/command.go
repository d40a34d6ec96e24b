// Package remote implements the datagram command channel between a remote
// controller and the mapper: "<seq>;<command>" messages answered with
// "ack;<seq>".
package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a datagram that is not a valid message.
	ErrMalformed = errors.New("malformed message")
	// ErrUnknownCommand reports a command name outside the known set.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is one remote instruction.
type Command uint8

const (
	CommandUnknown Command = iota
	CommandForward
	CommandBackward
	CommandRotateLeft
	CommandRotateRight
	CommandMarkCell
)

var commandNames = [...]string{
	CommandUnknown:     "unknown",
	CommandForward:     "forward",
	CommandBackward:    "backward",
	CommandRotateLeft:  "rotate_left",
	CommandRotateRight: "rotate_right",
	CommandMarkCell:    "mark_cell",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

func (c Command) Valid() bool {
	return c > CommandUnknown && int(c) < len(commandNames)
}

// ParseCommand maps a wire name to its Command.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if c := Command(i); c.Valid() && name == s {
			return c, nil
		}
	}
	return CommandUnknown, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Commands lists every valid command.
func Commands() []Command {
	out := make([]Command, 0, len(commandNames)-1)
	for i := range commandNames {
		if c := Command(i); c.Valid() {
			out = append(out, c)
		}
	}
	return out
}
