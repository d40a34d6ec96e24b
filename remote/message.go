package remote

import (
	"fmt"
	"strconv"
	"strings"
)

const ackPrefix = "ack"

// Message is a decoded command datagram. Name is kept verbatim so that
// unknown commands can still be acknowledged.
type Message struct {
	Seq  uint64
	Name string
}

// Command resolves the message name.
func (m Message) Command() (Command, error) {
	return ParseCommand(m.Name)
}

// Encode formats a command datagram.
func Encode(seq uint64, c Command) []byte {
	return []byte(strconv.FormatUint(seq, 10) + ";" + c.String())
}

// ParseMessage decodes "<seq>;<command>". The payload must split into
// exactly two parts and seq must be a positive integer.
func ParseMessage(b []byte) (Message, error) {
	parts := strings.Split(string(b), ";")
	if len(parts) != 2 {
		return Message{}, fmt.Errorf("%w: %d parts", ErrMalformed, len(parts))
	}
	seq, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil || seq == 0 {
		return Message{}, fmt.Errorf("%w: sequence %q", ErrMalformed, parts[0])
	}
	return Message{Seq: seq, Name: parts[1]}, nil
}

// FormatAck formats the acknowledgment for seq.
func FormatAck(seq uint64) []byte {
	return []byte(ackPrefix + ";" + strconv.FormatUint(seq, 10))
}

// ParseAck decodes "ack;<seq>".
func ParseAck(b []byte) (uint64, error) {
	tag, rest, ok := strings.Cut(string(b), ";")
	if !ok || tag != ackPrefix {
		return 0, fmt.Errorf("%w: not an ack", ErrMalformed)
	}
	seq, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ack sequence %q", ErrMalformed, rest)
	}
	return seq, nil
}
