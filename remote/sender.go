package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devin-hart/dungeon-crawltographer/logger"
)

const (
	DefaultAckTimeout   = 100 * time.Millisecond
	DefaultAttempts     = 3
	DefaultPollInterval = 5 * time.Millisecond
)

// SenderConfig configures a Sender. Zero values take the defaults.
type SenderConfig struct {
	Target       string
	AckTimeout   time.Duration
	Attempts     int
	PollInterval time.Duration
}

// InputSource reports the command implied by the current input state. ok is
// false while the input is neutral.
type InputSource interface {
	Poll() (cmd Command, ok bool)
}

// Sender transmits commands one at a time, waiting for each to be
// acknowledged and retrying up to Attempts times.
type Sender struct {
	cfg    SenderConfig
	conn   net.PacketConn
	target net.Addr

	seq   atomic.Uint64
	acked atomic.Uint64
	ackc  chan struct{}
	done  chan struct{}

	last    Command
	latched bool
}

// Dial opens a sender socket for cfg.Target and starts its ack listener.
func Dial(cfg SenderConfig) (*Sender, error) {
	if cfg.AckTimeout <= 0 {
		cfg.AckTimeout = DefaultAckTimeout
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	target, err := net.ResolveUDPAddr("udp", cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("remote: resolve %s: %w", cfg.Target, err)
	}
	conn, err := net.ListenPacket("udp", ":0")
	if err != nil {
		return nil, fmt.Errorf("remote: open sender: %w", err)
	}

	s := &Sender{
		cfg:    cfg,
		conn:   conn,
		target: target,
		ackc:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go s.listen()
	return s, nil
}

func (s *Sender) Close() error {
	err := s.conn.Close()
	<-s.done
	return err
}

// Seq is the sequence number of the most recent transmission.
func (s *Sender) Seq() uint64 { return s.seq.Load() }

// listen records the latest acknowledged sequence number.
func (s *Sender) listen() {
	defer close(s.done)
	buf := make([]byte, maxDatagram)
	for {
		n, _, err := s.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		seq, err := ParseAck(buf[:n])
		if err != nil {
			continue
		}
		s.acked.Store(seq)
		select {
		case s.ackc <- struct{}{}:
		default:
		}
	}
}

// Send transmits cmd under a new sequence number and reports whether it was
// acknowledged. Exhausting the attempts is not an error; only ctx ending
// is.
func (s *Sender) Send(ctx context.Context, cmd Command) (bool, error) {
	seq := s.seq.Add(1)
	msg := Encode(seq, cmd)
	log := logger.Log.WithFields(logrus.Fields{"seq": seq, "command": cmd.String()})

	for attempt := 1; attempt <= s.cfg.Attempts; attempt++ {
		if _, err := s.conn.WriteTo(msg, s.target); err != nil {
			log.WithError(err).Debug("send failed")
		}
		if s.waitAck(ctx, seq) {
			return true, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		log.WithField("attempt", attempt).Debug("ack timeout")
	}
	log.Warn("no ack, giving up")
	return false, nil
}

func (s *Sender) waitAck(ctx context.Context, seq uint64) bool {
	timer := time.NewTimer(s.cfg.AckTimeout)
	defer timer.Stop()
	for {
		if s.acked.Load() == seq {
			return true
		}
		select {
		case <-s.ackc:
		case <-timer.C:
			return s.acked.Load() == seq
		case <-ctx.Done():
			return false
		}
	}
}

// Step feeds one poll result. A command is sent only when it differs from
// the last one sent; neutral input clears that latch.
func (s *Sender) Step(ctx context.Context, cmd Command, ok bool) (bool, error) {
	if !ok || !cmd.Valid() {
		s.latched = false
		return false, nil
	}
	if s.latched && cmd == s.last {
		return false, nil
	}
	s.last, s.latched = cmd, true
	_, err := s.Send(ctx, cmd)
	return true, err
}

// Run polls src until ctx is done.
func (s *Sender) Run(ctx context.Context, src InputSource) error {
	logger.Log.WithField("target", s.target.String()).Info("controller sending")
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	for {
		cmd, ok := src.Poll()
		if _, err := s.Step(ctx, cmd, ok); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
