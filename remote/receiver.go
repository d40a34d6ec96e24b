package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devin-hart/dungeon-crawltographer/logger"
)

// DefaultListen is the mapper's well-known receive address.
const DefaultListen = ":5000"

const (
	maxDatagram    = 1024
	minReadBackoff = 5 * time.Millisecond
	maxReadBackoff = time.Second
)

// Receiver acknowledges command datagrams and posts them to a Queue.
type Receiver struct {
	conn  net.PacketConn
	queue *Queue
}

// Listen binds addr. Events are posted to q.
func Listen(addr string, q *Queue) (*Receiver, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("remote: listen %s: %w", addr, err)
	}
	return &Receiver{conn: conn, queue: q}, nil
}

func (r *Receiver) Addr() net.Addr {
	return r.conn.LocalAddr()
}

func (r *Receiver) Close() error {
	return r.conn.Close()
}

// Serve reads datagrams until ctx is done or the receiver is closed.
func (r *Receiver) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { r.conn.Close() })
	defer stop()

	logger.Log.WithField("addr", r.Addr().String()).Info("remote receiver listening")
	buf := make([]byte, maxDatagram)
	failures := 0
	for {
		n, from, err := r.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			failures++
			wait := readBackoff(failures)
			logger.Log.WithError(err).WithField("retry_in", wait).Warn("remote receive failed")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(wait):
			}
			continue
		}
		failures = 0
		r.handle(buf[:n], from)
	}
}

// readBackoff is the pause after the nth consecutive read error, doubling
// from minReadBackoff up to maxReadBackoff.
func readBackoff(n int) time.Duration {
	if n < 1 {
		return 0
	}
	d := minReadBackoff
	for i := 1; i < n && d < maxReadBackoff; i++ {
		d *= 2
	}
	return min(d, maxReadBackoff)
}

// handle acknowledges a valid message before queueing it. Malformed
// datagrams get no reply.
func (r *Receiver) handle(b []byte, from net.Addr) {
	msg, err := ParseMessage(b)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"from":    from.String(),
			"payload": string(b),
		}).Debug("dropped datagram")
		return
	}

	if _, err := r.conn.WriteTo(FormatAck(msg.Seq), from); err != nil {
		logger.Log.WithError(err).WithField("seq", msg.Seq).Warn("ack failed")
	}

	cmd, _ := msg.Command()
	logger.Log.WithFields(logrus.Fields{
		"seq":     msg.Seq,
		"command": msg.Name,
		"from":    from.String(),
	}).Debug("remote command")
	r.queue.Post(Event{Seq: msg.Seq, Command: cmd, Name: msg.Name, From: from})
}
