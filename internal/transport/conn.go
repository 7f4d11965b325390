// Package transport accepts the six per-seat TCP connections and
// frames wire.ClientMessage / wire.ServerMessage records over them.
package transport

import (
	"bufio"
	"io"
	"net"

	"sixseat/internal/wire"
)

// SeatConn is one seat's bound connection. Receive blocks until a full
// client record arrives or the peer is gone; Send writes one server
// record. Both are safe to call only from the single goroutine the
// game loop has assigned this seat — SeatConn does no locking of its
// own, matching the engine's single-actor ownership model.
type SeatConn struct {
	seat int
	conn net.Conn
	r    *bufio.Reader
}

func newSeatConn(seat int, c net.Conn) *SeatConn {
	if tc, ok := c.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return &SeatConn{seat: seat, conn: c, r: bufio.NewReader(c)}
}

// Seat returns the seat index this connection is bound to.
func (s *SeatConn) Seat() int { return s.seat }

// Receive reads the next client record. A returned error (including
// io.EOF on a clean close) means the transport failed and the caller
// must transition the seat to LEFT.
func (s *SeatConn) Receive() (wire.ClientMessage, error) {
	return wire.ReadClientMessage(s.r)
}

// Send writes one server record.
func (s *SeatConn) Send(m wire.ServerMessage) error {
	return wire.WriteServerMessage(s.conn, m)
}

// Close closes the underlying connection. Safe to call more than once.
func (s *SeatConn) Close() error {
	return s.conn.Close()
}

var _ io.Closer = (*SeatConn)(nil)
