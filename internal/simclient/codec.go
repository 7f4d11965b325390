package simclient

import (
	"bufio"
	"net"

	"sixseat/internal/wire"
)

// codec frames ClientMessage/ServerMessage records over a net.Conn,
// mirroring transport.SeatConn from the client side of the wire.
type codec struct {
	conn net.Conn
	r    *bufio.Reader
}

func newCodec(conn net.Conn) *codec {
	return &codec{conn: conn, r: bufio.NewReader(conn)}
}

func (c *codec) writeClient(m wire.ClientMessage) error {
	return wire.WriteClientMessage(c.conn, m)
}

func (c *codec) readServer() (wire.ServerMessage, error) {
	return wire.ReadServerMessage(c.r)
}
