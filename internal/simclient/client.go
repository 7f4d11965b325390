// Package simclient is a scripted TCP client for exercising a running
// server end to end in tests. Its command language mirrors the
// automated console client the engine was bootstrapped from: ready,
// leave, raise <amount|allin>, call, check, fold. Once a script runs
// dry, the client folds on every turn until it sees an END, then
// leaves, matching that client's EOF-on-stdin behavior.
package simclient

import (
	"fmt"
	"net"
	"strconv"

	"sixseat/internal/wire"
)

// Client drives one seat's connection with a fixed command script.
type Client struct {
	seat   int
	conn   net.Conn
	codec  *codec
	script []string
	pos    int

	// LastInfo and LastEnd record the most recent broadcast of each
	// kind this client has observed, for test assertions.
	LastInfo wire.InfoPayload
	LastEnd  wire.EndPayload
}

// Dial connects to addr as the given seat and sends JOIN.
func Dial(addr string, seat int, script []string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("simclient: dial %s: %w", addr, err)
	}
	c := &Client{seat: seat, conn: conn, codec: newCodec(conn), script: script}
	if err := c.codec.writeClient(wire.ClientMessage{Type: wire.Join}); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// nextCommand returns the next scripted command, or "fold" once the
// script is exhausted.
func (c *Client) nextCommand() string {
	if c.pos >= len(c.script) {
		return "fold"
	}
	cmd := c.script[c.pos]
	c.pos++
	return cmd
}

// PlayOut runs the client until it receives HALT or a read fails
// (typically the server closing the connection after processing LEAVE);
// both return nil. It returns an error if a send fails or if
// maxMessages messages arrive without either. The latest INFO and END
// it saw are kept in LastInfo and LastEnd.
func (c *Client) PlayOut(maxMessages int) error {
	for i := 0; i < maxMessages; i++ {
		msg, err := c.codec.readServer()
		if err != nil {
			return nil
		}
		switch msg.Type {
		case wire.Halt:
			return nil
		case wire.Info:
			c.LastInfo = msg.Info
			if int(msg.Info.CurrentSeat) != c.seat {
				continue
			}
			if err := c.act(); err != nil {
				return err
			}
		case wire.End:
			c.LastEnd = msg.End
			if err := c.actAfterEnd(); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("simclient: exceeded %d messages without halting", maxMessages)
}

// act sends one command in response to an INFO packet addressed to
// this seat.
func (c *Client) act() error {
	cmd := c.nextCommand()
	return c.send(cmd)
}

// actAfterEnd sends READY to continue playing, or LEAVE once the
// script is exhausted, mirroring the scripted client's behavior
// between hands.
func (c *Client) actAfterEnd() error {
	if c.pos >= len(c.script) {
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Leave})
	}
	return c.codec.writeClient(wire.ClientMessage{Type: wire.Ready})
}

func (c *Client) send(cmd string) error {
	switch {
	case cmd == "call":
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Call})
	case cmd == "check":
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Check})
	case cmd == "fold":
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Fold})
	case cmd == "ready":
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Ready})
	case cmd == "leave":
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Leave})
	case len(cmd) > 6 && cmd[:6] == "raise ":
		arg := cmd[6:]
		var amount int64
		if arg == "allin" {
			amount = int64(c.LastInfo.Stacks[c.seat]) + int64(c.LastInfo.CurrentBets[c.seat])
		} else {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("simclient: bad raise amount %q: %w", arg, err)
			}
			amount = n
		}
		return c.codec.writeClient(wire.ClientMessage{Type: wire.Raise, Params: [1]int64{amount}})
	default:
		return fmt.Errorf("simclient: unrecognized command %q", cmd)
	}
}
