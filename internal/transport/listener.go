package transport

import (
	"fmt"
	"net"

	"sixseat/holdem"
	"sixseat/internal/wire"
)

// Listeners opens the six fixed seat ports, seat i bound to basePort+i.
type Listeners struct {
	listeners [holdem.NumSeats]net.Listener
}

// Listen opens all six seat ports. On any failure it closes whichever
// listeners already opened before returning the error.
func Listen(basePort int) (*Listeners, error) {
	var ls Listeners
	for i := 0; i < holdem.NumSeats; i++ {
		addr := fmt.Sprintf(":%d", basePort+i)
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			ls.Close()
			return nil, fmt.Errorf("transport: listen seat %d on %s: %w", i, addr, err)
		}
		ls.listeners[i] = ln
	}
	return &ls, nil
}

// Close closes every listener that was successfully opened.
func (ls *Listeners) Close() {
	for _, ln := range ls.listeners {
		if ln != nil {
			_ = ln.Close()
		}
	}
}

// AcceptSeat blocks on seat i's listener for one connection, then reads
// its first message and requires it to be JOIN, matching the accept
// phase's contract. On success it returns a bound SeatConn with the
// JOIN already consumed.
func (ls *Listeners) AcceptSeat(seat int) (*SeatConn, error) {
	c, err := ls.listeners[seat].Accept()
	if err != nil {
		return nil, fmt.Errorf("transport: accept seat %d: %w", seat, err)
	}
	sc := newSeatConn(seat, c)
	msg, err := sc.Receive()
	if err != nil {
		sc.Close()
		return nil, fmt.Errorf("transport: seat %d first message: %w", seat, err)
	}
	if msg.Type != wire.Join {
		sc.Close()
		return nil, fmt.Errorf("transport: seat %d's first message was not JOIN (got %d)", seat, msg.Type)
	}
	return sc, nil
}
