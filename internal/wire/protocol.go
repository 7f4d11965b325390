// Package wire defines the fixed-width message records exchanged over
// each seat's TCP connection and the codec that frames them.
package wire

import "sixseat/holdem"

// ClientMessageType tags a client-to-server message.
type ClientMessageType uint8

const (
	Join ClientMessageType = iota
	Leave
	Ready
	Raise
	Call
	Check
	Fold
)

// ClientMessage is one fixed-width client record. Only Params[0] is
// used, carrying the raise target for Raise.
type ClientMessage struct {
	Type   ClientMessageType
	Params [1]int64
}

// ServerMessageType tags a server-to-client message.
type ServerMessageType uint8

const (
	Ack ServerMessageType = iota
	Nack
	Info
	End
	Halt
)

// InfoPayload mirrors holdem.InfoSnapshot on the wire: the recipient's
// own hole cards, the visible community cards, and the public table
// state.
type InfoPayload struct {
	Hole          [2]int8
	Community     [5]int8
	Stacks        [holdem.NumSeats]int64
	CurrentBets   [holdem.NumSeats]int64
	Pot           int64
	HighestBet    int64
	Dealer        int32
	CurrentSeat   int32
	VisibleStatus [holdem.NumSeats]uint8
}

// EndPayload mirrors holdem.EndSnapshot on the wire: every seat's hole
// cards revealed, post-payout stacks, and the winning seat.
type EndPayload struct {
	Hole          [holdem.NumSeats][2]int8
	Community     [5]int8
	Stacks        [holdem.NumSeats]int64
	Pot           int64
	Dealer        int32
	Winner        int32
	VisibleStatus [holdem.NumSeats]uint8
}

// ServerMessage is one fixed-width server record. Only one of the
// payload fields is meaningful, selected by Type; Ack/Nack/Halt carry
// neither.
type ServerMessage struct {
	Type ServerMessageType
	Info InfoPayload
	End  EndPayload
}
