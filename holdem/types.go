package holdem

import "sixseat/card"

// NumSeats is the fixed table size.
const NumSeats = 6

// Stage is the table's round-level position in a hand.
type Stage byte

const (
	StageJoin Stage = iota
	StageInit
	StagePreflop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

var stageNames = map[Stage]string{
	StageJoin:     "JOIN",
	StageInit:     "INIT",
	StagePreflop:  "PREFLOP",
	StageFlop:     "FLOP",
	StageTurn:     "TURN",
	StageRiver:    "RIVER",
	StageShowdown: "SHOWDOWN",
}

func (s Stage) String() string { return stageNames[s] }

// SeatStatus is a seat's standing within the current hand.
type SeatStatus byte

const (
	StatusLeft SeatStatus = iota
	StatusActive
	StatusFolded
	StatusAllIn
)

var statusNames = map[SeatStatus]string{
	StatusLeft:   "LEFT",
	StatusActive: "ACTIVE",
	StatusFolded: "FOLDED",
	StatusAllIn:  "ALL_IN",
}

func (s SeatStatus) String() string { return statusNames[s] }

// ActionType is a client-issued betting action.
type ActionType byte

const (
	ActionCheck ActionType = iota
	ActionCall
	ActionRaise
	ActionFold
)

// Seat is one of the six fixed player positions.
type Seat struct {
	Status     SeatStatus
	Stack      int64
	Hole       [2]card.Card
	CurrentBet int64
	HasActed   bool

	// Joined is true once this seat has sent its JOIN message; seats that
	// never join stay LEFT forever and are excluded from the hand.
	Joined bool
}

func newSeat() Seat {
	return Seat{Status: StatusLeft, Hole: [2]card.Card{card.NoCard, card.NoCard}}
}
