package wire

import "sixseat/holdem"

// FromInfo converts an engine-level info snapshot into its wire form.
func FromInfo(s holdem.InfoSnapshot) InfoPayload {
	p := InfoPayload{
		Pot:         s.Pot,
		HighestBet:  s.HighestBet,
		Dealer:      int32(s.Dealer),
		CurrentSeat: int32(s.CurrentSeat),
	}
	p.Hole[0] = int8(s.Hole[0])
	p.Hole[1] = int8(s.Hole[1])
	for i := 0; i < 5; i++ {
		p.Community[i] = int8(s.Community[i])
	}
	for i := 0; i < holdem.NumSeats; i++ {
		p.Stacks[i] = s.Stacks[i]
		p.CurrentBets[i] = s.CurrentBets[i]
		p.VisibleStatus[i] = s.VisibleStatus[i]
	}
	return p
}

// FromEnd converts an engine-level end-of-hand snapshot into its wire
// form.
func FromEnd(s holdem.EndSnapshot) EndPayload {
	p := EndPayload{
		Pot:    s.Pot,
		Dealer: int32(s.Dealer),
		Winner: int32(s.Winner),
	}
	for i := 0; i < 5; i++ {
		p.Community[i] = int8(s.Community[i])
	}
	for i := 0; i < holdem.NumSeats; i++ {
		p.Hole[i][0] = int8(s.Hole[i][0])
		p.Hole[i][1] = int8(s.Hole[i][1])
		p.Stacks[i] = s.Stacks[i]
		p.VisibleStatus[i] = s.VisibleStatus[i]
	}
	return p
}
