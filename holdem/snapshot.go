package holdem

import "sixseat/card"

// visibleStatus maps a Seat's internal status to the wire's tri-state
// encoding: 1 for ACTIVE or ALL_IN, 0 for FOLDED, 2 for LEFT.
func visibleStatus(s SeatStatus) byte {
	switch s {
	case StatusActive, StatusAllIn:
		return 1
	case StatusFolded:
		return 0
	default:
		return 2
	}
}

// InfoSnapshot is the per-recipient view broadcast during a betting
// round: only the recipient's own hole cards are populated, and
// community slots not yet dealt stay NoCard.
type InfoSnapshot struct {
	Hole          [2]card.Card
	Community     [5]card.Card
	Stacks        [NumSeats]int64
	CurrentBets   [NumSeats]int64
	Pot           int64
	HighestBet    int64
	Dealer        int
	CurrentSeat   int // NoCurrentSeat when no ACTIVE seat remains to act
	VisibleStatus [NumSeats]byte
}

// BuildInfo projects the table into the view seat `forSeat` should
// receive: its own hole cards visible, everyone else's hidden.
func (t *Table) BuildInfo(forSeat int) InfoSnapshot {
	info := InfoSnapshot{
		Community:   t.community,
		Pot:         t.pot,
		HighestBet:  t.highestBet,
		Dealer:      t.dealerSeat,
		CurrentSeat: t.currentSeat,
		Hole:        t.seats[forSeat].Hole,
	}
	for i := range t.seats {
		info.Stacks[i] = t.seats[i].Stack
		info.CurrentBets[i] = t.seats[i].CurrentBet
		info.VisibleStatus[i] = visibleStatus(t.seats[i].Status)
	}
	return info
}

// EndSnapshot is the hand-ending broadcast: every hole card is
// revealed, regardless of recipient. Community slots never dealt this
// hand (because it ended before the river) stay NoCard rather than
// being drawn out.
type EndSnapshot struct {
	Hole          [NumSeats][2]card.Card
	Community     [5]card.Card
	Stacks        [NumSeats]int64
	Pot           int64
	Dealer        int
	Winner        int
	VisibleStatus [NumSeats]byte
}

// BuildEnd projects the table's end-of-hand state after Settle has run.
func (t *Table) BuildEnd(s Settlement) EndSnapshot {
	end := EndSnapshot{
		Community: t.community,
		Pot:       t.pot,
		Dealer:    t.dealerSeat,
		Winner:    s.Winner,
	}
	for i := range t.seats {
		end.Hole[i] = t.seats[i].Hole
		end.Stacks[i] = t.seats[i].Stack
		end.VisibleStatus[i] = visibleStatus(t.seats[i].Status)
	}
	return end
}
