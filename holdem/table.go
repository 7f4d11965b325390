// Package holdem implements the game state machine, betting-round
// controller, and hand evaluator for a six-seat No-Limit Hold'em table.
// The package is transport-agnostic: a Table mutates pure in-memory
// state and leaves all seat I/O to its caller, which is expected to
// serialize every call onto a single goroutine (the game loop).
package holdem

import (
	"math/rand"

	"sixseat/card"
)

// Table is the authoritative state for one six-seat game. All mutating
// methods are safe to call only from the single owning game loop; Table
// performs no internal locking because ordering, not mutual exclusion,
// is the actual correctness requirement (see the concurrency note in
// the engine's package doc).
type Table struct {
	cfg Config
	rng *rand.Rand
	deck *card.Deck

	seats [NumSeats]Seat

	dealerSeat  int
	currentSeat int
	community   [5]card.Card
	highestBet  int64
	pot         int64
	stage       Stage

	handStarted bool // distinguishes "never dealt a hand" from dealerSeat==0 by convention
	ready       [NumSeats]bool

	// startingStackOverride lets an operator overlay adjust the stack
	// newly joining seats get, without rebuilding the table.
	startingStackOverride *int64
}

// SetStartingStackOverride changes the stack newly joining seats
// receive, taking effect on the next Join call.
func (t *Table) SetStartingStackOverride(v int64) {
	t.startingStackOverride = &v
}

// ClearStartingStackOverride reverts to Config.StartingStack for future
// joins.
func (t *Table) ClearStartingStackOverride() {
	t.startingStackOverride = nil
}

// NewTable builds a Table in StageJoin with all seats LEFT.
func NewTable(cfg Config) (*Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Table{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		deck: card.NewDeck(),
		stage: StageJoin,
	}
	for i := range t.seats {
		t.seats[i] = newSeat()
	}
	t.resetCommunity()
	return t, nil
}

func (t *Table) resetCommunity() {
	for i := range t.community {
		t.community[i] = card.NoCard
	}
}

// Stage returns the table's current round-level stage.
func (t *Table) Stage() Stage { return t.stage }

// Seat returns a copy of seat i's current state.
func (t *Table) Seat(i int) Seat { return t.seats[i] }

// DealerSeat and CurrentSeat expose turn-order pointers.
func (t *Table) DealerSeat() int   { return t.dealerSeat }
func (t *Table) CurrentSeat() int  { return t.currentSeat }
func (t *Table) Community() [5]card.Card { return t.community }
func (t *Table) HighestBet() int64 { return t.highestBet }
func (t *Table) Pot() int64        { return t.pot }

// Join binds a connecting client to seat i. Valid only in StageJoin or
// for a seat that was previously LEFT and is rejoining before the
// table has dealt a hand; a seat that left mid-run keeps its seat index
// reserved but does not regain chips (reconnection mid-hand is out of
// scope).
func (t *Table) Join(seat int) error {
	if seat < 0 || seat >= NumSeats {
		return InvalidStateError("seat index out of range")
	}
	if t.stage != StageJoin && (t.handStarted || t.seats[seat].Status != StatusLeft) {
		return InvalidStateError("join outside the join phase")
	}
	s := &t.seats[seat]
	s.Joined = true
	s.Status = StatusActive
	s.Stack = t.cfg.StartingStack
	if t.startingStackOverride != nil {
		s.Stack = *t.startingStackOverride
	}
	if t.stage == StageJoin && t.allJoined() {
		t.stage = StageInit
	}
	return nil
}

func (t *Table) allJoined() bool {
	for i := range t.seats {
		if !t.seats[i].Joined {
			return false
		}
	}
	return true
}

// NonLeftCount returns how many seats are not LEFT.
func (t *Table) NonLeftCount() int {
	n := 0
	for i := range t.seats {
		if t.seats[i].Status != StatusLeft {
			n++
		}
	}
	return n
}

// Leave marks seat i LEFT. Safe to call at any stage; an in-progress
// betting round simply treats the seat as no longer eligible to act.
func (t *Table) Leave(seat int) {
	t.seats[seat].Status = StatusLeft
	t.seats[seat].Joined = false
}

// MarkReady records a READY from seat while the table is in INIT,
// collecting between-hand readiness. Call ReadyToStart after each one
// to check whether enough seats are ready to deal.
func (t *Table) MarkReady(seat int) {
	if t.seats[seat].Status != StatusLeft {
		t.ready[seat] = true
	}
}

// ClearReady resets readiness tracking; called once a hand starts or
// the table transitions back to INIT.
func (t *Table) ClearReady() {
	for i := range t.ready {
		t.ready[i] = false
	}
}

// IsReady reports whether seat has already sent READY this INIT phase.
func (t *Table) IsReady(seat int) bool {
	return t.ready[seat]
}

// ReadyCount returns how many non-LEFT seats have sent READY this
// INIT phase.
func (t *Table) ReadyCount() int {
	n := 0
	for i := range t.seats {
		if t.seats[i].Status != StatusLeft && t.ready[i] {
			n++
		}
	}
	return n
}

// StartHand transitions INIT -> PREFLOP: shuffles, deals hole cards,
// and opens the first betting round. The caller is responsible for
// having already confirmed at least two non-LEFT seats are ready.
func (t *Table) StartHand() {
	t.ClearReady()
	t.perHandReset()
	t.dealHole()
	t.stage = StagePreflop
	t.openStreet()
}

func (t *Table) perHandReset() {
	if len(t.cfg.DeckOverride) == 52 {
		t.deck = card.NewDeckFromCards(t.cfg.DeckOverride)
	} else {
		t.deck = card.NewDeck()
		t.deck.Shuffle(t.rng)
	}
	t.resetCommunity()
	t.pot = 0
	t.highestBet = 0
	for i := range t.seats {
		if t.seats[i].Status == StatusLeft {
			continue
		}
		t.seats[i].Status = StatusActive
		t.seats[i].Hole = [2]card.Card{card.NoCard, card.NoCard}
		t.seats[i].CurrentBet = 0
		t.seats[i].HasActed = false
	}
	t.dealerSeat = t.nextNonLeftSeat(t.dealerSeat, t.handStarted)
	t.handStarted = true
}

// nextNonLeftSeat finds the next non-LEFT seat strictly after `from`
// (wrapping). When includeFrom is false and this is the very first
// hand, it instead returns the lowest-index ACTIVE seat.
func (t *Table) nextNonLeftSeat(from int, includeFrom bool) int {
	if !includeFrom {
		for i := 0; i < NumSeats; i++ {
			if t.seats[i].Status != StatusLeft {
				return i
			}
		}
		return 0
	}
	for step := 1; step <= NumSeats; step++ {
		i := (from + step) % NumSeats
		if t.seats[i].Status != StatusLeft {
			return i
		}
	}
	return from
}

func (t *Table) dealHole() {
	order := t.activeSeatsFrom(t.dealerSeat)
	for pass := 0; pass < 2; pass++ {
		for _, seat := range order {
			t.seats[seat].Hole[pass] = t.deck.Draw()
		}
	}
}

// activeSeatsFrom returns ACTIVE seat indices in ascending order
// starting strictly after `dealer` and wrapping, matching the standard
// deal-clockwise-from-the-button order.
func (t *Table) activeSeatsFrom(dealer int) []int {
	var out []int
	for step := 1; step <= NumSeats; step++ {
		i := (dealer + step) % NumSeats
		if t.seats[i].Status == StatusActive {
			out = append(out, i)
		}
	}
	return out
}

// NoCurrentSeat is the sentinel current_seat takes when a street opens
// with zero ACTIVE seats left to act (everyone remaining is ALL_IN, or
// ALL_IN plus FOLDED — the "run out the board" case). It is outside the
// valid 0..NumSeats-1 range on purpose: a seat comparing the broadcast
// current_seat against its own index must never match it by accident.
const NoCurrentSeat = -1

// openStreet performs the per-street reset: clears bets/has_acted,
// zeroes highest_bet, and sets current_seat to the first ACTIVE seat
// strictly clockwise of the dealer.
//
// When no ACTIVE seat remains, current_seat is set to NoCurrentSeat
// rather than some real seat index, satisfying I4 (current_seat only
// ever references an ACTIVE seat, or no seat at all); callers must
// check Outcome before reading from current_seat, since
// TerminationReached is vacuously true with zero ACTIVE seats to
// satisfy and Outcome already reports StreetDone in that case.
func (t *Table) openStreet() {
	t.highestBet = 0
	for i := range t.seats {
		if t.seats[i].Status == StatusActive || t.seats[i].Status == StatusAllIn {
			t.seats[i].CurrentBet = 0
			t.seats[i].HasActed = false
		}
	}
	first := t.activeSeatsFrom(t.dealerSeat)
	if len(first) == 0 {
		t.currentSeat = NoCurrentSeat
		return
	}
	t.currentSeat = first[0]
	if t.seats[t.currentSeat].Status != StatusActive {
		t.advanceCurrentSeat()
	}
}

// AdvanceStreet deals the next street's community cards (or moves to
// SHOWDOWN from RIVER) and runs the per-street reset. The caller must
// only invoke this once the betting controller has signaled STREET_DONE.
func (t *Table) AdvanceStreet() {
	switch t.stage {
	case StagePreflop:
		for i := 0; i < 3; i++ {
			t.community[i] = t.deck.Draw()
		}
		t.stage = StageFlop
		t.openStreet()
	case StageFlop:
		t.community[3] = t.deck.Draw()
		t.stage = StageTurn
		t.openStreet()
	case StageTurn:
		t.community[4] = t.deck.Draw()
		t.stage = StageRiver
		t.openStreet()
	case StageRiver:
		t.stage = StageShowdown
	default:
		panic("holdem: AdvanceStreet called outside a betting stage")
	}
}

// ShortCircuit jumps straight to SHOWDOWN when only one non-folded
// seat remains.
func (t *Table) ShortCircuit() {
	t.stage = StageShowdown
}

// ResetForNextHand transitions SHOWDOWN -> INIT once READY/LEAVE has
// been collected for the next hand.
func (t *Table) ResetForNextHand() {
	t.stage = StageInit
}
