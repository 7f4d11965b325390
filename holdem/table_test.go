package holdem

import "testing"

func newReadyTable(t *testing.T, stack int64, seed int64) *Table {
	t.Helper()
	tb, err := NewTable(Config{StartingStack: stack, Seed: seed})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for i := 0; i < NumSeats; i++ {
		if err := tb.Join(i); err != nil {
			t.Fatalf("Join(%d): %v", i, err)
		}
	}
	if tb.Stage() != StageInit {
		t.Fatalf("expected INIT after 6 joins, got %v", tb.Stage())
	}
	for i := 0; i < NumSeats; i++ {
		tb.MarkReady(i)
	}
	if tb.ReadyCount() != NumSeats {
		t.Fatalf("expected 6 ready, got %d", tb.ReadyCount())
	}
	tb.StartHand()
	return tb
}

func TestJoin_TransitionsJoinToInitOnSixth(t *testing.T) {
	tb, err := NewTable(Config{StartingStack: 1000})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for i := 0; i < NumSeats-1; i++ {
		if err := tb.Join(i); err != nil {
			t.Fatalf("Join(%d): %v", i, err)
		}
		if tb.Stage() != StageJoin {
			t.Fatalf("expected still JOIN after %d joins, got %v", i+1, tb.Stage())
		}
	}
	if err := tb.Join(NumSeats - 1); err != nil {
		t.Fatalf("final Join: %v", err)
	}
	if tb.Stage() != StageInit {
		t.Fatalf("expected INIT after sixth join, got %v", tb.Stage())
	}
}

func TestStartHand_DealsHoleCardsAndOpensPreflop(t *testing.T) {
	tb := newReadyTable(t, 1000, 7)
	if tb.Stage() != StagePreflop {
		t.Fatalf("expected PREFLOP, got %v", tb.Stage())
	}
	for i := 0; i < NumSeats; i++ {
		s := tb.Seat(i)
		if s.Hole[0] < 0 || s.Hole[1] < 0 {
			t.Fatalf("seat %d missing hole cards: %v", i, s.Hole)
		}
	}
	for _, c := range tb.Community() {
		if c >= 0 {
			t.Fatalf("expected no community cards preflop, got %v", tb.Community())
		}
	}
}

// S3: an illegal raise (target not exceeding highest_bet) is NACK'd and
// leaves the state, including current_seat, unchanged.
func TestAct_IllegalRaiseIsRejectedAndStateUnchanged(t *testing.T) {
	tb := newReadyTable(t, 1000, 1)
	seat := tb.CurrentSeat()
	if err := tb.Act(seat, ActionRaise, 0); err != ErrRaiseTarget {
		t.Fatalf("expected ErrRaiseTarget, got %v", err)
	}
	if tb.CurrentSeat() != seat {
		t.Fatalf("current seat must not move on NACK: got %d want %d", tb.CurrentSeat(), seat)
	}
	if tb.HighestBet() != 0 {
		t.Fatalf("highest bet must be unchanged: %d", tb.HighestBet())
	}
}

func TestAct_OutOfTurnIsRejected(t *testing.T) {
	tb := newReadyTable(t, 1000, 1)
	wrong := (tb.CurrentSeat() + 1) % NumSeats
	if err := tb.Act(wrong, ActionCheck, 0); err != ErrNotCurrentSeat {
		t.Fatalf("expected ErrNotCurrentSeat, got %v", err)
	}
}

// S4: a RAISE that exhausts the seat's stack transitions it to ALL_IN
// and clears every other ACTIVE seat's has_acted.
func TestAct_RaiseAllIn(t *testing.T) {
	tb := newReadyTable(t, 7, 2)
	seat := tb.CurrentSeat()
	if err := tb.Act(seat, ActionRaise, 7); err != nil {
		t.Fatalf("Act raise: %v", err)
	}
	s := tb.Seat(seat)
	if s.Stack != 0 || s.Status != StatusAllIn {
		t.Fatalf("expected seat all-in with 0 stack, got stack=%d status=%v", s.Stack, s.Status)
	}
	if tb.Pot() != 7 || tb.HighestBet() != 7 {
		t.Fatalf("expected pot=7 highest_bet=7, got pot=%d highest_bet=%d", tb.Pot(), tb.HighestBet())
	}
	for i := 0; i < NumSeats; i++ {
		if i == seat {
			continue
		}
		if tb.Seat(i).Status == StatusActive && tb.Seat(i).HasActed {
			t.Fatalf("seat %d has_acted should have been cleared by the raise", i)
		}
	}
}

// S1: folding down to a single seat short-circuits straight to payout.
func TestHandLifecycle_EveryoneFoldsExceptOne(t *testing.T) {
	tb := newReadyTable(t, 1000, 3)
	potBefore := tb.Pot()
	survivor := -1
	for tb.Outcome() != StreetShortCircuit {
		seat := tb.CurrentSeat()
		if err := tb.Act(seat, ActionFold, 0); err != nil {
			t.Fatalf("fold seat %d: %v", seat, err)
		}
		if s, ok := tb.SoleSurvivor(); ok {
			survivor = s
			break
		}
		tb.AdvanceCurrentSeat()
	}
	if survivor == -1 {
		t.Fatalf("expected a sole survivor")
	}
	tb.ShortCircuit()
	if tb.Stage() != StageShowdown {
		t.Fatalf("expected SHOWDOWN after short-circuit, got %v", tb.Stage())
	}
	settlement := tb.Settle()
	if settlement.Winner != survivor {
		t.Fatalf("expected winner=%d, got %d", survivor, settlement.Winner)
	}
	if !settlement.ShortCircuited {
		t.Fatalf("expected ShortCircuited=true")
	}
	if settlement.Amount != potBefore {
		t.Fatalf("expected awarded amount %d to equal pre-showdown pot %d", settlement.Amount, potBefore)
	}
	if tb.Pot() != 0 {
		t.Fatalf("pot must be zero after payout, got %d", tb.Pot())
	}
}

func TestAdvanceStreet_DealsCorrectCommunityCounts(t *testing.T) {
	tb := newReadyTable(t, 1000, 9)
	// Preflop -> Flop
	tb.AdvanceStreet()
	if tb.Stage() != StageFlop {
		t.Fatalf("expected FLOP, got %v", tb.Stage())
	}
	n := 0
	for _, c := range tb.Community() {
		if c >= 0 {
			n++
		}
	}
	if n != 3 {
		t.Fatalf("expected 3 community cards on flop, got %d", n)
	}

	tb.AdvanceStreet()
	if tb.Stage() != StageTurn {
		t.Fatalf("expected TURN, got %v", tb.Stage())
	}
	tb.AdvanceStreet()
	if tb.Stage() != StageRiver {
		t.Fatalf("expected RIVER, got %v", tb.Stage())
	}
	n = 0
	for _, c := range tb.Community() {
		if c >= 0 {
			n++
		}
	}
	if n != 5 {
		t.Fatalf("expected 5 community cards on river, got %d", n)
	}

	tb.AdvanceStreet()
	if tb.Stage() != StageShowdown {
		t.Fatalf("expected SHOWDOWN, got %v", tb.Stage())
	}
}

// Two seats going all-in before the river must leave zero ACTIVE seats
// for the remaining streets: Outcome has to report StreetDone the
// instant each of those streets opens, with current_seat never
// pointing back at either all-in seat (the "run out the board" case
// S4's single all-in hints at, generalized to two simultaneous ones).
func TestBetting_TwoAllInsRunOutTheBoard(t *testing.T) {
	tb := newReadyTable(t, 10, 5)

	firstAllIn := tb.CurrentSeat()
	if err := tb.Act(firstAllIn, ActionRaise, 10); err != nil {
		t.Fatalf("raise all-in: %v", err)
	}
	if tb.Outcome() != StreetContinue {
		t.Fatalf("expected street to continue after one raise, got %v", tb.Outcome())
	}
	tb.AdvanceCurrentSeat()

	secondAllIn := tb.CurrentSeat()
	if err := tb.Act(secondAllIn, ActionCall, 0); err != nil {
		t.Fatalf("call all-in: %v", err)
	}
	if tb.Outcome() == StreetContinue {
		tb.AdvanceCurrentSeat()
	}

	for tb.Outcome() == StreetContinue {
		seat := tb.CurrentSeat()
		if seat == firstAllIn || seat == secondAllIn {
			t.Fatalf("an already all-in seat should never be current_seat again: %d", seat)
		}
		if err := tb.Act(seat, ActionFold, 0); err != nil {
			t.Fatalf("fold seat %d: %v", seat, err)
		}
		if tb.Outcome() == StreetContinue {
			tb.AdvanceCurrentSeat()
		}
	}
	if tb.Outcome() != StreetDone {
		t.Fatalf("expected StreetDone once only all-in seats remain, got %v", tb.Outcome())
	}
	if tb.NonFoldedNonLeftCount() != 2 {
		t.Fatalf("expected exactly 2 contenders remaining, got %d", tb.NonFoldedNonLeftCount())
	}

	for tb.Stage() != StageShowdown {
		tb.AdvanceStreet()
		if tb.Stage() == StageShowdown {
			break
		}
		if tb.Outcome() != StreetDone {
			t.Fatalf("expected %v to open with StreetDone (no ACTIVE seats left), got %v", tb.Stage(), tb.Outcome())
		}
	}

	settlement := tb.Settle()
	if settlement.Winner != firstAllIn && settlement.Winner != secondAllIn {
		t.Fatalf("winner must be one of the two all-in seats, got %d", settlement.Winner)
	}
	if settlement.ShortCircuited {
		t.Fatalf("a genuine 2-way all-in to showdown must not be reported as short-circuited")
	}
}

// P6: identical seed and identical action sequence produce identical
// resulting state (deal + outcome), run twice.
func TestDeterminism_SameSeedSameActionsSameResult(t *testing.T) {
	run := func() (Settlement, [NumSeats][2]int8) {
		tb := newReadyTable(t, 500, 42)
		for tb.Outcome() == StreetContinue {
			seat := tb.CurrentSeat()
			if tb.HighestBet() == tb.Seat(seat).CurrentBet {
				_ = tb.Act(seat, ActionCheck, 0)
			} else {
				_ = tb.Act(seat, ActionCall, 0)
			}
			if tb.Outcome() == StreetContinue {
				tb.AdvanceCurrentSeat()
			}
		}
		tb.AdvanceStreet()
		for tb.Stage() != StageShowdown {
			for tb.Outcome() == StreetContinue {
				seat := tb.CurrentSeat()
				_ = tb.Act(seat, ActionCheck, 0)
				if tb.Outcome() == StreetContinue {
					tb.AdvanceCurrentSeat()
				}
			}
			tb.AdvanceStreet()
		}
		settlement := tb.Settle()
		var holes [NumSeats][2]int8
		for i := 0; i < NumSeats; i++ {
			holes[i][0] = int8(tb.Seat(i).Hole[0])
			holes[i][1] = int8(tb.Seat(i).Hole[1])
		}
		return settlement, holes
	}

	s1, h1 := run()
	s2, h2 := run()
	if s1.Winner != s2.Winner || s1.Amount != s2.Amount {
		t.Fatalf("settlements diverged: %+v vs %+v", s1, s2)
	}
	if h1 != h2 {
		t.Fatalf("hole cards diverged across identical-seed runs: %v vs %v", h1, h2)
	}
}
