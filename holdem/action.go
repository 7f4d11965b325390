package holdem

// Act validates and applies one betting action from seat. It returns a
// NACK-worthy error and leaves state unchanged on any validation
// failure; callers translate a nil error to ACK and any non-nil error
// to NACK (the caller is also responsible for deciding whether to keep
// re-prompting the same seat; internal/server's runStreet re-reads from
// the same seat after a NACK).
func (t *Table) Act(seat int, action ActionType, raiseTarget int64) error {
	if !t.isBettingStage() {
		return ErrHandNotInProgress
	}
	if seat != t.currentSeat {
		return ErrNotCurrentSeat
	}
	s := &t.seats[seat]
	if s.Status != StatusActive {
		return ErrSeatNotActive
	}

	switch action {
	case ActionCheck:
		if t.highestBet != s.CurrentBet {
			return ErrCheckFacingBet
		}
		s.HasActed = true

	case ActionCall:
		toCall := t.highestBet - s.CurrentBet
		if toCall <= 0 || toCall > s.Stack {
			return ErrCallAmount
		}
		s.Stack -= toCall
		s.CurrentBet += toCall
		t.pot += toCall
		s.HasActed = true
		if s.Stack == 0 {
			s.Status = StatusAllIn
		}

	case ActionRaise:
		delta := raiseTarget - s.CurrentBet
		if raiseTarget <= t.highestBet || delta <= 0 || delta > s.Stack {
			return ErrRaiseTarget
		}
		s.Stack -= delta
		s.CurrentBet = raiseTarget
		t.pot += delta
		t.highestBet = raiseTarget
		for i := range t.seats {
			if i != seat && t.seats[i].Status == StatusActive {
				t.seats[i].HasActed = false
			}
		}
		s.HasActed = true
		if s.Stack == 0 {
			s.Status = StatusAllIn
		}

	case ActionFold:
		s.Status = StatusFolded
		s.HasActed = true

	default:
		return InvalidStateError("unknown action type")
	}
	return nil
}

func (t *Table) isBettingStage() bool {
	switch t.stage {
	case StagePreflop, StageFlop, StageTurn, StageRiver:
		return true
	}
	return false
}
