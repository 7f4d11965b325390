package holdem

// StreetOutcome reports why a betting round stopped.
type StreetOutcome byte

const (
	StreetContinue StreetOutcome = iota
	StreetDone
	StreetShortCircuit
)

// advanceCurrentSeat moves current_seat to the next ACTIVE seat,
// clockwise, wrapping through the table. Used both by openStreet (to
// skip a non-ACTIVE first-to-act) and by the controller after an ACK.
func (t *Table) advanceCurrentSeat() {
	for step := 1; step <= NumSeats; step++ {
		i := (t.currentSeat + step) % NumSeats
		if t.seats[i].Status == StatusActive {
			t.currentSeat = i
			return
		}
	}
}

// AdvanceCurrentSeat is the exported form the betting controller calls
// after a successfully ACK'd action that didn't end the street.
func (t *Table) AdvanceCurrentSeat() { t.advanceCurrentSeat() }

// NonFoldedNonLeftCount counts seats still contending for the pot
// (ACTIVE or ALL_IN).
func (t *Table) NonFoldedNonLeftCount() int {
	n := 0
	for i := range t.seats {
		if t.seats[i].Status == StatusActive || t.seats[i].Status == StatusAllIn {
			n++
		}
	}
	return n
}

// SoleSurvivor returns the single remaining ACTIVE/ALL_IN seat index
// and true, when exactly one such seat exists.
func (t *Table) SoleSurvivor() (int, bool) {
	survivor := -1
	count := 0
	for i := range t.seats {
		if t.seats[i].Status == StatusActive || t.seats[i].Status == StatusAllIn {
			survivor = i
			count++
		}
	}
	if count == 1 {
		return survivor, true
	}
	return -1, false
}

// TerminationReached implements the termination predicate from the
// betting controller design: every ACTIVE seat must have acted this
// street and match the highest bet. ALL_IN seats are trivially
// satisfied and don't block termination.
func (t *Table) TerminationReached() bool {
	for i := range t.seats {
		s := &t.seats[i]
		if s.Status != StatusActive {
			continue
		}
		if !s.HasActed || s.CurrentBet != t.highestBet {
			return false
		}
	}
	return true
}

// Outcome evaluates what should happen right after a just-applied
// action: short-circuit if only one contender remains, street-done if
// the termination predicate fires, otherwise continue (caller should
// advance current_seat and keep reading).
func (t *Table) Outcome() StreetOutcome {
	if _, ok := t.SoleSurvivor(); ok {
		return StreetShortCircuit
	}
	if t.TerminationReached() {
		return StreetDone
	}
	return StreetContinue
}
