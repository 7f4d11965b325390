package holdem

import "errors"

var (
	// ErrNotCurrentSeat is returned when the acting seat is not the one
	// the controller is waiting on.
	ErrNotCurrentSeat = errors.New("holdem: not this seat's turn")
	// ErrSeatNotActive is returned when a non-ACTIVE seat attempts to act.
	ErrSeatNotActive = errors.New("holdem: seat is not active")
	// ErrCheckFacingBet is returned for a CHECK when current_bet != highest_bet.
	ErrCheckFacingBet = errors.New("holdem: cannot check facing a bet")
	// ErrCallAmount is returned for a CALL with no chips to call, or more
	// chips to call than the seat's stack holds.
	ErrCallAmount = errors.New("holdem: invalid call amount")
	// ErrRaiseTarget is returned for a RAISE that doesn't exceed the
	// current highest bet, or that the seat cannot afford.
	ErrRaiseTarget = errors.New("holdem: invalid raise target")
	// ErrHandNotInProgress is returned when an action arrives outside a
	// betting stage.
	ErrHandNotInProgress = errors.New("holdem: no hand in progress")
)

// InvalidStateError reports a caller mistake that isn't a normal betting
// NACK (e.g. driving the state machine out of order).
type InvalidStateError string

func (e InvalidStateError) Error() string { return "holdem: invalid state: " + string(e) }
