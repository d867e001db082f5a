package game

import "errors"

var (
	// ErrOutOfTurn is returned when an action names a seat that is not acting
	ErrOutOfTurn = errors.New("action out of turn")
	// ErrInvalidRaise is returned for a raise that does not exceed the table
	// bet or exceeds the player's stack
	ErrInvalidRaise = errors.New("invalid raise")
	// ErrIllegalPhase is returned when a transition is not allowed in the current phase
	ErrIllegalPhase = errors.New("illegal action for phase")
	// ErrDeckExhausted is returned if the deck runs out of cards
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrRoundIncomplete is returned by AdvancePhase while betting is still open
	ErrRoundIncomplete = errors.New("betting round incomplete")
	// ErrUnknownAction is returned for an action type the engine does not know
	ErrUnknownAction = errors.New("unknown action")
)
