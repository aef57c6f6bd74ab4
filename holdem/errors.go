package holdem

import "errors"

// Engine errors. All are recoverable: an operation that returns one of
// these has not mutated any table state. The Discord layer matches them
// with errors.Is to pick a user-facing message.
var (
	// Capacity / lifecycle violations
	ErrTableFull        = errors.New("table full")
	ErrAlreadySeated    = errors.New("already seated")
	ErrJoinMidHand      = errors.New("cannot join mid-hand")
	ErrNotSeated        = errors.New("player not seated")
	ErrNotEnoughPlayers = errors.New("need at least 2 players with chips")
	ErrHandInProgress   = errors.New("hand already in progress")

	// Turn violations
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNoBettingOpen = errors.New("no active betting round")
	ErrCannotAct     = errors.New("seat is folded or all-in")

	// Illegal sizing
	ErrCheckOutstandingBet = errors.New("cannot check with an outstanding bet")
	ErrNothingToCall       = errors.New("nothing to call")
	ErrBetNotAllowed       = errors.New("cannot bet into an existing bet, raise instead")
	ErrRaiseNotAllowed     = errors.New("nothing to raise, bet instead")
	ErrBetTooSmall         = errors.New("bet below minimum")
	ErrRaiseTooSmall       = errors.New("raise below minimum")
	ErrInsufficientChips   = errors.New("insufficient chips")

	ErrUnknownAction = errors.New("unknown action")
)
