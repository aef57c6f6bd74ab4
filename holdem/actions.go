package holdem

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ValidAction is an action the current actor may take, with the legal
// amount range for amount-carrying actions. Min and Max are zero for
// fold and check. For raise, amounts are the target total for the round.
type ValidAction struct {
	Action Action `json:"action"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

// ValidActions returns the actions legal for the current actor given their
// chips and the amount needed to call. Read-only; the renderer uses it to
// enable buttons.
func (t *Table) ValidActions() []ValidAction {
	if !t.Phase.Betting() || t.CurrentIndex < 0 || t.CurrentIndex >= len(t.Seats) {
		return nil
	}
	seat := t.Seats[t.CurrentIndex]
	if seat.Folded || seat.AllIn {
		return nil
	}

	actions := []ValidAction{{Action: Fold}}
	toCall := t.CurrentBet - seat.Bet

	if toCall <= 0 {
		actions = append(actions, ValidAction{Action: Check})
		// A matched non-zero bet (the big blind's option) raises rather
		// than bets; betting is only open while nothing has been wagered.
		if seat.Chips > 0 && t.CurrentBet == 0 {
			actions = append(actions, ValidAction{
				Action: Bet,
				Min:    min(t.BigBlind, seat.Chips),
				Max:    seat.Chips,
			})
		} else if seat.Chips > 0 {
			maxTotal := seat.Bet + seat.Chips
			actions = append(actions, ValidAction{
				Action: Raise,
				Min:    min(t.CurrentBet+t.MinRaise, maxTotal),
				Max:    maxTotal,
			})
		}
	} else {
		actions = append(actions, ValidAction{
			Action: Call,
			Min:    min(toCall, seat.Chips),
			Max:    min(toCall, seat.Chips),
		})
		if seat.Chips > toCall {
			maxTotal := seat.Bet + seat.Chips
			actions = append(actions, ValidAction{
				Action: Raise,
				Min:    min(t.CurrentBet+t.MinRaise, maxTotal),
				Max:    maxTotal,
			})
		}
	}

	if seat.Chips > 0 {
		allInTotal := seat.Bet + seat.Chips
		actions = append(actions, ValidAction{Action: AllIn, Min: allInTotal, Max: allInTotal})
	}

	return actions
}
