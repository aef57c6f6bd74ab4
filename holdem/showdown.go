package holdem

// Winner is one seat's share of the pot. Hand is nil when the pot was won
// without a showdown (everyone else folded).
type Winner struct {
	PlayerID  string      `json:"player_id"`
	SeatIndex int         `json:"seat_index"`
	Amount    int         `json:"amount"`
	Hand      *HandResult `json:"hand,omitempty"`
}

// ShowdownEntry reveals one seat's cards and best hand at showdown.
type ShowdownEntry struct {
	PlayerID  string     `json:"player_id"`
	SeatIndex int        `json:"seat_index"`
	HoleCards []Card     `json:"hole_cards"`
	Hand      HandResult `json:"hand"`
}

// HandOutcome records how a hand ended. The payment layer settles from
// Winners; the renderer shows Showdown. Recomputed every hand, never
// persisted by the engine.
type HandOutcome struct {
	Winners  []Winner        `json:"winners"`
	Showdown []ShowdownEntry `json:"showdown,omitempty"`
}

// resolveShowdown evaluates every live hand, partitions the pot into side
// pots by all-in tier, and pays each pot to the best eligible hand(s).
// A pot that does not split evenly gives the odd chips to the first
// winning seat in table order.
func (t *Table) resolveShowdown() {
	hands := make(map[int]HandResult)
	var showdown []ShowdownEntry
	for i, s := range t.Seats {
		if s.Folded {
			continue
		}
		hand, err := Evaluate(append(append([]Card{}, s.HoleCards...), t.CommunityCards...))
		if err != nil {
			continue
		}
		hands[i] = hand
		showdown = append(showdown, ShowdownEntry{
			PlayerID:  s.PlayerID,
			SeatIndex: i,
			HoleCards: s.HoleCards,
			Hand:      hand,
		})
	}

	payouts := make(map[int]int)
	for _, pot := range sidePots(t.Seats) {
		winners := potWinners(pot, hands)
		if len(winners) == 0 {
			continue
		}
		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for j, idx := range winners {
			amount := share
			if j == 0 {
				amount += remainder
			}
			payouts[idx] += amount
		}
	}

	var result []Winner
	for i, s := range t.Seats {
		amount, won := payouts[i]
		if !won {
			continue
		}
		s.Chips += amount
		hand := hands[i]
		result = append(result, Winner{
			PlayerID:  s.PlayerID,
			SeatIndex: i,
			Amount:    amount,
			Hand:      &hand,
		})
	}

	t.Pot = 0
	t.LastResult = &HandOutcome{Winners: result, Showdown: showdown}
	t.Phase = PhaseFinished
	t.CurrentIndex = -1
}

// potWinners returns the eligible seats tied for the best hand, in table
// order.
func potWinners(pot SidePot, hands map[int]HandResult) []int {
	var winners []int
	var best HandResult
	for _, idx := range pot.Eligible {
		hand, ok := hands[idx]
		if !ok {
			continue
		}
		if len(winners) == 0 {
			winners = []int{idx}
			best = hand
			continue
		}
		switch hand.Compare(best) {
		case 1:
			winners = []int{idx}
			best = hand
		case 0:
			winners = append(winners, idx)
		}
	}
	return winners
}

// finishByFold ends the hand when a single unfolded seat remains; they
// collect the entire pot with no showdown and no cards revealed.
func (t *Table) finishByFold() {
	winnerIdx := -1
	for i, s := range t.Seats {
		if !s.Folded {
			winnerIdx = i
			break
		}
	}
	if winnerIdx == -1 {
		return
	}

	for _, s := range t.Seats {
		s.Bet = 0
	}
	seat := t.Seats[winnerIdx]
	amount := t.Pot
	seat.Chips += amount
	t.Pot = 0
	t.LastResult = &HandOutcome{
		Winners: []Winner{{PlayerID: seat.PlayerID, SeatIndex: winnerIdx, Amount: amount}},
	}
	t.Phase = PhaseFinished
	t.CurrentIndex = -1
}
