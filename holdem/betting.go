package holdem

import "fmt"

// ActionResult is returned by PlayerAction. Result is non-nil only when
// the action ended the hand (everyone folded, or the action triggered
// showdown); the payment layer reads it for settlement.
type ActionResult struct {
	Phase  Phase        `json:"phase"`
	Result *HandOutcome `json:"result,omitempty"`
}

// PlayerAction validates and applies an action by the seated player. All
// preconditions are checked before any mutation; on error the table is
// unchanged. Amount is the bet size for bet and the target round total
// for raise; it is ignored for fold, check, call and allin.
func (t *Table) PlayerAction(playerID string, action Action, amount int) (*ActionResult, error) {
	if !t.Phase.Betting() {
		return nil, ErrNoBettingOpen
	}
	idx := t.seatIndex(playerID)
	if idx == -1 {
		return nil, ErrNotSeated
	}
	if idx != t.CurrentIndex {
		return nil, ErrNotYourTurn
	}
	seat := t.Seats[idx]
	if !seat.canAct() {
		return nil, ErrCannotAct
	}

	switch action {
	case Fold:
		t.foldSeat(idx)
		return t.actionResult(), nil

	case Check:
		if seat.Bet != t.CurrentBet {
			return nil, ErrCheckOutstandingBet
		}
		seat.LastAction = "check"

	case Call:
		toCall := t.CurrentBet - seat.Bet
		if toCall <= 0 {
			return nil, ErrNothingToCall
		}
		pay := min(toCall, seat.Chips)
		t.wager(seat, pay)
		if seat.AllIn {
			seat.LastAction = "call all-in"
		} else {
			seat.LastAction = "call"
		}

	case Bet:
		if t.CurrentBet != 0 {
			return nil, ErrBetNotAllowed
		}
		if amount > seat.Chips {
			return nil, ErrInsufficientChips
		}
		if amount <= 0 || (amount < t.BigBlind && amount < seat.Chips) {
			return nil, ErrBetTooSmall
		}
		t.wager(seat, amount)
		t.CurrentBet = amount
		t.MinRaise = amount
		t.reopenBetting(idx)
		seat.LastAction = fmt.Sprintf("bet %d", amount)

	case Raise:
		if t.CurrentBet == 0 {
			return nil, ErrRaiseNotAllowed
		}
		needed := amount - seat.Bet
		if needed > seat.Chips {
			return nil, ErrInsufficientChips
		}
		maxTotal := seat.Bet + seat.Chips
		if amount < t.CurrentBet+t.MinRaise && amount < maxTotal {
			return nil, ErrRaiseTooSmall
		}
		if needed <= 0 {
			return nil, ErrRaiseTooSmall
		}
		t.wager(seat, needed)
		t.applyRaiseTo(idx, seat.Bet)
		seat.LastAction = fmt.Sprintf("raise to %d", seat.Bet)

	case AllIn:
		if seat.Chips == 0 {
			return nil, ErrInsufficientChips
		}
		t.wager(seat, seat.Chips)
		t.applyRaiseTo(idx, seat.Bet)
		seat.LastAction = "all-in"

	default:
		return nil, ErrUnknownAction
	}

	t.PlayersActed[idx] = true

	if t.roundComplete() {
		t.advanceRound()
	} else {
		t.CurrentIndex = t.nextEligible((idx + 1) % len(t.Seats))
		if t.CurrentIndex == -1 {
			t.runOut()
		}
	}
	return t.actionResult(), nil
}

func (t *Table) actionResult() *ActionResult {
	return &ActionResult{Phase: t.Phase, Result: t.LastResult}
}

// wager moves chips from the seat into the pot, flagging all-in when the
// stack empties.
func (t *Table) wager(seat *Seat, amount int) {
	seat.Chips -= amount
	seat.Bet += amount
	seat.TotalBet += amount
	t.Pot += amount
	if seat.Chips == 0 {
		seat.AllIn = true
	}
}

// applyRaiseTo records a wager that may have raised the round's bet.
// Betting reopens only when newTotal exceeds the standing bet; a short
// all-in below the previous bet leaves already-acted seats settled.
// MinRaise only grows on a full raise, so a short all-in never lowers the
// bar for the next raiser.
func (t *Table) applyRaiseTo(idx, newTotal int) {
	if newTotal <= t.CurrentBet {
		return
	}
	if newTotal-t.CurrentBet >= t.MinRaise {
		t.MinRaise = newTotal - t.CurrentBet
	}
	t.CurrentBet = newTotal
	t.reopenBetting(idx)
}

// reopenBetting resets acted tracking to just the aggressor, so everyone
// else gets another turn.
func (t *Table) reopenBetting(idx int) {
	t.PlayersActed = map[int]bool{idx: true}
	t.LastRaiserIndex = idx
}

// foldSeat folds the seat and resolves the consequences: a last seat
// standing wins the pot outright, and turn/round bookkeeping advances.
// Shared by in-turn folds and mid-hand removals.
func (t *Table) foldSeat(idx int) {
	seat := t.Seats[idx]
	seat.Folded = true
	seat.LastAction = "fold"
	t.PlayersActed[idx] = true
	if t.LastRaiserIndex == idx {
		t.LastRaiserIndex = -1
	}

	if t.countNonFolded() == 1 {
		t.finishByFold()
		return
	}

	if idx == t.CurrentIndex {
		t.CurrentIndex = t.nextEligible((idx + 1) % len(t.Seats))
	}
	if t.roundComplete() {
		t.advanceRound()
	} else if t.CurrentIndex == -1 {
		t.runOut()
	}
}

// roundComplete reports whether the betting round is settled: every seat
// that can still act has acted this round and matched the current bet, or
// no seat can act at all.
func (t *Table) roundComplete() bool {
	for i, s := range t.Seats {
		if !s.canAct() {
			continue
		}
		if !t.PlayersActed[i] || s.Bet != t.CurrentBet {
			return false
		}
	}
	return true
}

// advanceRound closes the betting round and moves to the next street. If
// at most one seat can still act there is no more betting; the remaining
// board runs out and the hand goes straight to showdown.
func (t *Table) advanceRound() {
	t.dealNextStreet()
	if !t.Phase.Betting() {
		return
	}
	if t.countCanAct() <= 1 {
		t.runOut()
		return
	}
	t.CurrentIndex = t.nextEligible((t.DealerIndex + 1) % len(t.Seats))
}

// dealNextStreet collects the round's bets and deals the next street,
// burning a card first. At the river it resolves the showdown instead.
func (t *Table) dealNextStreet() {
	t.collectRound()
	switch t.Phase {
	case PhasePreflop:
		t.Phase = PhaseFlop
		t.deck.Burn()
		t.CommunityCards = append(t.CommunityCards, t.deck.DealN(3)...)
	case PhaseFlop:
		t.Phase = PhaseTurn
		t.deck.Burn()
		t.CommunityCards = append(t.CommunityCards, t.deck.DealN(1)...)
	case PhaseTurn:
		t.Phase = PhaseRiver
		t.deck.Burn()
		t.CommunityCards = append(t.CommunityCards, t.deck.DealN(1)...)
	case PhaseRiver:
		t.Phase = PhaseShowdown
		t.resolveShowdown()
	}
}

// collectRound resets per-round betting state. Chips already sit in the
// pot; only the matching bookkeeping is cleared.
func (t *Table) collectRound() {
	for _, s := range t.Seats {
		s.Bet = 0
	}
	t.CurrentBet = 0
	t.MinRaise = t.BigBlind
	t.LastRaiserIndex = -1
	t.PlayersActed = make(map[int]bool)
	t.CurrentIndex = -1
}

// runOut deals the remaining streets with no further betting and resolves
// the showdown.
func (t *Table) runOut() {
	t.CurrentIndex = -1
	for t.Phase.Betting() {
		t.dealNextStreet()
	}
}

func (t *Table) countNonFolded() int {
	n := 0
	for _, s := range t.Seats {
		if !s.Folded {
			n++
		}
	}
	return n
}

func (t *Table) countCanAct() int {
	n := 0
	for _, s := range t.Seats {
		if s.canAct() {
			n++
		}
	}
	return n
}
