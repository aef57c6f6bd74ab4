package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riverTable builds a table frozen at the river with a fixed board, ready
// for resolveShowdown. Holes maps player id to two hole cards; bets is the
// whole-hand wager per seat in the same order.
func riverTable(t *testing.T, board string, holes [][2]string, bets []int, folded ...int) *Table {
	t.Helper()
	tbl, err := NewTable(testConfig(), testRNG(1))
	require.NoError(t, err)

	pot := 0
	for i, h := range holes {
		tbl.Seats = append(tbl.Seats, &Seat{
			PlayerID:  h[0],
			HoleCards: cards(t, h[1]),
			TotalBet:  bets[i],
		})
		pot += bets[i]
	}
	for _, idx := range folded {
		tbl.Seats[idx].Folded = true
	}
	tbl.Pot = pot
	tbl.CommunityCards = cards(t, board)
	tbl.Phase = PhaseRiver
	return tbl
}

func TestShowdownBestHandWins(t *testing.T) {
	t.Parallel()

	tbl := riverTable(t, "AH 9D 5C 2S 2D",
		[][2]string{
			{"a", "AS KC"}, // aces and twos, king kicker
			{"b", "KD QH"}, // twos, king high
		},
		[]int{50, 50},
	)
	tbl.resolveShowdown()

	require.Equal(t, PhaseFinished, tbl.Phase)
	require.NotNil(t, tbl.LastResult)
	require.Len(t, tbl.LastResult.Winners, 1)

	winner := tbl.LastResult.Winners[0]
	assert.Equal(t, "a", winner.PlayerID)
	assert.Equal(t, 100, winner.Amount)
	require.NotNil(t, winner.Hand)
	assert.Equal(t, TwoPair, winner.Hand.Rank)

	assert.Len(t, tbl.LastResult.Showdown, 2, "every live hand is revealed")
	assert.Equal(t, 0, tbl.Pot)
	assert.Equal(t, 100, tbl.Seats[0].Chips)
}

func TestShowdownSplitPotOddChip(t *testing.T) {
	t.Parallel()

	// The board plays for both live seats; the folded seat's chips make
	// the pot odd. The leftover chip goes to the first winner in seat
	// order.
	tbl := riverTable(t, "AS KD QH JC TS",
		[][2]string{
			{"a", "2C 3D"},
			{"b", "2H 3S"},
			{"c", "9C 9D"},
		},
		[]int{5, 5, 5},
		2,
	)
	tbl.resolveShowdown()

	require.NotNil(t, tbl.LastResult)
	require.Len(t, tbl.LastResult.Winners, 2)

	assert.Equal(t, "a", tbl.LastResult.Winners[0].PlayerID)
	assert.Equal(t, 8, tbl.LastResult.Winners[0].Amount)
	assert.Equal(t, "b", tbl.LastResult.Winners[1].PlayerID)
	assert.Equal(t, 7, tbl.LastResult.Winners[1].Amount)

	assert.Len(t, tbl.LastResult.Showdown, 2, "folded seats reveal nothing")
}

func TestShowdownSidePotsPayByTier(t *testing.T) {
	t.Parallel()

	// The short stack holds the best hand but can only win the main pot;
	// the side pot goes to the better of the two covering seats.
	tbl := riverTable(t, "7H 8D 2S 3C KD",
		[][2]string{
			{"short", "AS AH"}, // aces, all-in for 50
			{"mid", "KS QC"},   // kings
			{"big", "9C 4D"},   // king high board, nine kicker
		},
		[]int{50, 150, 150},
	)
	tbl.Seats[0].AllIn = true
	tbl.resolveShowdown()

	require.NotNil(t, tbl.LastResult)
	payouts := make(map[string]int)
	for _, w := range tbl.LastResult.Winners {
		payouts[w.PlayerID] = w.Amount
	}

	assert.Equal(t, 150, payouts["short"], "main pot only")
	assert.Equal(t, 200, payouts["mid"], "side pot")
	assert.NotContains(t, payouts, "big")
	assert.Equal(t, 0, tbl.Pot)
}

func TestShowdownFoldedSeatNeverWins(t *testing.T) {
	t.Parallel()

	// The folded seat made the nut flush; it must not see a payout.
	tbl := riverTable(t, "AH KH QH 2C 3D",
		[][2]string{
			{"a", "JH TH"},
			{"b", "2S 2D"},
		},
		[]int{100, 100},
		0,
	)
	tbl.resolveShowdown()

	require.NotNil(t, tbl.LastResult)
	require.Len(t, tbl.LastResult.Winners, 1)
	assert.Equal(t, "b", tbl.LastResult.Winners[0].PlayerID)
	assert.Equal(t, 200, tbl.LastResult.Winners[0].Amount)
}

func TestShowdownViaFullHand(t *testing.T) {
	t.Parallel()

	// Drive a whole hand through the public API: chips must be conserved
	// and the outcome must settle the entire pot.
	tbl := newTestTable(t, 3, 42)
	require.NoError(t, tbl.StartHand())

	for tbl.Phase.Betting() {
		idx := tbl.CurrentIndex
		seat := tbl.Seats[idx]
		if seat.Bet == tbl.CurrentBet {
			act(t, tbl, seat.PlayerID, Check, 0)
		} else {
			act(t, tbl, seat.PlayerID, Call, 0)
		}
	}

	require.Equal(t, PhaseFinished, tbl.Phase)
	require.NotNil(t, tbl.LastResult)
	assert.Equal(t, 0, tbl.Pot)
	assert.Equal(t, 3000, tbl.TotalChips())

	paid := 0
	for _, w := range tbl.LastResult.Winners {
		paid += w.Amount
	}
	assert.Equal(t, 30, paid, "blinds called around, checked down")
}
