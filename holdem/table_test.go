package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{MaxPlayers: 6, StartingBank: 1000, SmallBlind: 5, BigBlind: 10}, true},
		{"too few seats", Config{MaxPlayers: 1, StartingBank: 1000, SmallBlind: 5, BigBlind: 10}, false},
		{"too many seats", Config{MaxPlayers: 9, StartingBank: 1000, SmallBlind: 5, BigBlind: 10}, false},
		{"zero small blind", Config{MaxPlayers: 6, StartingBank: 1000, SmallBlind: 0, BigBlind: 10}, false},
		{"big not above small", Config{MaxPlayers: 6, StartingBank: 1000, SmallBlind: 10, BigBlind: 10}, false},
		{"bank below big blind", Config{MaxPlayers: 6, StartingBank: 5, SmallBlind: 2, BigBlind: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewTableRequiresRNG(t *testing.T) {
	t.Parallel()

	_, err := NewTable(testConfig(), nil)
	assert.Error(t, err)
}

func TestAddPlayer(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable(Config{MaxPlayers: 2, StartingBank: 500, SmallBlind: 5, BigBlind: 10}, testRNG(1))
	require.NoError(t, err)

	seat, err := tbl.AddPlayer("alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 500, seat.Chips)

	_, err = tbl.AddPlayer("alice", "Alice Again")
	assert.ErrorIs(t, err, ErrAlreadySeated)

	_, err = tbl.AddPlayer("bob", "Bob")
	require.NoError(t, err)

	_, err = tbl.AddPlayer("carol", "Carol")
	assert.ErrorIs(t, err, ErrTableFull)
}

func TestAddPlayerMidHand(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 2, 1)
	require.NoError(t, tbl.StartHand())

	_, err := tbl.AddPlayer("late", "Latecomer")
	assert.ErrorIs(t, err, ErrJoinMidHand)
}

func TestStartHandRequiresTwoFundedSeats(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 1)
	assert.ErrorIs(t, tbl.StartHand(), ErrNotEnoughPlayers)

	tbl = newTestTable(t, 2, 1)
	tbl.Seats[1].SittingOut = true
	assert.ErrorIs(t, tbl.StartHand(), ErrNotEnoughPlayers)

	tbl = newTestTable(t, 2, 1)
	tbl.Seats[0].Chips = 0
	assert.ErrorIs(t, tbl.StartHand(), ErrNotEnoughPlayers)
	// A failed start must not mutate the table.
	assert.Equal(t, PhaseWaiting, tbl.Phase)
	assert.Len(t, tbl.Seats, 2)
}

func TestStartHandMidHand(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 2, 1)
	require.NoError(t, tbl.StartHand())
	assert.ErrorIs(t, tbl.StartHand(), ErrHandInProgress)
}

func TestStartHandThreeHanded(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 3, 1)
	require.NoError(t, tbl.StartHand())

	// The button rotates off seat 0 before blinds post, so seat 2 is the
	// small blind and seat 0 the big blind.
	assert.Equal(t, 1, tbl.DealerIndex)
	assert.Equal(t, PhasePreflop, tbl.Phase)
	assert.Equal(t, 1, tbl.HandNumber)

	assert.Equal(t, 5, tbl.Seats[2].Bet, "small blind")
	assert.Equal(t, 10, tbl.Seats[0].Bet, "big blind")
	assert.Equal(t, 15, tbl.Pot)
	assert.Equal(t, 10, tbl.CurrentBet)
	assert.Equal(t, 10, tbl.MinRaise)

	// First to act is left of the big blind: the dealer three-handed.
	assert.Equal(t, 1, tbl.CurrentIndex)

	for _, s := range tbl.Seats {
		assert.Len(t, s.HoleCards, 2)
	}
	assert.Equal(t, 52-6, tbl.deck.CardsRemaining())
	assert.Equal(t, 3000, tbl.TotalChips())
}

func TestStartHandHeadsUp(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 2, 1)
	require.NoError(t, tbl.StartHand())

	// Heads-up the dealer posts the small blind and acts first preflop.
	assert.Equal(t, 1, tbl.DealerIndex)
	assert.Equal(t, 5, tbl.Seats[1].Bet, "dealer posts small blind")
	assert.Equal(t, 10, tbl.Seats[0].Bet, "other seat posts big blind")
	assert.Equal(t, 1, tbl.CurrentIndex, "dealer acts first")
}

func TestStartHandShortBlindGoesAllIn(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 3, 1)
	tbl.Seats[2].Chips = 3 // will be the small blind after rotation

	require.NoError(t, tbl.StartHand())
	sb := tbl.Seats[2]
	assert.Equal(t, 3, sb.Bet)
	assert.Equal(t, 0, sb.Chips)
	assert.True(t, sb.AllIn)
	assert.Equal(t, 13, tbl.Pot)
	assert.Equal(t, 10, tbl.CurrentBet, "a short blind never lowers the bet")
}

func TestStartHandDiscardsBustedAndSittingOut(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 4, 1)
	tbl.Seats[0].Chips = 0
	tbl.Seats[3].SittingOut = true

	require.NoError(t, tbl.StartHand())
	require.Len(t, tbl.Seats, 2)
	assert.Equal(t, "pb", tbl.Seats[0].PlayerID)
	assert.Equal(t, "pc", tbl.Seats[1].PlayerID)
}

func TestRemovePlayerBetweenHands(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 3, 1)
	require.NoError(t, tbl.RemovePlayer("pb"))
	assert.Len(t, tbl.Seats, 2)
	assert.ErrorIs(t, tbl.RemovePlayer("pb"), ErrNotSeated)
	assert.ErrorIs(t, tbl.RemovePlayer("nobody"), ErrNotSeated)
}

func TestRemovePlayerMidHandFoldsAndSitsOut(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 3, 1)
	require.NoError(t, tbl.StartHand())

	// Seat 1 is the current actor; removal folds them and play moves on.
	require.NoError(t, tbl.RemovePlayer("pb"))
	require.Len(t, tbl.Seats, 3, "seat stays until the hand ends")
	assert.True(t, tbl.Seats[1].Folded)
	assert.True(t, tbl.Seats[1].SittingOut)
	assert.Equal(t, 2, tbl.CurrentIndex, "turn passed to the next seat")

	// The hand plays out between the remaining two.
	act(t, tbl, "pc", Call, 0)
	res := act(t, tbl, "pa", Fold, 0)
	require.NotNil(t, res.Result)
	assert.Equal(t, "pc", res.Result.Winners[0].PlayerID)

	// The sitting-out seat is gone once the next hand starts.
	require.NoError(t, tbl.StartHand())
	assert.Len(t, tbl.Seats, 2)
	assert.Equal(t, -1, tbl.seatIndex("pb"))
}

func TestDealerRotatesEachHand(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 3, 1)
	var buttons []int
	for i := 0; i < 3; i++ {
		require.NoError(t, tbl.StartHand())
		buttons = append(buttons, tbl.DealerIndex)
		// Fold around so the next hand can start.
		for tbl.Phase.Betting() {
			idx := tbl.CurrentIndex
			act(t, tbl, tbl.Seats[idx].PlayerID, Fold, 0)
		}
	}
	assert.Equal(t, []int{1, 2, 0}, buttons)
}
