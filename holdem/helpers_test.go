package holdem

import (
	rand "math/rand/v2"
	"strings"
	"testing"
)

// testRNG returns a deterministic RNG for reproducible hands.
func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func testConfig() Config {
	return Config{
		MaxPlayers:   8,
		StartingBank: 1000,
		SmallBlind:   5,
		BigBlind:     10,
	}
}

// newTestTable creates a started-ready table with n seated players named
// p0..pn-1.
func newTestTable(t *testing.T, n int, seed uint64) *Table {
	t.Helper()
	tbl, err := NewTable(testConfig(), testRNG(seed))
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		if _, err := tbl.AddPlayer("p"+id, "Player "+id); err != nil {
			t.Fatalf("AddPlayer %d: %v", i, err)
		}
	}
	return tbl
}

// cards parses a space-separated list like "AS KH TD 9C 2S" into Cards.
func cards(t *testing.T, list string) []Card {
	t.Helper()
	ranks := map[byte]Rank{
		'2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven,
		'8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
	}
	suits := map[byte]Suit{'S': Spades, 'H': Hearts, 'D': Diamonds, 'C': Clubs}

	var out []Card
	for _, tok := range strings.Fields(list) {
		if len(tok) != 2 {
			t.Fatalf("bad card %q", tok)
		}
		rank, ok := ranks[tok[0]]
		if !ok {
			t.Fatalf("bad rank in %q", tok)
		}
		suit, ok := suits[tok[1]]
		if !ok {
			t.Fatalf("bad suit in %q", tok)
		}
		out = append(out, NewCard(suit, rank))
	}
	return out
}

// act is a shorthand that fails the test on an action error.
func act(t *testing.T, tbl *Table, playerID string, action Action, amount int) *ActionResult {
	t.Helper()
	res, err := tbl.PlayerAction(playerID, action, amount)
	if err != nil {
		t.Fatalf("%s %s(%d): %v", playerID, action, amount, err)
	}
	return res
}
