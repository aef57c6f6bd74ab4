package holdem

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Phase represents where a table is within a hand.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseFinished
)

func (p Phase) String() string {
	return [...]string{"waiting", "preflop", "flop", "turn", "river", "showdown", "finished"}[p]
}

// Betting reports whether the phase accepts player actions.
func (p Phase) Betting() bool {
	return p >= PhasePreflop && p <= PhaseRiver
}

// Config holds caller-supplied table settings. TurnTimer is stored for the
// external scheduler; the engine never consumes it.
type Config struct {
	MaxPlayers   int
	StartingBank int
	SmallBlind   int
	BigBlind     int
	TurnTimer    time.Duration
}

// Validate checks config bounds before a table is created.
func (c Config) Validate() error {
	if c.MaxPlayers < 2 || c.MaxPlayers > 8 {
		return fmt.Errorf("max players must be between 2 and 8, got %d", c.MaxPlayers)
	}
	if c.SmallBlind <= 0 || c.BigBlind <= c.SmallBlind {
		return fmt.Errorf("blinds must satisfy 0 < small (%d) < big (%d)", c.SmallBlind, c.BigBlind)
	}
	if c.StartingBank < c.BigBlind {
		return fmt.Errorf("starting bank %d cannot cover the big blind %d", c.StartingBank, c.BigBlind)
	}
	return nil
}

// Seat is one player's place at the table. Chips persist across hands;
// every other field is reset by StartHand.
type Seat struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Chips       int    `json:"chips"`
	HoleCards   []Card `json:"hole_cards,omitempty"`
	Bet         int    `json:"bet"`       // wagered this betting round
	TotalBet    int    `json:"total_bet"` // wagered this hand
	Folded      bool   `json:"folded"`
	AllIn       bool   `json:"all_in"`
	SittingOut  bool   `json:"sitting_out"`
	LastAction  string `json:"last_action,omitempty"`
}

// canAct reports whether the seat may still take a betting action.
func (s *Seat) canAct() bool {
	return !s.Folded && !s.AllIn
}

// Table is the full state of one poker table. It is a plain value: every
// method is synchronous, performs no I/O, and either mutates the table and
// returns a result or returns an error leaving the table untouched. Callers
// must serialize access per table; the engine takes no locks.
type Table struct {
	ID string `json:"id"`

	MaxPlayers   int           `json:"max_players"`
	StartingBank int           `json:"starting_bank"`
	SmallBlind   int           `json:"small_blind"`
	BigBlind     int           `json:"big_blind"`
	TurnTimer    time.Duration `json:"turn_timer"`

	Phase          Phase   `json:"phase"`
	Seats          []*Seat `json:"seats"`
	CommunityCards []Card  `json:"community_cards"`

	Pot        int `json:"pot"`
	CurrentBet int `json:"current_bet"`
	MinRaise   int `json:"min_raise"`

	DealerIndex     int `json:"dealer_index"`
	CurrentIndex    int `json:"current_index"` // -1 when no seat may act
	LastRaiserIndex int `json:"last_raiser_index"`

	PlayersActed map[int]bool `json:"players_acted"`
	HandNumber   int          `json:"hand_number"`

	LastResult *HandOutcome `json:"last_result,omitempty"`

	deck *Deck
	rng  *rand.Rand
}

// NewTable creates an empty table in the waiting phase. The RNG shuffles
// every deck this table deals and must come from a source the caller
// controls (see internal/randutil for the default).
func NewTable(cfg Config, rng *rand.Rand) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("rng is required")
	}
	return &Table{
		ID:              uuid.NewString(),
		MaxPlayers:      cfg.MaxPlayers,
		StartingBank:    cfg.StartingBank,
		SmallBlind:      cfg.SmallBlind,
		BigBlind:        cfg.BigBlind,
		TurnTimer:       cfg.TurnTimer,
		Phase:           PhaseWaiting,
		CurrentIndex:    -1,
		LastRaiserIndex: -1,
		PlayersActed:    make(map[int]bool),
		rng:             rng,
	}, nil
}

// AddPlayer seats a new player with the table's starting bank.
func (t *Table) AddPlayer(playerID, displayName string) (*Seat, error) {
	if len(t.Seats) >= t.MaxPlayers {
		return nil, ErrTableFull
	}
	if t.seatIndex(playerID) != -1 {
		return nil, ErrAlreadySeated
	}
	if t.Phase != PhaseWaiting && t.Phase != PhaseFinished {
		return nil, ErrJoinMidHand
	}

	seat := &Seat{
		PlayerID:    playerID,
		DisplayName: displayName,
		Chips:       t.StartingBank,
	}
	t.Seats = append(t.Seats, seat)
	return seat, nil
}

// RemovePlayer takes a player off the table. Between hands the seat is
// deleted outright; mid-hand the seat folds and sits out instead, so that
// seat indices (and the pot math hanging off them) stay stable until the
// hand resolves.
func (t *Table) RemovePlayer(playerID string) error {
	idx := t.seatIndex(playerID)
	if idx == -1 {
		return ErrNotSeated
	}

	if t.Phase == PhaseWaiting || t.Phase == PhaseFinished {
		t.deleteSeat(idx)
		return nil
	}

	seat := t.Seats[idx]
	seat.SittingOut = true
	if !seat.Folded {
		t.foldSeat(idx)
		seat.LastAction = "sit out"
	}
	return nil
}

// StartHand deals a new hand: discards sitting-out seats, rotates the
// button, posts blinds and deals two hole cards to every seat.
func (t *Table) StartHand() error {
	if t.Phase != PhaseWaiting && t.Phase != PhaseFinished {
		return ErrHandInProgress
	}

	funded := 0
	for _, s := range t.Seats {
		if !s.SittingOut && s.Chips > 0 {
			funded++
		}
	}
	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	// Busted seats go with the sitting-out ones: a seat with no chips
	// cannot post a blind or wager, and rebuys are not supported.
	for i := len(t.Seats) - 1; i >= 0; i-- {
		if t.Seats[i].SittingOut || t.Seats[i].Chips == 0 {
			t.deleteSeat(i)
		}
	}

	t.HandNumber++
	t.Phase = PhasePreflop
	t.CommunityCards = nil
	t.Pot = 0
	t.CurrentBet = 0
	t.MinRaise = t.BigBlind
	t.LastRaiserIndex = -1
	t.PlayersActed = make(map[int]bool)
	t.LastResult = nil

	for _, s := range t.Seats {
		s.HoleCards = nil
		s.Bet = 0
		s.TotalBet = 0
		s.Folded = false
		s.AllIn = false
		s.LastAction = ""
	}

	t.DealerIndex = (t.DealerIndex + 1) % len(t.Seats)

	t.deck = NewDeck()
	t.deck.Shuffle(t.rng)

	t.postBlinds()
	t.dealHoleCards()

	// First to act: left of the big blind, or the small-blind seat
	// (the dealer) heads-up.
	n := len(t.Seats)
	var first int
	if n == 2 {
		first = t.DealerIndex
	} else {
		first = (t.DealerIndex + 3) % n
	}
	t.CurrentIndex = t.nextEligible(first)
	if t.CurrentIndex == -1 {
		// Blinds put everyone all-in; nothing to bet, run the board out.
		t.runOut()
	}
	return nil
}

// postBlinds transfers the forced bets into the pot. Heads-up the dealer
// posts the small blind; otherwise the two seats left of the dealer post.
// A blind a stack cannot cover posts all-in for the remainder.
func (t *Table) postBlinds() {
	n := len(t.Seats)
	var sbIdx, bbIdx int
	if n == 2 {
		sbIdx = t.DealerIndex
		bbIdx = (t.DealerIndex + 1) % n
	} else {
		sbIdx = (t.DealerIndex + 1) % n
		bbIdx = (t.DealerIndex + 2) % n
	}

	t.postBlind(sbIdx, t.SmallBlind, "small blind")
	t.postBlind(bbIdx, t.BigBlind, "big blind")

	t.CurrentBet = t.BigBlind
	t.MinRaise = t.BigBlind
	t.LastRaiserIndex = bbIdx
}

func (t *Table) postBlind(idx, amount int, label string) {
	seat := t.Seats[idx]
	pay := min(amount, seat.Chips)
	seat.Chips -= pay
	seat.Bet += pay
	seat.TotalBet += pay
	t.Pot += pay
	seat.LastAction = label
	if seat.Chips == 0 {
		seat.AllIn = true
	}
}

// dealHoleCards deals one card to each seat starting left of the dealer,
// then a second pass.
func (t *Table) dealHoleCards() {
	n := len(t.Seats)
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			seat := t.Seats[(t.DealerIndex+i)%n]
			if card, ok := t.deck.Deal(); ok {
				seat.HoleCards = append(seat.HoleCards, card)
			}
		}
	}
}

// nextEligible returns the index of the first seat at or after from (in
// table order, wrapping) that can still act, or -1 if none can.
func (t *Table) nextEligible(from int) int {
	n := len(t.Seats)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if t.Seats[idx].canAct() {
			return idx
		}
	}
	return -1
}

func (t *Table) seatIndex(playerID string) int {
	for i, s := range t.Seats {
		if s.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func (t *Table) deleteSeat(idx int) {
	t.Seats = append(t.Seats[:idx], t.Seats[idx+1:]...)
	if t.DealerIndex > idx {
		t.DealerIndex--
	}
	if t.DealerIndex >= len(t.Seats) {
		t.DealerIndex = 0
	}
}

// TotalChips returns chips held by seats plus the pot. Constant within a
// hand; the simulator audits it after every action.
func (t *Table) TotalChips() int {
	total := t.Pot
	for _, s := range t.Seats {
		total += s.Chips
	}
	return total
}
