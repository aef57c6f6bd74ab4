package holdem

import (
	"fmt"
	"sort"
)

// Category enumerates hand categories from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category description.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandResult is the score of a 5-card hand: a category, the ordered
// tie-break values for that category, and the five cards that made it.
type HandResult struct {
	Rank    Category `json:"rank"`
	Kickers []int    `json:"kickers"`
	Cards   []Card   `json:"cards"`
}

// Compare returns 1 if h beats other, -1 if other wins, 0 for an exact tie.
// Category decides first, then kickers element-wise in descending
// significance. Equal kickers split the pot.
func (h HandResult) Compare(other HandResult) int {
	if h.Rank != other.Rank {
		if h.Rank > other.Rank {
			return 1
		}
		return -1
	}
	for i := 0; i < len(h.Kickers) && i < len(other.Kickers); i++ {
		if h.Kickers[i] != other.Kickers[i] {
			if h.Kickers[i] > other.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate scores the best 5-card hand from 5 to 7 cards. For more than
// five cards every 5-card subset is scored and the strictly best one wins;
// equal-scoring subsets are interchangeable so the first found is kept.
func Evaluate(cards []Card) (HandResult, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandResult{}, fmt.Errorf("evaluate: need 5-7 cards, got %d", len(cards))
	}

	if len(cards) == 5 {
		return evaluateFive(cards), nil
	}

	var best HandResult
	first := true
	subset := make([]Card, 5)
	forEachFive(cards, subset, func(five []Card) {
		result := evaluateFive(five)
		if first || result.Compare(best) > 0 {
			best = result
			first = false
		}
	})
	return best, nil
}

// forEachFive visits every 5-card combination of cards (21 for 7 cards).
func forEachFive(cards []Card, subset []Card, visit func([]Card)) {
	n := len(cards)
	for a := 0; a < n-4; a++ {
		subset[0] = cards[a]
		for b := a + 1; b < n-3; b++ {
			subset[1] = cards[b]
			for c := b + 1; c < n-2; c++ {
				subset[2] = cards[c]
				for d := c + 1; d < n-1; d++ {
					subset[3] = cards[d]
					for e := d + 1; e < n; e++ {
						subset[4] = cards[e]
						visit(subset)
					}
				}
			}
		}
	}
}

func evaluateFive(five []Card) HandResult {
	cards := make([]Card, 5)
	copy(cards, five)
	sort.Slice(cards, func(i, j int) bool { return cards[i].Value() > cards[j].Value() })

	values := make([]int, 5)
	for i, c := range cards {
		values[i] = c.Value()
	}

	flush := true
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straightHigh, isStraight := straightHighCard(values)

	// Rank multiplicities, groups ordered by count then value so kicker
	// layouts fall out directly (quad first, then trips, pairs, singles).
	groups := groupByRank(values)

	switch {
	case isStraight && flush && straightHigh == int(Ace):
		return HandResult{Rank: RoyalFlush, Kickers: descendingFrom(straightHigh), Cards: cards}
	case isStraight && flush:
		return HandResult{Rank: StraightFlush, Kickers: descendingFrom(straightHigh), Cards: cards}
	case groups[0].count == 4:
		return HandResult{Rank: FourOfAKind, Kickers: []int{groups[0].value, groups[1].value}, Cards: cards}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandResult{Rank: FullHouse, Kickers: []int{groups[0].value, groups[1].value}, Cards: cards}
	case flush:
		return HandResult{Rank: Flush, Kickers: values, Cards: cards}
	case isStraight:
		return HandResult{Rank: Straight, Kickers: descendingFrom(straightHigh), Cards: cards}
	case groups[0].count == 3:
		return HandResult{Rank: ThreeOfAKind, Kickers: []int{groups[0].value, groups[1].value, groups[2].value}, Cards: cards}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandResult{Rank: TwoPair, Kickers: []int{groups[0].value, groups[1].value, groups[2].value}, Cards: cards}
	case groups[0].count == 2:
		return HandResult{Rank: OnePair, Kickers: []int{groups[0].value, groups[1].value, groups[2].value, groups[3].value}, Cards: cards}
	default:
		return HandResult{Rank: HighCard, Kickers: values, Cards: cards}
	}
}

// straightHighCard reports the high card of a straight in values (which
// must be sorted descending). The wheel A-5-4-3-2 counts the ace as one,
// so its high card is 5.
func straightHighCard(values []int) (int, bool) {
	consecutive := true
	for i := 1; i < 5; i++ {
		if values[i] != values[i-1]-1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return values[0], true
	}

	if values[0] == int(Ace) && values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2 {
		return 5, true
	}
	return 0, false
}

// descendingFrom expands a straight's high card into the five kicker
// values, so the wheel reports [5 4 3 2 1] rather than [14 5 4 3 2].
func descendingFrom(high int) []int {
	kickers := make([]int, 5)
	for i := range kickers {
		kickers[i] = high - i
	}
	return kickers
}

type rankGroup struct {
	value int
	count int
}

func groupByRank(values []int) []rankGroup {
	counts := make(map[int]int, 5)
	for _, v := range values {
		counts[v]++
	}
	groups := make([]rankGroup, 0, 5)
	for v, n := range counts {
		groups = append(groups, rankGroup{value: v, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})
	return groups
}
