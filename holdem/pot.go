package holdem

import "sort"

// SidePot is one tier of the pot partition. Eligible holds the seat
// indices whose total wager reached the tier; folded seats contribute to
// the amount but never appear in Eligible.
type SidePot struct {
	Amount   int   `json:"amount"`
	Tier     int   `json:"tier"`
	Eligible []int `json:"eligible"`
}

// sidePots partitions the seats' whole-hand wagers into pots by all-in
// tier. Every distinct positive TotalBet is a tier; each tier's pot takes
// the incremental contribution between the previous tier and this one from
// every seat that wagered at least that much. Amounts across all pots sum
// to exactly the chips wagered this hand.
func sidePots(seats []*Seat) []SidePot {
	tierSet := make(map[int]bool)
	for _, s := range seats {
		if s.TotalBet > 0 {
			tierSet[s.TotalBet] = true
		}
	}
	tiers := make([]int, 0, len(tierSet))
	for tier := range tierSet {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)

	pots := make([]SidePot, 0, len(tiers))
	prev := 0
	carry := 0
	for _, tier := range tiers {
		pot := SidePot{Tier: tier}
		for i, s := range seats {
			contribution := min(s.TotalBet, tier) - prev
			if contribution > 0 {
				pot.Amount += contribution
			}
			if !s.Folded && s.TotalBet >= tier {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		prev = tier

		// A tier where every contributor folded has no claimants; its
		// chips roll into the next pot up.
		if len(pot.Eligible) == 0 {
			carry += pot.Amount
			continue
		}
		pot.Amount += carry
		carry = 0
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
	}
	if carry > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += carry
	}
	return pots
}
