// Package simulator plays random-policy hands against the engine and
// audits chip conservation after every action. It is the repository's
// soak harness: any rules bug that creates or destroys chips, deals a
// duplicate card, or hangs a betting round surfaces here long before a
// real table hits it.
package simulator

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/discordwell/holdem/holdem"
	"github.com/discordwell/holdem/internal/randutil"
)

// maxActionsPerHand bounds a single hand; a run past it means a betting
// round failed to terminate.
const maxActionsPerHand = 10000

// Config holds simulation parameters.
type Config struct {
	Tables  int // tables simulated concurrently
	Hands   int // hands per table
	Players int // seats per table
	Table   holdem.Config
	Seed    int64
	Logger  *log.Logger
}

// Result aggregates counters across all tables.
type Result struct {
	HandsPlayed int
	FoldWins    int
	Showdowns   int
	SplitPots   int
}

// Run simulates cfg.Tables tables concurrently. Tables are independent, so
// parallelism is across tables, never within a hand.
func Run(cfg Config) (*Result, error) {
	if cfg.Tables < 1 {
		cfg.Tables = 1
	}

	results := make([]Result, cfg.Tables)
	var g errgroup.Group
	for i := 0; i < cfg.Tables; i++ {
		g.Go(func() error {
			// Independent seed per table so runs stay reproducible
			// regardless of goroutine scheduling.
			r, err := runTable(cfg, cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Result{}
	for _, r := range results {
		total.HandsPlayed += r.HandsPlayed
		total.FoldWins += r.FoldWins
		total.Showdowns += r.Showdowns
		total.SplitPots += r.SplitPots
	}
	return total, nil
}

func runTable(cfg Config, seed int64) (Result, error) {
	rng := randutil.New(seed)
	tbl, err := holdem.NewTable(cfg.Table, rng)
	if err != nil {
		return Result{}, err
	}
	for i := 0; i < cfg.Players; i++ {
		if _, err := tbl.AddPlayer(fmt.Sprintf("sim-%d", i), fmt.Sprintf("Sim %d", i)); err != nil {
			return Result{}, err
		}
	}

	expectedChips := cfg.Players * cfg.Table.StartingBank
	var result Result

	for hand := 0; hand < cfg.Hands; hand++ {
		if err := tbl.StartHand(); err != nil {
			if errors.Is(err, holdem.ErrNotEnoughPlayers) {
				// One player holds every chip; the table is done.
				cfg.Logger.Debug("table exhausted", "seed", seed, "hands", hand)
				break
			}
			return result, err
		}

		actions := 0
		for tbl.Phase.Betting() {
			actions++
			if actions > maxActionsPerHand {
				return result, fmt.Errorf("hand %d did not terminate (seed %d)", tbl.HandNumber, seed)
			}

			playerID := tbl.Seats[tbl.CurrentIndex].PlayerID
			action, amount := pickAction(rng, tbl)
			if _, err := tbl.PlayerAction(playerID, action, amount); err != nil {
				return result, fmt.Errorf("hand %d: %s %s(%d): %w", tbl.HandNumber, playerID, action, amount, err)
			}
			if got := tbl.TotalChips(); got != expectedChips {
				return result, fmt.Errorf("hand %d: chip leak after %s by %s: have %d want %d",
					tbl.HandNumber, action, playerID, got, expectedChips)
			}
		}

		if got := tbl.TotalChips(); got != expectedChips {
			return result, fmt.Errorf("hand %d: chip leak at hand end: have %d want %d",
				tbl.HandNumber, got, expectedChips)
		}

		result.HandsPlayed++
		if outcome := tbl.LastResult; outcome != nil {
			if len(outcome.Showdown) > 0 {
				result.Showdowns++
			} else {
				result.FoldWins++
			}
			if len(outcome.Winners) > 1 {
				result.SplitPots++
			}
			cfg.Logger.Debug("hand complete",
				"seed", seed, "hand", tbl.HandNumber,
				"winners", len(outcome.Winners), "showdown", len(outcome.Showdown) > 0)
		}
	}

	return result, nil
}

// pickAction chooses uniformly among the legal actions, with a uniform
// amount inside the legal range for bet and raise.
func pickAction(rng *rand.Rand, tbl *holdem.Table) (holdem.Action, int) {
	valid := tbl.ValidActions()
	choice := valid[rng.IntN(len(valid))]
	amount := choice.Min
	if choice.Max > choice.Min {
		amount += rng.IntN(choice.Max - choice.Min + 1)
	}
	return choice.Action, amount
}
