// Package turnclock enforces per-turn deadlines from outside the engine.
// The engine itself has no timers: when a deadline elapses the scheduler
// pushes a forced check (when legal) or fold through PlayerAction, exactly
// like any other caller would.
package turnclock

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/discordwell/holdem/holdem"
)

// Scheduler arms one deadline per turn. The clock is injected so tests
// drive time explicitly.
type Scheduler struct {
	clock  quartz.Clock
	logger *log.Logger
}

// New creates a scheduler. Pass quartz.NewReal() in production.
func New(clock quartz.Clock, logger *log.Logger) *Scheduler {
	return &Scheduler{clock: clock, logger: logger}
}

// Arm schedules a forced action for the table's current actor after the
// table's turn timer. mu must be the same lock the caller uses to
// serialize all engine calls for this table. The returned stop function
// cancels the deadline; call it whenever the actor acts in time.
//
// A deadline that fires after the turn already moved on (or a new hand
// started) is a no-op.
func (s *Scheduler) Arm(mu sync.Locker, tbl *holdem.Table) (stop func()) {
	if !tbl.Phase.Betting() || tbl.CurrentIndex < 0 || tbl.TurnTimer <= 0 {
		return func() {}
	}

	playerID := tbl.Seats[tbl.CurrentIndex].PlayerID
	handNumber := tbl.HandNumber

	timer := s.clock.AfterFunc(tbl.TurnTimer, func() {
		mu.Lock()
		defer mu.Unlock()
		s.forceAction(tbl, playerID, handNumber)
	})
	return func() { timer.Stop() }
}

func (s *Scheduler) forceAction(tbl *holdem.Table, playerID string, handNumber int) {
	if tbl.HandNumber != handNumber || !tbl.Phase.Betting() {
		return
	}
	if tbl.CurrentIndex < 0 || tbl.Seats[tbl.CurrentIndex].PlayerID != playerID {
		return
	}

	action := holdem.Fold
	if tbl.Seats[tbl.CurrentIndex].Bet == tbl.CurrentBet {
		action = holdem.Check
	}
	if _, err := tbl.PlayerAction(playerID, action, 0); err != nil {
		s.logger.Error("forced action rejected", "player", playerID, "action", action, "err", err)
		return
	}
	s.logger.Info("turn timed out", "player", playerID, "forced", action, "timeout", tbl.TurnTimer)
}
