package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/discordwell/holdem/holdem"
)

// Config is the root of an HCL configuration file: one or more table
// blocks plus simulation settings.
type Config struct {
	Tables     []TableBlock     `hcl:"table,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// TableBlock defines one poker table.
type TableBlock struct {
	Name         string `hcl:"name,label"`
	MaxPlayers   int    `hcl:"max_players,optional"`
	StartingBank int    `hcl:"starting_bank,optional"`
	SmallBlind   int    `hcl:"small_blind"`
	BigBlind     int    `hcl:"big_blind"`
	TurnTimerSec int    `hcl:"turn_timer_seconds,optional"`
}

// SimulationBlock controls the simulator CLI.
type SimulationBlock struct {
	Hands   int   `hcl:"hands,optional"`
	Players int   `hcl:"players,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Tables: []TableBlock{
			{
				Name:         "main",
				MaxPlayers:   6,
				StartingBank: 200,
				SmallBlind:   1,
				BigBlind:     2,
				TurnTimerSec: 30,
			},
		},
		Simulation: &SimulationBlock{Hands: 100, Players: 6},
	}
}

// Load reads an HCL configuration file, falling back to defaults when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range cfg.Tables {
		applyTableDefaults(&cfg.Tables[i])
	}
	if cfg.Simulation == nil {
		cfg.Simulation = &SimulationBlock{}
	}
	if cfg.Simulation.Hands == 0 {
		cfg.Simulation.Hands = 100
	}
	if cfg.Simulation.Players == 0 {
		cfg.Simulation.Players = 6
	}

	return &cfg, nil
}

func applyTableDefaults(tbl *TableBlock) {
	if tbl.MaxPlayers == 0 {
		tbl.MaxPlayers = 6
	}
	if tbl.StartingBank == 0 {
		tbl.StartingBank = tbl.BigBlind * 100 // 100 big blinds
	}
	if tbl.TurnTimerSec == 0 {
		tbl.TurnTimerSec = 30
	}
}

// Validate checks the configuration before tables are created from it.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	for _, tbl := range c.Tables {
		if err := tbl.Engine().Validate(); err != nil {
			return fmt.Errorf("table %s: %w", tbl.Name, err)
		}
	}
	if c.Simulation != nil && c.Simulation.Players < 2 {
		return fmt.Errorf("simulation needs at least 2 players, got %d", c.Simulation.Players)
	}
	return nil
}

// Engine converts the block into the engine's table config.
func (t TableBlock) Engine() holdem.Config {
	return holdem.Config{
		MaxPlayers:   t.MaxPlayers,
		StartingBank: t.StartingBank,
		SmallBlind:   t.SmallBlind,
		BigBlind:     t.BigBlind,
		TurnTimer:    time.Duration(t.TurnTimerSec) * time.Second,
	}
}
