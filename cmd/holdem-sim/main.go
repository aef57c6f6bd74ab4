package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/discordwell/holdem/internal/config"
	"github.com/discordwell/holdem/internal/simulator"
)

type CLI struct {
	Config  string `default:"holdem.hcl" help:"Path to HCL table configuration"`
	Tables  int    `default:"4" help:"Number of tables to simulate in parallel"`
	Hands   int    `default:"0" help:"Hands per table (0 uses the config value)"`
	Players int    `default:"0" help:"Seats per table (0 uses the config value)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "path", cli.Config, "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	if cli.Seed == 0 {
		cli.Seed = cfg.Simulation.Seed
	}
	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}
	if cli.Hands == 0 {
		cli.Hands = cfg.Simulation.Hands
	}
	if cli.Players == 0 {
		cli.Players = cfg.Simulation.Players
	}

	tbl := cfg.Tables[0]
	logger.Info("starting simulation",
		"table", tbl.Name, "tables", cli.Tables, "hands", cli.Hands,
		"players", cli.Players, "seed", cli.Seed)

	start := time.Now()
	result, err := simulator.Run(simulator.Config{
		Tables:  cli.Tables,
		Hands:   cli.Hands,
		Players: cli.Players,
		Table:   tbl.Engine(),
		Seed:    cli.Seed,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("hands played:   %d\n", result.HandsPlayed)
	fmt.Printf("fold wins:      %d\n", result.FoldWins)
	fmt.Printf("showdowns:      %d\n", result.Showdowns)
	fmt.Printf("split pots:     %d\n", result.SplitPots)
	fmt.Printf("elapsed:        %v (%.1f hands/sec)\n",
		elapsed.Round(time.Millisecond), float64(result.HandsPlayed)/elapsed.Seconds())

	ctx.Exit(0)
}
