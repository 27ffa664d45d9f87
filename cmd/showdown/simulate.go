package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/simulator"
)

// SimulateCmd deals random hands through the full settlement pipeline
type SimulateCmd struct {
	Hands   int    `default:"10000" help:"Number of hands to simulate"`
	Workers int    `default:"4" help:"Number of parallel workers"`
	Seed    int64  `default:"0" help:"RNG seed (0 derives one from the clock)"`
	Rules   string `default:"rules.hcl" help:"Table rules HCL file"`
}

func (c *SimulateCmd) Run(logger *zerolog.Logger) error {
	rules, err := config.Load(c.Rules)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simLogger := log.New(os.Stderr)
	if logger.GetLevel() <= zerolog.DebugLevel {
		simLogger.SetLevel(log.DebugLevel)
	}

	sim := simulator.New(simulator.Config{
		Hands:   c.Hands,
		Workers: c.Workers,
		Seed:    seed,
		Rules:   rules,
		Logger:  simLogger,
	})
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Showdown hand categories"))
	total := 0
	for _, count := range stats.Categories {
		total += count
	}
	if total == 0 {
		total = 1
	}
	for category := evaluator.RoyalFlush; category >= evaluator.HighCard; category-- {
		count := stats.Categories[category]
		fmt.Printf("  %-16s %8d  %6.3f%%\n", category, count, 100*float64(count)/float64(total))
	}
	fmt.Printf("%s %d hands, %d pots (%d split), %d chips moved\n",
		headerStyle.Render("Totals:"), stats.Hands, stats.Pots, stats.SplitPots, stats.ChipsMoved)
	return nil
}
