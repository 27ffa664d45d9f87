// Package simulator deals randomized hands through the full settlement
// pipeline and verifies that every hand conserves chips.
//
// The core settlement packages are pure and lock-free, so the simulator runs
// hands from multiple workers concurrently without any synchronization around
// the evaluator or pot engine.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/settle"
)

// Config holds configuration for running simulations
type Config struct {
	Hands   int
	Workers int
	Seed    int64
	Rules   *config.Rules
	Logger  *log.Logger
}

// Simulator runs settlement simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated statistics. Hands are
// split across workers; each hand derives its own seed from the base seed so
// results are reproducible regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > s.config.Hands {
		workers = s.config.Hands
	}

	s.config.Logger.Info("starting simulation",
		"hands", s.config.Hands,
		"workers", workers,
		"seed", s.config.Seed,
		"table", s.config.Rules.Table.Name)

	perWorker := make([]*Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * s.config.Hands / workers
		end := (w + 1) * s.config.Hands / workers
		stats := NewStatistics()
		perWorker[w] = stats

		g.Go(func() error {
			for hand := start; hand < end; hand++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := s.playHand(s.config.Seed+int64(hand), stats); err != nil {
					return fmt.Errorf("hand %d: %w", hand, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := NewStatistics()
	for _, stats := range perWorker {
		total.merge(stats)
	}

	s.config.Logger.Info("simulation complete",
		"hands", total.Hands,
		"pots", total.Pots,
		"split_pots", total.SplitPots,
		"chips_moved", total.ChipsMoved)
	return total, nil
}

// playHand deals one full hand at the configured stakes, settles it, and
// checks chip conservation.
func (s *Simulator) playHand(seed int64, stats *Statistics) error {
	rules := s.config.Rules.Table
	rng := randutil.New(seed)

	d := deck.NewSeeded(seed)
	d.Shuffle()

	playerIDs := make([]string, rules.Seats)
	contributed := make([]int64, rules.Seats)
	holeCards := make(map[string][]deck.Card, rules.Seats)

	// Every hand commits to a single raise level; players either fold for at
	// most the big blind, call it, or go all-in short with their stack.
	level := rules.BigBlind * (1 + rng.Int64N(100))
	for i := range playerIDs {
		id := fmt.Sprintf("seat%d", i+1)
		playerIDs[i] = id

		hole := d.DealN(2)

		// Keep at least two players in the hand.
		folds := i >= 2 && rng.IntN(100) < 30
		if folds {
			contributed[i] = rng.Int64N(rules.BigBlind + 1)
			continue
		}

		stack := rules.BuyInMin + rng.Int64N(rules.BuyInMax-rules.BuyInMin+1)
		contributed[i] = min(stack, level)
		holeCards[id] = hole
	}
	community := d.DealN(5)

	result, err := settle.Showdown(playerIDs, contributed, holeCards, community)
	if err != nil {
		return err
	}

	var betTotal, wonTotal int64
	for _, c := range contributed {
		betTotal += c
	}
	for _, w := range result.Payouts {
		wonTotal += w
	}
	if betTotal != wonTotal {
		return fmt.Errorf("conservation violated: %d contributed but %d paid out", betTotal, wonTotal)
	}

	stats.record(result, wonTotal)
	return nil
}
