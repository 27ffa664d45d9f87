package simulator

import (
	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/settle"
)

// Statistics aggregates settlement outcomes across simulated hands.
// Instances are not safe for concurrent use; each worker records into its
// own and the simulator merges them at the end.
type Statistics struct {
	Hands      int
	Pots       int
	SplitPots  int
	ChipsMoved int64
	Categories map[evaluator.Category]int
}

// NewStatistics creates an empty statistics accumulator
func NewStatistics() *Statistics {
	return &Statistics{
		Categories: make(map[evaluator.Category]int),
	}
}

// record adds one settled hand's outcome
func (s *Statistics) record(result *settle.Result, chipsMoved int64) {
	s.Hands++
	s.Pots += len(result.Pots)
	s.ChipsMoved += chipsMoved
	for _, hand := range result.Hands {
		s.Categories[hand.Category]++
	}

	// A pot with several eligible players at the same top score was split.
	for _, pot := range result.Pots {
		best, ok := bestScore(pot, result)
		if !ok {
			continue
		}
		winners := 0
		for _, id := range pot.Eligible {
			if hand, revealed := result.Hands[id]; revealed && hand.Score == best {
				winners++
			}
		}
		if winners > 1 {
			s.SplitPots++
		}
	}
}

// bestScore returns the best revealed score among a pot's eligible players
func bestScore(pot settle.Pot, result *settle.Result) (int64, bool) {
	var best int64
	found := false
	for _, id := range pot.Eligible {
		if hand, ok := result.Hands[id]; ok {
			if !found || hand.Score > best {
				best = hand.Score
				found = true
			}
		}
	}
	return best, found
}

// merge folds another accumulator into this one
func (s *Statistics) merge(other *Statistics) {
	s.Hands += other.Hands
	s.Pots += other.Pots
	s.SplitPots += other.SplitPots
	s.ChipsMoved += other.ChipsMoved
	for category, count := range other.Categories {
		s.Categories[category] += count
	}
}
