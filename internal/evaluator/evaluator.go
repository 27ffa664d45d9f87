// Package evaluator classifies 5-card poker hands, searches card pools for
// the best 5-card hand, and totally orders hands by an integer score.
//
// All functions are pure and safe for concurrent use.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/showdown/internal/deck"
)

// ErrInvalidInput is returned for malformed arguments (wrong card counts).
var ErrInvalidInput = errors.New("evaluator: invalid input")

// features holds everything the classifiers need, computed once per hand:
// rank-multiplicity groups, straight and flush detection.
type features struct {
	groups       []rankGroup // sorted by count desc, then rank desc
	isStraight   bool
	isFlush      bool
	straightBest []deck.Card // straight-ordered cards, wheel ace last
}

// rankGroup is a run of same-rank cards within a hand
type rankGroup struct {
	rank  deck.Rank
	cards []deck.Card
}

// classifier pairs a category with its match predicate. Classifiers are
// evaluated in strict priority order; the first match wins.
type classifier struct {
	category Category
	matches  func(f features) bool
}

var classifiers = []classifier{
	{RoyalFlush, func(f features) bool {
		return f.isStraight && f.isFlush &&
			f.straightBest[0].Rank == deck.Ace && f.straightBest[1].Rank == deck.King
	}},
	{StraightFlush, func(f features) bool { return f.isStraight && f.isFlush }},
	{FourOfAKind, func(f features) bool { return len(f.groups[0].cards) == 4 }},
	{FullHouse, func(f features) bool {
		return len(f.groups[0].cards) == 3 && len(f.groups[1].cards) == 2
	}},
	{Flush, func(f features) bool { return f.isFlush }},
	{Straight, func(f features) bool { return f.isStraight }},
	{ThreeOfAKind, func(f features) bool { return len(f.groups[0].cards) == 3 }},
	{TwoPair, func(f features) bool {
		return len(f.groups[0].cards) == 2 && len(f.groups[1].cards) == 2
	}},
	{OnePair, func(f features) bool { return len(f.groups[0].cards) == 2 }},
	{HighCard, func(f features) bool { return true }},
}

// EvaluateFive classifies exactly five cards and returns the evaluated hand.
func EvaluateFive(cards []deck.Card) (Hand, error) {
	if len(cards) != 5 {
		return Hand{}, fmt.Errorf("%w: need exactly 5 cards, got %d", ErrInvalidInput, len(cards))
	}

	f := computeFeatures(cards)
	for _, c := range classifiers {
		if !c.matches(f) {
			continue
		}
		best := bestCards(c.category, f)
		tieBreaks := make([]deck.Rank, len(best))
		for i, card := range best {
			tieBreaks[i] = card.Rank
		}
		return Hand{
			Category:  c.category,
			Best:      best,
			TieBreaks: tieBreaks,
			Score:     score(c.category, tieBreaks),
		}, nil
	}

	// Unreachable: HighCard matches everything.
	return Hand{}, fmt.Errorf("%w: no category matched", ErrInvalidInput)
}

// EvaluateBest finds the strongest 5-card hand in the combined hole and
// community card pool by evaluating every 5-card subset. When several subsets
// tie in score any one of them is returned; score alone is the comparison
// contract.
func EvaluateBest(hole, community []deck.Card) (Hand, error) {
	pool := make([]deck.Card, 0, len(hole)+len(community))
	pool = append(pool, hole...)
	pool = append(pool, community...)
	if len(pool) < 5 {
		return Hand{}, fmt.Errorf("%w: need at least 5 cards, got %d", ErrInvalidInput, len(pool))
	}

	var best Hand
	combo := make([]deck.Card, 5)
	err := combinations(len(pool), 5, func(idx []int) error {
		for i, j := range idx {
			combo[i] = pool[j]
		}
		hand, err := EvaluateFive(combo)
		if err != nil {
			return err
		}
		if hand.Score > best.Score {
			best = hand
		}
		return nil
	})
	if err != nil {
		return Hand{}, err
	}
	return best, nil
}

// computeFeatures sorts the hand descending by rank and derives the rank
// groups plus straight/flush flags.
func computeFeatures(cards []deck.Card) features {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	var groups []rankGroup
	for _, card := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == card.Rank {
			groups[n-1].cards = append(groups[n-1].cards, card)
			continue
		}
		groups = append(groups, rankGroup{rank: card.Rank, cards: []deck.Card{card}})
	}
	// Rank-defining groups first: larger multiplicities, then higher ranks.
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].cards) != len(groups[j].cards) {
			return len(groups[i].cards) > len(groups[j].cards)
		}
		return groups[i].rank > groups[j].rank
	})

	f := features{
		groups:  groups,
		isFlush: isFlush(sorted),
	}
	f.isStraight, f.straightBest = straightOrder(sorted)
	return f
}

// isFlush reports whether all five cards share one suit
func isFlush(cards []deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightOrder detects a straight in rank-descending cards and returns the
// cards ordered top card first. Five consecutive ranks form a straight, as
// does the wheel (A-5-4-3-2), where the ace counts low: the five becomes the
// top card for comparison and the ace moves to the end.
func straightOrder(sorted []deck.Card) (bool, []deck.Card) {
	consecutive := true
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Rank != sorted[i+1].Rank+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, sorted
	}

	// Wheel: exactly A,5,4,3,2.
	if sorted[0].Rank == deck.Ace &&
		sorted[1].Rank == deck.Five &&
		sorted[2].Rank == deck.Four &&
		sorted[3].Rank == deck.Three &&
		sorted[4].Rank == deck.Two {
		wheel := append([]deck.Card{}, sorted[1:]...)
		wheel = append(wheel, sorted[0])
		return true, wheel
	}
	return false, nil
}

// bestCards orders the five cards with rank-defining cards first. Straights
// (including straight flushes) use straight order; every other category is the
// group order, which already puts pairs/trips/quads ahead of kickers.
func bestCards(category Category, f features) []deck.Card {
	switch category {
	case RoyalFlush, StraightFlush, Straight:
		return f.straightBest
	default:
		best := make([]deck.Card, 0, 5)
		for _, g := range f.groups {
			best = append(best, g.cards...)
		}
		return best
	}
}
