package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/showdown/internal/deck"
)

// Hand represents an evaluated 5-card poker hand.
//
// Best holds the five cards ordered so that rank-defining cards precede
// kickers (the pair before its three kickers, trips before the pair in a full
// house). TieBreaks is the rank sequence of Best and Score is a pure function
// of (Category, TieBreaks): two hands with the same category and tie-break
// ranks have the same score and are true ties for pot-splitting purposes,
// even when the underlying cards differ.
type Hand struct {
	Category  Category
	Best      []deck.Card
	TieBreaks []deck.Rank
	Score     int64
}

// String returns a human-readable label like "Full House [A♠ A♥ A♦ K♠ K♥]"
func (h Hand) String() string {
	cardStrs := make([]string, 0, len(h.Best))
	for _, card := range h.Best {
		cardStrs = append(cardStrs, card.String())
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(cardStrs, " "))
}

// Compare returns the sign of a.Score - b.Score:
//
//	-1 if a is weaker than b
//	 0 if the hands tie exactly (eligible for pot splitting)
//	 1 if a is stronger than b
func Compare(a, b Hand) int {
	switch {
	case a.Score < b.Score:
		return -1
	case a.Score > b.Score:
		return 1
	default:
		return 0
	}
}

// Score spacing: the category weight occupies the 10^9 digit pair and each
// tie-break rank gets its own two decimal digits below it, so category always
// dominates kickers and integer comparison reproduces lexicographic rank
// comparison exactly.
const categoryScale = 1_000_000_000

var tieBreakScale = [5]int64{100_000_000, 1_000_000, 10_000, 100, 1}

// score computes the total-order score for a category and its tie-break ranks.
func score(category Category, tieBreaks []deck.Rank) int64 {
	s := int64(category.Weight()) * categoryScale
	for i, r := range tieBreaks {
		s += int64(r.Value()) * tieBreakScale[i]
	}
	return s
}
