package evaluator

import (
	"errors"
	"testing"

	"github.com/lox/showdown/internal/deck"
)

func TestEvaluateFiveCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{
			name:     "Royal Flush",
			cards:    "AsKsQsJsTs",
			expected: RoyalFlush,
		},
		{
			name:     "Straight Flush",
			cards:    "9s8s7s6s5s",
			expected: StraightFlush,
		},
		{
			name:     "Steel Wheel is a straight flush not royal",
			cards:    "As5s4s3s2s",
			expected: StraightFlush,
		},
		{
			name:     "Four of a Kind",
			cards:    "AsAhAdAcKs",
			expected: FourOfAKind,
		},
		{
			name:     "Full House",
			cards:    "AsAhAdKsKh",
			expected: FullHouse,
		},
		{
			name:     "Flush",
			cards:    "AsKsQs8s6s",
			expected: Flush,
		},
		{
			name:     "Straight",
			cards:    "AsKhQdJcTs",
			expected: Straight,
		},
		{
			name:     "Wheel straight",
			cards:    "As5h4d3c2s",
			expected: Straight,
		},
		{
			name:     "Three of a Kind",
			cards:    "AsAhAdKs9c",
			expected: ThreeOfAKind,
		},
		{
			name:     "Two Pair",
			cards:    "AsAhKdKs9c",
			expected: TwoPair,
		},
		{
			name:     "One Pair",
			cards:    "AsAhKdQs9c",
			expected: OnePair,
		},
		{
			name:     "High Card",
			cards:    "AsKhQd9s7c",
			expected: HighCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := EvaluateFive(deck.MustParseCards(tt.cards))
			if err != nil {
				t.Fatalf("EvaluateFive() error = %v", err)
			}
			if hand.Category != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, hand.Category)
			}
			if hand.Score <= 0 {
				t.Errorf("score must be positive, got %d", hand.Score)
			}
			if len(hand.Best) != 5 || len(hand.TieBreaks) != 5 {
				t.Errorf("expected 5 best cards and 5 tie-breaks, got %d/%d",
					len(hand.Best), len(hand.TieBreaks))
			}
		})
	}
}

func TestEvaluateFiveInputValidation(t *testing.T) {
	for _, cards := range []string{"", "AsKs", "AsKsQsJsTs9h"} {
		if _, err := EvaluateFive(deck.MustParseCards(cards)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("EvaluateFive(%q) error = %v, want ErrInvalidInput", cards, err)
		}
	}
}

func TestWheelTopCardIsFive(t *testing.T) {
	wheel, err := EvaluateFive(deck.MustParseCards("As5h4d3c2s"))
	if err != nil {
		t.Fatal(err)
	}
	if wheel.Best[0].Rank != deck.Five {
		t.Errorf("wheel top card should be the five, got %s", wheel.Best[0])
	}
	if wheel.TieBreaks[0] != deck.Five {
		t.Errorf("wheel top tie-break should be five, got %s", wheel.TieBreaks[0])
	}

	// The wheel is the lowest straight: a six-high straight beats it.
	sixHigh, err := EvaluateFive(deck.MustParseCards("6s5h4d3c2s"))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(sixHigh, wheel) != 1 {
		t.Errorf("six-high straight should beat the wheel: %d vs %d", sixHigh.Score, wheel.Score)
	}

	// An ace-high straight beats both.
	broadway, err := EvaluateFive(deck.MustParseCards("AsKhQdJcTs"))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(broadway, sixHigh) != 1 {
		t.Errorf("broadway should beat a six-high straight")
	}
}

func TestBestCardsOrderedRankDefiningFirst(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		ranks []deck.Rank
	}{
		{
			name:  "pair before kickers",
			cards: "9s9hAdKsQc",
			ranks: []deck.Rank{deck.Nine, deck.Nine, deck.Ace, deck.King, deck.Queen},
		},
		{
			name:  "trips before pair in full house",
			cards: "2s2h2dAsAh",
			ranks: []deck.Rank{deck.Two, deck.Two, deck.Two, deck.Ace, deck.Ace},
		},
		{
			name:  "high pair then low pair then kicker",
			cards: "KsKh3d3cAs",
			ranks: []deck.Rank{deck.King, deck.King, deck.Three, deck.Three, deck.Ace},
		},
		{
			name:  "quads before kicker",
			cards: "7s7h7d7cAs",
			ranks: []deck.Rank{deck.Seven, deck.Seven, deck.Seven, deck.Seven, deck.Ace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := EvaluateFive(deck.MustParseCards(tt.cards))
			if err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.ranks {
				if hand.TieBreaks[i] != want {
					t.Errorf("tie-break %d: expected %s, got %s", i, want, hand.TieBreaks[i])
				}
			}
		})
	}
}

func TestScoreOrderingAcrossCategories(t *testing.T) {
	// Weakest to strongest; every later hand must outscore every earlier one.
	hands := []string{
		"AsKhQd9s7c", // high card
		"2s2h4d6c8s", // one pair
		"2s2h3d3cKs", // two pair
		"2s2h2d6c8s", // trips
		"As5h4d3c2s", // wheel straight
		"2s7s9sJsKs", // flush
		"2s2h2d3c3s", // full house
		"2s2h2d2cAs", // quads
		"As5s4s3s2s", // steel wheel
		"AsKsQsJsTs", // royal flush
	}

	scores := make([]int64, len(hands))
	for i, cards := range hands {
		hand, err := EvaluateFive(deck.MustParseCards(cards))
		if err != nil {
			t.Fatalf("%s: %v", cards, err)
		}
		scores[i] = hand.Score
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] <= scores[i-1] {
			t.Errorf("%s (%d) should outscore %s (%d)", hands[i], scores[i], hands[i-1], scores[i-1])
		}
	}
}

func TestKickerComparison(t *testing.T) {
	tests := []struct {
		name         string
		strong, weak string
	}{
		{"higher pair wins", "KsKh4d6c8s", "QsQhAd6c8s"},
		{"pair kicker decides", "9s9hAdKsQc", "9d9cAhKdJc"},
		{"flush compared card by card", "AsKsQs8s6s", "AhKhQh8h5h"},
		{"full house trips dominate pair", "8s8h8d2c2s", "7s7h7dAcAs"},
		{"quads kicker decides", "7s7h7d7cAs", "7s7h7d7cKs"},
		{"high card last kicker", "AsKhQd9s7c", "AdKcQh9c6s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strong, err := EvaluateFive(deck.MustParseCards(tt.strong))
			if err != nil {
				t.Fatal(err)
			}
			weak, err := EvaluateFive(deck.MustParseCards(tt.weak))
			if err != nil {
				t.Fatal(err)
			}
			if Compare(strong, weak) != 1 {
				t.Errorf("%s should beat %s (%d vs %d)", strong, weak, strong.Score, weak.Score)
			}
			if Compare(weak, strong) != -1 {
				t.Errorf("Compare should be antisymmetric")
			}
		})
	}
}

func TestExactTiesAcrossDifferentCards(t *testing.T) {
	// Two different flushes with identical ranks are a true tie.
	a, err := EvaluateFive(deck.MustParseCards("AsKsQs8s6s"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := EvaluateFive(deck.MustParseCards("AhKhQh8h6h"))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(a, b) != 0 {
		t.Errorf("identical-rank flushes should tie: %d vs %d", a.Score, b.Score)
	}
}

func TestEvaluateBest(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
		expected  Category
	}{
		{
			name:      "royal flush hidden in seven cards",
			hole:      "AsKs",
			community: "QsJsTs2c3c",
			expected:  RoyalFlush,
		},
		{
			name:      "board plays",
			hole:      "2c3d",
			community: "AsAhAdAcKs",
			expected:  FourOfAKind,
		},
		{
			name:      "five cards exactly",
			hole:      "AsKs",
			community: "QsJsTs",
			expected:  RoyalFlush,
		},
		{
			name:      "six card pool",
			hole:      "9s9h",
			community: "9d9cAs2h",
			expected:  FourOfAKind,
		},
		{
			name:      "full house over two pair",
			hole:      "KsKh",
			community: "Kd8c8sQh2d",
			expected:  FullHouse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := EvaluateBest(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.community))
			if err != nil {
				t.Fatalf("EvaluateBest() error = %v", err)
			}
			if hand.Category != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, hand.Category)
			}
		})
	}
}

func TestEvaluateBestTooFewCards(t *testing.T) {
	_, err := EvaluateBest(deck.MustParseCards("AsKs"), deck.MustParseCards("QsJs"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEvaluateBestDominatesEverySubset(t *testing.T) {
	pool := deck.MustParseCards("AsKs9d9c5h5s2c")

	best, err := EvaluateBest(pool[:2], pool[2:])
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	matched := false
	combo := make([]deck.Card, 5)
	err = combinations(len(pool), 5, func(idx []int) error {
		for i, j := range idx {
			combo[i] = pool[j]
		}
		hand, err := EvaluateFive(combo)
		if err != nil {
			return err
		}
		if hand.Score > best.Score {
			t.Errorf("subset %v outscores EvaluateBest: %d > %d", combo, hand.Score, best.Score)
		}
		if hand.Score == best.Score {
			matched = true
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 21 {
		t.Errorf("expected 21 subsets of 7 cards, got %d", count)
	}
	if !matched {
		t.Error("no subset achieved the best score")
	}
}
