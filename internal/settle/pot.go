// Package settle builds the layered pot structure for a hand of poker and
// distributes pots to winners.
//
// All functions are pure: they consume an already-finalized snapshot of
// contributions and evaluated hands and hold no state between calls. Chip
// amounts only ever move through the chips package, so a settlement either
// conserves every unit of the input or fails.
package settle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/showdown/internal/chips"
)

// ErrInvalidInput is returned for malformed arguments: mismatched slice
// lengths, negative amounts, or a pot no showdown participant can win.
var ErrInvalidInput = errors.New("settle: invalid input")

// Pot is one layer of the settlement structure: an amount and the players
// eligible to win it. Eligible is ordered by ascending contribution (the
// order side-pot construction walks the players in), and higher layers carry
// subsets of the players below them.
type Pot struct {
	Amount   int64
	Eligible []string
}

// SidePots splits the players' contributed amounts into main and side pots.
//
// Players are stable-sorted ascending by contribution; each distinct
// contribution level above the previous one forms a pot of
// (level delta) x (players contributing at least that much), eligible to
// exactly those players. Folded players still appear in contributions (their
// chips stay in the pot) and are excluded from winning later, at award time.
//
// The returned pots always sum to the total contributions; SidePots errors
// rather than return a structure that violates conservation.
func SidePots(playerIDs []string, contributed []int64) ([]Pot, error) {
	if len(playerIDs) != len(contributed) {
		return nil, fmt.Errorf("%w: %d players but %d contributions",
			ErrInvalidInput, len(playerIDs), len(contributed))
	}

	type entry struct {
		id     string
		amount int64
	}
	entries := make([]entry, len(playerIDs))
	for i, id := range playerIDs {
		if contributed[i] < 0 {
			return nil, fmt.Errorf("%w: negative contribution %d for player %s",
				ErrInvalidInput, contributed[i], id)
		}
		entries[i] = entry{id: id, amount: contributed[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].amount < entries[j].amount
	})

	var pots []Pot
	var level int64
	for i, e := range entries {
		if e.amount == level {
			// Same contribution as the layer below: no extra layer.
			continue
		}

		delta, err := chips.Sub(e.amount, level)
		if err != nil {
			return nil, err
		}
		amount, err := chips.Mul(delta, int64(len(entries)-i))
		if err != nil {
			return nil, err
		}

		eligible := make([]string, 0, len(entries)-i)
		for _, contributor := range entries[i:] {
			eligible = append(eligible, contributor.id)
		}
		pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		level = e.amount
	}

	if err := checkConservation(pots, contributed); err != nil {
		return nil, err
	}
	return pots, nil
}

// checkConservation verifies sum(pots) == sum(contributed).
func checkConservation(pots []Pot, contributed []int64) error {
	var potTotal, betTotal int64
	var err error
	for _, p := range pots {
		if potTotal, err = chips.Add(potTotal, p.Amount); err != nil {
			return err
		}
	}
	for _, c := range contributed {
		if betTotal, err = chips.Add(betTotal, c); err != nil {
			return err
		}
	}
	if potTotal != betTotal {
		return fmt.Errorf("settle: pots sum to %d but contributions sum to %d", potTotal, betTotal)
	}
	return nil
}
