package settle

import (
	"fmt"

	"github.com/lox/showdown/internal/chips"
	"github.com/lox/showdown/internal/evaluator"
)

// AwardPots distributes every pot to its winners and returns the per-player
// winnings. hands maps each showdown participant to their evaluated hand; an
// eligible player absent from the map (folded before showdown) cannot win.
//
// Each pot is settled independently: the winners are every eligible
// participant achieving the pot's maximum score, each receives
// floor(amount/winners), and the entire remainder goes to the first winner in
// the pot's eligibility order. Processing order does not affect the result.
// Players who won nothing are omitted from the returned map.
func AwardPots(pots []Pot, hands map[string]evaluator.Hand) (map[string]int64, error) {
	winnings := make(map[string]int64)
	for i, pot := range pots {
		if pot.Amount < 0 {
			return nil, fmt.Errorf("%w: pot %d has negative amount %d", ErrInvalidInput, i, pot.Amount)
		}
		winners := potWinners(pot, hands)
		if len(winners) == 0 {
			return nil, fmt.Errorf("%w: no showdown participant is eligible for pot %d (%d chips)",
				ErrInvalidInput, i, pot.Amount)
		}

		share, err := chips.Div(pot.Amount, int64(len(winners)))
		if err != nil {
			return nil, err
		}
		paid, err := chips.Mul(share, int64(len(winners)))
		if err != nil {
			return nil, err
		}
		remainder, err := chips.Sub(pot.Amount, paid)
		if err != nil {
			return nil, err
		}

		for _, id := range winners {
			if winnings[id], err = chips.Add(winnings[id], share); err != nil {
				return nil, err
			}
		}
		// The odd chips all go to the first winner in eligibility order,
		// which is ascending-contribution order, not seat order.
		if winnings[winners[0]], err = chips.Add(winnings[winners[0]], remainder); err != nil {
			return nil, err
		}
	}
	return winnings, nil
}

// potWinners returns the eligible showdown participants holding the pot's
// best score, preserving the pot's eligibility order.
func potWinners(pot Pot, hands map[string]evaluator.Hand) []string {
	var winners []string
	var best int64
	for _, id := range pot.Eligible {
		hand, ok := hands[id]
		if !ok {
			continue
		}
		switch {
		case len(winners) == 0 || hand.Score > best:
			winners = append(winners[:0], id)
			best = hand.Score
		case hand.Score == best:
			winners = append(winners, id)
		}
	}
	return winners
}
