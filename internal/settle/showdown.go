package settle

import (
	"fmt"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

// Result is the full outcome of settling one hand.
type Result struct {
	// Hands holds the evaluated best hand of every showdown participant.
	Hands map[string]evaluator.Hand

	// Pots is the layered settlement structure the contributions produced.
	Pots []Pot

	// Payouts maps each winning player to the amount won. Players who won
	// nothing are omitted.
	Payouts map[string]int64
}

// Showdown settles a complete hand in one call: it evaluates the best hand of
// every player who revealed hole cards, layers the contributed amounts into
// pots, and awards each pot.
//
// playerIDs and contributed cover everyone who posted chips this hand,
// folded players included; holeCards covers only the showdown participants.
// The caller applies Payouts to chip balances and broadcasts the result.
func Showdown(playerIDs []string, contributed []int64, holeCards map[string][]deck.Card, community []deck.Card) (*Result, error) {
	hands := make(map[string]evaluator.Hand, len(holeCards))
	for id, hole := range holeCards {
		hand, err := evaluator.EvaluateBest(hole, community)
		if err != nil {
			return nil, fmt.Errorf("evaluating hand for player %s: %w", id, err)
		}
		hands[id] = hand
	}

	pots, err := SidePots(playerIDs, contributed)
	if err != nil {
		return nil, err
	}
	payouts, err := AwardPots(pots, hands)
	if err != nil {
		return nil, err
	}

	return &Result{Hands: hands, Pots: pots, Payouts: payouts}, nil
}
