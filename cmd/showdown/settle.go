package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/settle"
)

// SettleCmd settles a finished hand: contributions in, pots and payouts out
type SettleCmd struct {
	Hands   []string         `arg:"" required:"" help:"Revealed hands in format 'player:AcKd' (folded players omit theirs)"`
	Board   string           `short:"b" required:"" help:"Community board cards, 3-5 cards"`
	Contrib map[string]int64 `short:"c" required:"" help:"Contributed amounts per player (e.g., p1=100,p2=50)"`
}

func (c *SettleCmd) Run(logger *zerolog.Logger) error {
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}

	holeCards := make(map[string][]deck.Card, len(c.Hands))
	for _, spec := range c.Hands {
		player, cards, ok := strings.Cut(spec, ":")
		if !ok {
			return fmt.Errorf("invalid hand %q: expected 'player:cards'", spec)
		}
		hole, err := deck.ParseCards(cards)
		if err != nil {
			return fmt.Errorf("hand for %s: %w", player, err)
		}
		if _, exists := c.Contrib[player]; !exists {
			return fmt.Errorf("player %s revealed a hand but has no contribution", player)
		}
		holeCards[player] = hole
	}

	// Stable player order: sorted ids, so output doesn't depend on map order.
	playerIDs := make([]string, 0, len(c.Contrib))
	for id := range c.Contrib {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)
	contributed := make([]int64, len(playerIDs))
	for i, id := range playerIDs {
		contributed[i] = c.Contrib[id]
	}

	result, err := settle.Showdown(playerIDs, contributed, holeCards, board)
	if err != nil {
		return err
	}
	logger.Debug().Int("pots", len(result.Pots)).Msg("settled")

	fmt.Println(headerStyle.Render("Board: ") + cardsString(board))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, id := range playerIDs {
		hand, revealed := result.Hands[id]
		desc := "folded"
		if revealed {
			desc = fmt.Sprintf("%s\t%s", categoryStyle.Render(hand.Category.String()), cardsString(hand.Best))
		} else {
			desc = desc + "\t"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", handStyle.Render(id), c.Contrib[id], desc)
	}
	w.Flush()

	fmt.Println(headerStyle.Render("Pots"))
	for i, pot := range result.Pots {
		fmt.Printf("  #%d  %d  (%s)\n", i+1, pot.Amount, strings.Join(pot.Eligible, ", "))
	}

	fmt.Println(headerStyle.Render("Payouts"))
	for _, id := range playerIDs {
		if won, ok := result.Payouts[id]; ok {
			fmt.Printf("  %s  %s\n", id, winStyle.Render(fmt.Sprintf("+%d", won)))
		}
	}
	return nil
}
