package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// EvalCmd evaluates one or more hole-card hands against a community board
type EvalCmd struct {
	Hands []string `arg:"" required:"" help:"Player hands in format 'AcKd' (one per argument)"`
	Board string   `short:"b" help:"Community board cards (e.g., 'Td7s8h'), 3-5 cards"`
}

func (c *EvalCmd) Run(logger *zerolog.Logger) error {
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}

	hands := make([][]deck.Card, 0, len(c.Hands))
	for i, handStr := range c.Hands {
		hand, err := deck.ParseCards(strings.TrimSpace(handStr))
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, hand)
	}
	if err := validateNoDuplicates(hands, board); err != nil {
		return err
	}

	evaluated := make([]evaluator.Hand, len(hands))
	for i, hand := range hands {
		logger.Debug().Str("hole", cardsString(hand)).Msg("evaluating")
		evaluated[i], err = evaluator.EvaluateBest(hand, board)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}

	best := evaluated[0]
	for _, hand := range evaluated[1:] {
		if evaluator.Compare(hand, best) > 0 {
			best = hand
		}
	}

	if len(board) > 0 {
		fmt.Println(headerStyle.Render("Board: ") + cardsString(board))
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, hand := range evaluated {
		marker := ""
		if evaluator.Compare(hand, best) == 0 {
			marker = winStyle.Render(" WINNER")
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\n",
			handStyle.Render(cardsString(hands[i])),
			categoryStyle.Render(hand.Category.String()),
			cardsString(hand.Best),
			marker)
	}
	return w.Flush()
}

func cardsString(cards []deck.Card) string {
	strs := make([]string, len(cards))
	for i, card := range cards {
		strs[i] = card.String()
	}
	return strings.Join(strs, " ")
}

func validateNoDuplicates(hands [][]deck.Card, board []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, card := range board {
		if seen[card] {
			return fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	for i, hand := range hands {
		for _, card := range hand {
			if seen[card] {
				return fmt.Errorf("duplicate card found in hand %d: %s", i+1, card)
			}
			seen[card] = true
		}
	}
	return nil
}
