package deck

import (
	rand "math/rand/v2"
	"time"

	"github.com/lox/showdown/internal/randutil"
)

// Deck represents a deck of playing cards. A deck is owned by a single hand of
// play and is not safe for concurrent use; the owner threads it through
// New → Shuffle → DealN.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in canonical order (suits Spades..Clubs,
// ranks Two..Ace within each suit), seeded from the wall clock.
func New() *Deck {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a standard 52-card deck whose shuffle sequence is
// deterministic for the given seed. Used by the simulator and tests.
func NewSeeded(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   randutil.New(seed),
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle performs an in-place Fisher-Yates shuffle, uniform over all
// orderings of the remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN removes and returns the first n cards, or all remaining cards when
// fewer than n are left.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
