package deck

import (
	"errors"
	rand "math/rand/v2"
	"sort"
)

// ErrEmpty is returned when drawing from an exhausted deck. Correct
// dealing never hits it; seeing it means an invariant was violated.
var ErrEmpty = errors.New("deck: no cards remaining")

// Deck represents a deck of playing cards with an injected RNG so
// shuffles are reproducible under a fixed seed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in sorted order
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// NewShuffled creates a 52-card deck and shuffles it
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmpty
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DrawN draws n cards from the deck
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrEmpty
	}
	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// SortByRank sorts cards ascending by rank only
func SortByRank(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank < cards[j].Rank
	})
}

// SortBySuit sorts cards ascending by suit only
func SortBySuit(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Suit < cards[j].Suit
	})
}

// Sort sorts cards by suit, then rank within each suit. The rank pass
// runs first; the stable suit pass preserves it within each suit.
func Sort(cards []Card) {
	SortByRank(cards)
	SortBySuit(cards)
}
