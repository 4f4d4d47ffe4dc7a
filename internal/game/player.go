package game

import (
	"whist/internal/bid"
	"whist/internal/deck"
)

// Player holds one seat's per-deal state: the cards in hand and the
// bids made this auction. Identity is the seat; hand and bid history
// are cleared between deals.
type Player struct {
	Seat       Seat
	Hand       []deck.Card
	BidHistory []bid.Bid
	CurrentBid bid.Bid
}

// NewPlayer creates a player for a seat with an empty hand
func NewPlayer(seat Seat) *Player {
	return &Player{
		Seat: seat,
		Hand: make([]deck.Card, 0, HandSize),
	}
}

// HasCard returns true if the card is in the player's hand
func (p *Player) HasCard(card deck.Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// Play removes a card from the hand and returns it.
// Playing a card not in hand is an invariant violation.
func (p *Player) Play(card deck.Card) (deck.Card, error) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return card, nil
		}
	}
	return deck.Card{}, ErrNotInHand
}

// RecordBid appends a bid to the player's history and makes it current
func (p *Player) RecordBid(b bid.Bid) {
	p.CurrentBid = b
	p.BidHistory = append(p.BidHistory, b)
}

// CardsOfSuit returns the cards in hand matching a suit
func (p *Player) CardsOfSuit(suit deck.Suit) []deck.Card {
	var cards []deck.Card
	for _, c := range p.Hand {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

// SuitsHeld returns the set of suits still present in the hand
func (p *Player) SuitsHeld() map[deck.Suit]bool {
	held := make(map[deck.Suit]bool, 4)
	for _, c := range p.Hand {
		held[c.Suit] = true
	}
	return held
}

// IsVoid returns true if the hand is missing at least one suit
func (p *Player) IsVoid() bool {
	return len(p.Hand) > 0 && len(p.SuitsHeld()) < 4
}

// SortHand orders the hand by suit then rank for display
func (p *Player) SortHand() {
	deck.Sort(p.Hand)
}

// Reset clears the hand and bid history for the next deal
func (p *Player) Reset() {
	p.Hand = p.Hand[:0]
	p.BidHistory = nil
	p.CurrentBid = bid.Pass
}
