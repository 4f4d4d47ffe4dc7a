package game

import (
	"whist/internal/bid"
	"whist/internal/deck"
)

// LegalLeadCards returns the cards a leader may play. While the trump
// suit is unbroken the leader may not lead it, unless the hand holds
// nothing else; that forced trump lead is reported through the second
// return and is an expected state, not an error. Under a notrump
// contract every card is leadable.
func LegalLeadCards(hand []deck.Card, trump bid.Strain, trumpBroken bool) ([]deck.Card, bool) {
	trumpSuit, isSuit := trump.Suit()
	if !isSuit || trumpBroken {
		return hand, false
	}

	var legal []deck.Card
	for _, c := range hand {
		if c.Suit != trumpSuit {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return hand, true
	}
	return legal, false
}

// LegalFollowCards returns the cards a defender may play to a led
// suit: the led-suit holding when there is one, otherwise the whole
// hand (discards and trumps alike).
func LegalFollowCards(hand []deck.Card, led deck.Suit) []deck.Card {
	var matching []deck.Card
	for _, c := range hand {
		if c.Suit == led {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return hand
	}
	return matching
}

// ResolveTrick returns the index of the winning card among the cards
// played to a trick. If the trump strain is a real suit and any trump
// was played, the highest trump wins; otherwise the highest card of
// the led suit wins. Under notrump no card can match the strain, so
// resolution always falls through to the led-suit comparison.
// Returns -1 for an empty trick.
func ResolveTrick(cards []deck.Card, led deck.Suit, trump bid.Strain) int {
	if len(cards) == 0 {
		return -1
	}

	winner := -1
	if trumpSuit, isSuit := trump.Suit(); isSuit {
		for i, c := range cards {
			if c.Suit != trumpSuit {
				continue
			}
			if winner == -1 || c.Rank > cards[winner].Rank {
				winner = i
			}
		}
	}
	if winner >= 0 {
		return winner
	}

	for i, c := range cards {
		if c.Suit != led {
			continue
		}
		if winner == -1 || c.Rank > cards[winner].Rank {
			winner = i
		}
	}
	return winner
}

// BreaksTrump returns true if playing the card breaks an unbroken
// trump suit for the rest of the deal
func BreaksTrump(card deck.Card, trump bid.Strain) bool {
	trumpSuit, isSuit := trump.Suit()
	return isSuit && card.Suit == trumpSuit
}
