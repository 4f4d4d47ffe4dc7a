package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a two-character card like "AS" or "Td".
// Rank is one of 23456789TJQKA, suit one of CDHS.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank+suit like AS", s)
	}

	var rank Rank
	switch strings.ToUpper(s[:1]) {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in %q", s[:1], s)
	}

	var suit Suit
	switch strings.ToUpper(s[1:]) {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q in %q", s[1:], s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a whitespace or comma separated list of cards,
// e.g. "AS KH TD". Duplicates are rejected.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})

	var seen CardSet
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("duplicate card %s", card)
		}
		seen.Add(card)
		cards = append(cards, card)
	}
	return cards, nil
}
