package game

import (
	"fmt"

	"whist/internal/bid"
	"whist/internal/deck"
)

// TrickResult reports one resolved trick.
type TrickResult struct {
	Winner      Seat
	WinningCard deck.Card
	Cards       []deck.Card
	LedSuit     deck.Suit
}

// Deal runs the play phase of one contracted deal: thirteen tricks
// under the trump strain fixed by the auction. The declarer leads the
// first trick; each trick winner leads the next.
type Deal struct {
	table       *Table
	trump       bid.Strain
	trumpBroken bool

	played []deck.Card // everything played this deal, in play order
	tricks int

	turn       Seat
	trickCards []deck.Card
	trickSeats []Seat
	ledSuit    deck.Suit
}

// NewDeal starts the play phase from a contracted auction outcome
func NewDeal(table *Table, out Outcome) (*Deal, error) {
	if !out.Contracted {
		return nil, fmt.Errorf("cannot play a passed-out deal")
	}
	return &Deal{
		table:      table,
		trump:      out.Trump,
		turn:       out.Declarer,
		played:     make([]deck.Card, 0, NumSeats*HandSize),
		trickCards: make([]deck.Card, 0, NumSeats),
		trickSeats: make([]Seat, 0, NumSeats),
	}, nil
}

// Trump returns the trump strain fixed at auction close
func (d *Deal) Trump() bid.Strain {
	return d.trump
}

// TrumpBroken returns true once any trump-suited card has been played
func (d *Deal) TrumpBroken() bool {
	return d.trumpBroken
}

// Turn returns the seat to play next
func (d *Deal) Turn() Seat {
	return d.turn
}

// Leading returns true if the next play leads a fresh trick
func (d *Deal) Leading() bool {
	return len(d.trickCards) == 0
}

// LedSuit returns the suit led in the trick in progress. Only
// meaningful when a trick has at least one card down.
func (d *Deal) LedSuit() deck.Suit {
	return d.ledSuit
}

// CardsPlayed returns a copy of all cards played so far this deal.
// Callers may hold it across further plays without seeing them.
func (d *Deal) CardsPlayed() []deck.Card {
	out := make([]deck.Card, len(d.played))
	copy(out, d.played)
	return out
}

// TricksPlayed returns the number of completed tricks
func (d *Deal) TricksPlayed() int {
	return d.tricks
}

// Done returns true once all thirteen tricks have resolved
func (d *Deal) Done() bool {
	return d.tricks == HandSize
}

// LegalPlays returns the cards the acting seat may play, applying the
// lead rules on a fresh trick and the follow rules otherwise. The
// second return reports a forced trump lead.
func (d *Deal) LegalPlays(seat Seat) ([]deck.Card, bool) {
	hand := d.table.Player(seat).Hand
	if d.Leading() {
		return LegalLeadCards(hand, d.trump, d.trumpBroken)
	}
	return LegalFollowCards(hand, d.ledSuit), false
}

// Play commits one card for the acting seat. When the fourth card
// lands the trick resolves: the winning partnership scores a point and
// archives the trick, trump-broken updates, and the winner leads next.
// The returned result is nil until a trick completes.
func (d *Deal) Play(seat Seat, card deck.Card) (*TrickResult, error) {
	if d.Done() {
		return nil, ErrDealOver
	}
	if seat != d.turn {
		return nil, ErrOutOfTurn
	}

	legal, _ := d.LegalPlays(seat)
	if !containsCard(legal, card) {
		if !d.table.Player(seat).HasCard(card) {
			return nil, ErrNotInHand
		}
		return nil, ErrIllegalCard
	}

	played, err := d.table.Player(seat).Play(card)
	if err != nil {
		return nil, err
	}

	if d.Leading() {
		d.ledSuit = played.Suit
	}
	d.trickCards = append(d.trickCards, played)
	d.trickSeats = append(d.trickSeats, seat)
	d.played = append(d.played, played)
	if BreaksTrump(played, d.trump) {
		d.trumpBroken = true
	}

	if len(d.trickCards) < NumSeats {
		d.turn = d.turn.Next()
		return nil, nil
	}

	winIdx := ResolveTrick(d.trickCards, d.ledSuit, d.trump)
	result := &TrickResult{
		Winner:      d.trickSeats[winIdx],
		WinningCard: d.trickCards[winIdx],
		Cards:       append([]deck.Card(nil), d.trickCards...),
		LedSuit:     d.ledSuit,
	}
	d.table.PartnershipOf(result.Winner).AddTrick(d.trickCards)

	d.tricks++
	d.turn = result.Winner
	d.trickCards = d.trickCards[:0]
	d.trickSeats = d.trickSeats[:0]
	return result, nil
}

func containsCard(cards []deck.Card, card deck.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
