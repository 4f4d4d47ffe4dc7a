package game

import (
	"whist/internal/deck"
)

// Partnership pairs the two seats sitting opposite each other and
// holds their running score for the deal.
type Partnership struct {
	Seats     [2]Seat
	Points    int
	TricksWon [][]deck.Card
}

// Has returns true if the seat belongs to this partnership
func (p *Partnership) Has(seat Seat) bool {
	return p.Seats[0] == seat || p.Seats[1] == seat
}

// AddTrick archives a won trick and scores one point
func (p *Partnership) AddTrick(cards []deck.Card) {
	won := make([]deck.Card, len(cards))
	copy(won, cards)
	p.TricksWon = append(p.TricksWon, won)
	p.Points++
}

// Reset clears points and trick history for the next deal
func (p *Partnership) Reset() {
	p.Points = 0
	p.TricksWon = nil
}

// Table wires four players into two partnerships. The partnerships are
// fixed at setup: North-South and East-West.
type Table struct {
	Players      [NumSeats]*Player
	Partnerships [2]*Partnership
}

// NewTable creates a table with four fresh players
func NewTable() *Table {
	t := &Table{}
	for _, seat := range AllSeats {
		t.Players[seat] = NewPlayer(seat)
	}
	t.Partnerships[0] = &Partnership{Seats: [2]Seat{North, South}}
	t.Partnerships[1] = &Partnership{Seats: [2]Seat{East, West}}
	return t
}

// Player returns the player at a seat
func (t *Table) Player(seat Seat) *Player {
	return t.Players[seat]
}

// PartnershipOf returns the partnership a seat belongs to
func (t *Table) PartnershipOf(seat Seat) *Partnership {
	if t.Partnerships[0].Has(seat) {
		return t.Partnerships[0]
	}
	return t.Partnerships[1]
}

// DealHands draws thirteen cards for each seat from the deck. The deck
// must hold a full 52 cards; after dealing it is empty.
func (t *Table) DealHands(d *deck.Deck) error {
	if d.CardsRemaining() < NumSeats*HandSize {
		return ErrShortDeck
	}
	for _, seat := range AllSeats {
		cards, err := d.DrawN(HandSize)
		if err != nil {
			return err
		}
		t.Players[seat].Hand = append(t.Players[seat].Hand[:0], cards...)
	}
	return nil
}

// Reset unconditionally clears all per-deal state. It runs at every
// deal boundary, including after passed-out or faulted deals, so no
// partial state leaks into the next deal.
func (t *Table) Reset() {
	for _, p := range t.Players {
		p.Reset()
	}
	for _, ps := range t.Partnerships {
		ps.Reset()
	}
}
