package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whist/internal/bid"
	"whist/internal/deck"
	"whist/internal/randutil"
)

func TestSeatArithmetic(t *testing.T) {
	assert.Equal(t, East, North.Next())
	assert.Equal(t, North, West.Next())
	assert.Equal(t, West, North.Prev())
	assert.Equal(t, South, North.Partner())
	assert.Equal(t, West, East.Partner())

	// Following Next four times returns to the start
	seat := South
	for i := 0; i < NumSeats; i++ {
		seat = seat.Next()
	}
	assert.Equal(t, South, seat)
}

func TestPartnershipsAreOppositeSeats(t *testing.T) {
	table := NewTable()
	for _, seat := range AllSeats {
		ps := table.PartnershipOf(seat)
		assert.True(t, ps.Has(seat.Partner()), "%s should partner %s", seat, seat.Partner())
		assert.False(t, ps.Has(seat.Next()))
		assert.False(t, ps.Has(seat.Prev()))
	}
}

func TestDealHands(t *testing.T) {
	table := NewTable()
	d := deck.NewShuffled(randutil.New(1))

	require.NoError(t, table.DealHands(d))
	assert.True(t, d.IsEmpty(), "deck should be empty after dealing 4x13")

	// All 52 cards across four hands with no overlaps
	var seen deck.CardSet
	total := 0
	for _, seat := range AllSeats {
		hand := table.Player(seat).Hand
		require.Len(t, hand, HandSize)
		for _, c := range hand {
			assert.False(t, seen.Contains(c), "card %s dealt twice", c)
			seen.Add(c)
			total++
		}
	}
	assert.Equal(t, 52, total)
}

func TestDealHandsShortDeck(t *testing.T) {
	table := NewTable()
	d := deck.New(randutil.New(1))
	_, err := d.Draw()
	require.NoError(t, err)

	assert.ErrorIs(t, table.DealHands(d), ErrShortDeck)
}

func TestPlayerHandQueries(t *testing.T) {
	p := NewPlayer(North)
	p.Hand = []deck.Card{
		card(deck.Clubs, deck.Two),
		card(deck.Clubs, deck.Ace),
		card(deck.Hearts, deck.King),
	}

	assert.Len(t, p.CardsOfSuit(deck.Clubs), 2)
	assert.Empty(t, p.CardsOfSuit(deck.Spades))
	assert.True(t, p.IsVoid(), "missing spades and diamonds")
	held := p.SuitsHeld()
	assert.True(t, held[deck.Clubs])
	assert.False(t, held[deck.Diamonds])
}

func TestPlayerPlayRemovesCard(t *testing.T) {
	p := NewPlayer(North)
	p.Hand = []deck.Card{card(deck.Clubs, deck.Two), card(deck.Hearts, deck.King)}

	played, err := p.Play(card(deck.Clubs, deck.Two))
	require.NoError(t, err)
	assert.Equal(t, card(deck.Clubs, deck.Two), played)
	assert.Len(t, p.Hand, 1)
	assert.False(t, p.HasCard(card(deck.Clubs, deck.Two)))

	_, err = p.Play(card(deck.Clubs, deck.Two))
	assert.ErrorIs(t, err, ErrNotInHand)
}

func TestResetIdempotence(t *testing.T) {
	table := NewTable()
	d := deck.NewShuffled(randutil.New(3))
	require.NoError(t, table.DealHands(d))

	table.Player(North).RecordBid(bid.MustBid(2, bid.Hearts))
	table.Partnerships[0].AddTrick([]deck.Card{card(deck.Clubs, deck.Two)})

	table.Reset()

	fresh := NewTable()
	for _, seat := range AllSeats {
		got, want := table.Player(seat), fresh.Player(seat)
		assert.Empty(t, got.Hand)
		assert.Empty(t, got.BidHistory)
		assert.Equal(t, want.CurrentBid, got.CurrentBid)
	}
	for i := range table.Partnerships {
		assert.Zero(t, table.Partnerships[i].Points)
		assert.Empty(t, table.Partnerships[i].TricksWon)
	}

	// Resetting a fresh table is a no-op
	fresh.Reset()
	assert.Empty(t, fresh.Player(North).Hand)
	assert.Zero(t, fresh.Partnerships[0].Points)
}
