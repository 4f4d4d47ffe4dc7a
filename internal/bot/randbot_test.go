package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"whist/internal/bid"
	"whist/internal/deck"
	"whist/internal/randutil"
)

func TestRandBotBidsAreAlwaysLegal(t *testing.T) {
	b := NewRandBot(randutil.New(42))

	highs := []bid.Bid{
		bid.Pass,
		bid.MustBid(1, bid.Clubs),
		bid.MustBid(3, bid.Hearts),
		bid.MustBid(6, bid.NoTrump),
	}
	for _, highest := range highs {
		for i := 0; i < 500; i++ {
			choice := b.ChooseBid(highest)
			if choice.IsPass() {
				continue
			}
			assert.True(t, highest.Less(choice),
				"bid %s is not a raise of %s", choice, highest)
		}
	}
}

func TestRandBotBidsPassAndRaise(t *testing.T) {
	// Over many draws against an open auction the bot should both
	// pass and raise at least once.
	b := NewRandBot(randutil.New(7))
	passes, raises := 0, 0
	for i := 0; i < 1000; i++ {
		if b.ChooseBid(bid.Pass).IsPass() {
			passes++
		} else {
			raises++
		}
	}
	assert.Greater(t, passes, 0)
	assert.Greater(t, raises, 0)
}

func TestRandBotCardChoicesStayLegal(t *testing.T) {
	b := NewRandBot(randutil.New(3))
	legal := []deck.Card{
		{Suit: deck.Clubs, Rank: deck.Two},
		{Suit: deck.Clubs, Rank: deck.Ace},
	}

	for i := 0; i < 100; i++ {
		set := deck.NewCardSet(legal)
		assert.True(t, set.Contains(b.ChooseLead(legal)))
		assert.True(t, set.Contains(b.ChooseFollow(legal)))
	}
}

func TestClosestInt(t *testing.T) {
	assert.Equal(t, 0, closestInt(0.3, 0, 6))
	assert.Equal(t, 1, closestInt(0.9, 0, 6))
	assert.Equal(t, 6, closestInt(12.0, 0, 6))
	assert.Equal(t, 2, closestInt(2.4, 0, 4))
}
