package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whist/internal/deck"
)

func TestBidOrdering(t *testing.T) {
	// 1C < 1NT < 2C, and Pass below everything
	assert.True(t, MustBid(1, Clubs).Less(MustBid(1, NoTrump)))
	assert.True(t, MustBid(1, NoTrump).Less(MustBid(2, Clubs)))
	assert.True(t, Pass.Less(MustBid(1, Clubs)))
	assert.Equal(t, 0, Pass.Compare(Pass))

	// Strain order within a level
	assert.True(t, MustBid(3, Clubs).Less(MustBid(3, Diamonds)))
	assert.True(t, MustBid(3, Diamonds).Less(MustBid(3, Hearts)))
	assert.True(t, MustBid(3, Hearts).Less(MustBid(3, Spades)))
	assert.True(t, MustBid(3, Spades).Less(MustBid(3, NoTrump)))
}

func TestBidOrderingIsStrict(t *testing.T) {
	// Exactly one of a<b, b<a for any distinct pair
	all := []Bid{Pass}
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, strain := range Strains {
			all = append(all, MustBid(level, strain))
		}
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				assert.False(t, a.Less(b), "%s < %s", a, b)
				continue
			}
			assert.NotEqual(t, a.Less(b), b.Less(a), "order of %s vs %s not strict", a, b)
		}
	}
}

func TestNewBidNormalization(t *testing.T) {
	// Level 0 with any strain normalizes to Pass
	b, err := New(0, Hearts)
	require.NoError(t, err)
	assert.Equal(t, Pass, b)
	assert.True(t, b.IsPass())

	// Non-zero level with the pass strain is rejected
	_, err = New(3, PassStrain)
	assert.Error(t, err)

	// Out-of-range levels and strains are rejected
	_, err = New(7, Clubs)
	assert.Error(t, err)
	_, err = New(-1, Clubs)
	assert.Error(t, err)
	_, err = New(2, Strain(9))
	assert.Error(t, err)
}

func TestLegalBids(t *testing.T) {
	legal := LegalBids(MustBid(3, Hearts))

	set := map[Bid]bool{}
	for _, b := range legal {
		set[b] = true
	}

	assert.True(t, set[Pass])
	assert.True(t, set[MustBid(3, Spades)])
	assert.True(t, set[MustBid(3, NoTrump)])
	assert.True(t, set[MustBid(4, Clubs)])

	assert.False(t, set[MustBid(3, Hearts)], "current high bid is not a raise")
	assert.False(t, set[MustBid(3, Diamonds)])
	assert.False(t, set[MustBid(2, Spades)])
	assert.False(t, set[MustBid(1, NoTrump)])
}

func TestLegalBidsFromPass(t *testing.T) {
	// Opening position: Pass plus all 30 raises
	legal := LegalBids(Pass)
	assert.Len(t, legal, 31)
	assert.Equal(t, Pass, legal[0])
}

func TestTricksToWin(t *testing.T) {
	assert.Equal(t, 7, MustBid(1, Clubs).TricksToWin())
	assert.Equal(t, 12, MustBid(6, NoTrump).TricksToWin())
}

func TestStrainSuit(t *testing.T) {
	suit, ok := Hearts.Suit()
	require.True(t, ok)
	assert.Equal(t, deck.Hearts, suit)

	_, ok = NoTrump.Suit()
	assert.False(t, ok, "no card can match notrump")
	_, ok = PassStrain.Suit()
	assert.False(t, ok)

	assert.Equal(t, Spades, StrainOf(deck.Spades))
}

func TestParseStrain(t *testing.T) {
	for in, want := range map[string]Strain{
		"c": Clubs, "D": Diamonds, "h": Hearts, "S": Spades, "nt": NoTrump,
	} {
		got, err := ParseStrain(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStrain("x")
	assert.Error(t, err)
}
