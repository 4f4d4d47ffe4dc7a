// Package bid models auction bids for the contract game: a level from
// 1 to 6 paired with a strain (a suit or notrump), plus the Pass
// sentinel, under a strict total order.
package bid

import (
	"fmt"
	"strings"

	"whist/internal/deck"
)

// Strain is the suit named in a bid. Unlike deck.Suit it includes the
// NoTrump strain and the Pass sentinel; Pass never names a trump and
// exists only so the Pass bid has a well-defined strain value.
type Strain int

const (
	PassStrain Strain = iota
	Clubs
	Diamonds
	Hearts
	Spades
	NoTrump
)

// Strains lists the five biddable strains in ascending order.
var Strains = [5]Strain{Clubs, Diamonds, Hearts, Spades, NoTrump}

// String returns the string representation of a strain
func (s Strain) String() string {
	switch s {
	case PassStrain:
		return "Pass"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case NoTrump:
		return "NT"
	default:
		return "?"
	}
}

// Suit returns the deck suit a strain denotes. The second return is
// false for NoTrump and PassStrain, which no card can match.
func (s Strain) Suit() (deck.Suit, bool) {
	switch s {
	case Clubs:
		return deck.Clubs, true
	case Diamonds:
		return deck.Diamonds, true
	case Hearts:
		return deck.Hearts, true
	case Spades:
		return deck.Spades, true
	default:
		return 0, false
	}
}

// IsSuit returns true if the strain denotes one of the four real suits
func (s Strain) IsSuit() bool {
	_, ok := s.Suit()
	return ok
}

// StrainOf converts a deck suit to its strain
func StrainOf(suit deck.Suit) Strain {
	switch suit {
	case deck.Clubs:
		return Clubs
	case deck.Diamonds:
		return Diamonds
	case deck.Hearts:
		return Hearts
	case deck.Spades:
		return Spades
	default:
		return PassStrain
	}
}

// ParseStrain parses a strain from text: C, D, H, S or NT
func ParseStrain(s string) (Strain, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C", "CLUBS":
		return Clubs, nil
	case "D", "DIAMONDS":
		return Diamonds, nil
	case "H", "HEARTS":
		return Hearts, nil
	case "S", "SPADES":
		return Spades, nil
	case "NT", "N", "NOTRUMP":
		return NoTrump, nil
	default:
		return PassStrain, fmt.Errorf("invalid strain %q: want C, D, H, S or NT", s)
	}
}

// MinLevel and MaxLevel bound bid levels. Level+6 is the trick target,
// so level 6 contracts for only twelve of the thirteen tricks.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Bid is a level/strain pair. The zero value is Pass.
type Bid struct {
	Level  int
	Strain Strain
}

// Pass is the sentinel bid: level 0, strain PassStrain.
var Pass = Bid{}

// New creates a bid, enforcing the Pass invariant: level 0 always pairs
// with PassStrain (a level-0 bid with a real strain is normalized to
// Pass), and a non-zero level with PassStrain is rejected.
func New(level int, strain Strain) (Bid, error) {
	if level == 0 {
		return Pass, nil
	}
	if strain == PassStrain {
		return Bid{}, fmt.Errorf("bid level %d cannot carry the pass strain", level)
	}
	if level < MinLevel || level > MaxLevel {
		return Bid{}, fmt.Errorf("bid level %d out of range %d-%d", level, MinLevel, MaxLevel)
	}
	if strain < Clubs || strain > NoTrump {
		return Bid{}, fmt.Errorf("invalid bid strain %d", strain)
	}
	return Bid{Level: level, Strain: strain}, nil
}

// MustBid is New for static bids in tests and tables; it panics on error
func MustBid(level int, strain Strain) Bid {
	b, err := New(level, strain)
	if err != nil {
		panic(err)
	}
	return b
}

// IsPass returns true for the Pass sentinel
func (b Bid) IsPass() bool {
	return b.Level == 0
}

// Compare returns -1, 0 or 1 ordering b against other: level first,
// then strain. Pass sorts below every non-pass bid.
func (b Bid) Compare(other Bid) int {
	if b.Level != other.Level {
		if b.Level < other.Level {
			return -1
		}
		return 1
	}
	if b.Strain != other.Strain {
		if b.Strain < other.Strain {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns true if b sorts strictly below other
func (b Bid) Less(other Bid) bool {
	return b.Compare(other) < 0
}

// TricksToWin returns the number of tricks the contract requires,
// the book of six plus the bid level
func (b Bid) TricksToWin() int {
	return b.Level + 6
}

// String returns the string representation of a bid (e.g. "3♥")
func (b Bid) String() string {
	if b.IsPass() {
		return "Pass"
	}
	return fmt.Sprintf("%d%s", b.Level, b.Strain)
}

// LegalBids returns the valid submissions given the current highest
// bid: Pass plus every bid strictly greater under the total order.
func LegalBids(highest Bid) []Bid {
	bids := make([]Bid, 0, 32)
	bids = append(bids, Pass)
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, strain := range Strains {
			b := Bid{Level: level, Strain: strain}
			if highest.Less(b) {
				bids = append(bids, b)
			}
		}
	}
	return bids
}
