package bot

import (
	"math"
	rand "math/rand/v2"

	"whist/internal/bid"
	"whist/internal/deck"
)

// RandBot is the baseline opponent. Its auction bids draw the level
// from an exponential distribution and the strain from a beta(2,2)
// distribution, so low levels and middle strains dominate; card play
// is uniform over the legal set.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a RandBot driven by the given RNG
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

// ChooseBid proposes a bid from the level/strain distributions and
// passes whenever the proposal is not a legal raise.
func (r *RandBot) ChooseBid(highest bid.Bid) bid.Bid {
	level := closestInt(r.rng.ExpFloat64(), 0, bid.MaxLevel)
	strainIdx := closestInt(r.beta22()*4, 0, 4)
	strain := bid.Strains[strainIdx]

	proposal, err := bid.New(level, strain)
	if err != nil || proposal.IsPass() {
		return bid.Pass
	}
	if !highest.Less(proposal) {
		return bid.Pass
	}
	return proposal
}

// ChooseLead plays a uniformly random legal lead
func (r *RandBot) ChooseLead(legal []deck.Card) deck.Card {
	return legal[r.rng.IntN(len(legal))]
}

// ChooseFollow plays a uniformly random legal follow
func (r *RandBot) ChooseFollow(legal []deck.Card) deck.Card {
	return legal[r.rng.IntN(len(legal))]
}

// beta22 samples Beta(2,2) as g1/(g1+g2) with Gamma(2,1) variates
func (r *RandBot) beta22() float64 {
	g1 := -math.Log(r.uniform() * r.uniform())
	g2 := -math.Log(r.uniform() * r.uniform())
	return g1 / (g1 + g2)
}

// uniform returns a variate in (0,1), never exactly zero
func (r *RandBot) uniform() float64 {
	for {
		if u := r.rng.Float64(); u > 0 {
			return u
		}
	}
}

// closestInt returns the integer in [lo,hi] nearest to x
func closestInt(x float64, lo, hi int) int {
	best := lo
	bestDist := math.Abs(x - float64(lo))
	for i := lo + 1; i <= hi; i++ {
		if d := math.Abs(x - float64(i)); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
