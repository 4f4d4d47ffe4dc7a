// Package advisor chooses a lead card by Monte Carlo simulation:
// the unseen cards are repeatedly dealt into three hypothetical
// opponent hands, each opponent follows at random under the trick
// rules, and every candidate lead is scored by how often it wins the
// simulated trick.
package advisor

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"whist/internal/bid"
	"whist/internal/deck"
	"whist/internal/game"
	"whist/internal/randutil"
)

const (
	// DefaultIterations is the sample count per candidate when the
	// caller does not specify one.
	DefaultIterations = 100

	// parallelThreshold is the per-candidate sample count above which
	// fanning out workers is worth the overhead.
	parallelThreshold = 500

	// parallelWorkers is fixed rather than derived from the CPU count
	// so a seed produces the same fork sequence, and so the same
	// tallies, on any machine.
	parallelWorkers = 8

	opponents = game.NumSeats - 1
)

// ErrNoCards is returned when advising with an empty hand.
var ErrNoCards = errors.New("advisor: no cards to lead")

// Candidate is one legal lead and its simulated win tally.
type Candidate struct {
	Card    deck.Card
	Wins    int
	Samples int
}

// Options configures a lead advice request.
type Options struct {
	// Iterations is the number of samples per candidate
	// (DefaultIterations when zero).
	Iterations int

	// RNG drives all sampling. Required: the advisor never seeds
	// itself, so results reproduce under a fixed seed.
	RNG *rand.Rand

	// Sequential forces the single-goroutine path regardless of the
	// iteration count.
	Sequential bool
}

// Scratch buffers for per-iteration pool shuffles; one per live
// worker, reused across iterations.
var poolScratch = sync.Pool{
	New: func() interface{} {
		s := make([]deck.Card, 0, 52)
		return &s
	},
}

// AdviseLead scores every legal lead for the hand and returns the
// best, together with the full tally. The hand, the played cards and
// every other piece of real game state are read-only snapshots: the
// simulation deals disposable hypothetical hands and discards them.
// Ties break to the first candidate in hand order, so the choice is
// deterministic for a fixed RNG.
func AdviseLead(hand []deck.Card, played []deck.Card, trump bid.Strain, trumpBroken bool, opts Options) (deck.Card, []Candidate, error) {
	if len(hand) == 0 {
		return deck.Card{}, nil, ErrNoCards
	}
	if opts.RNG == nil {
		return deck.Card{}, nil, errors.New("advisor: options require an RNG")
	}
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	inHand := deck.NewCardSet(hand)
	for _, c := range played {
		if inHand.Contains(c) {
			return deck.Card{}, nil, fmt.Errorf("advisor: %s is both in hand and already played", c)
		}
	}

	// The forced-trump fallback is already folded into the candidate
	// set; a hand of pure trumps simply scores its trumps.
	candidates, _ := game.LegalLeadCards(hand, trump, trumpBroken)

	pool := unseenPool(hand, played)

	results := make([]Candidate, len(candidates))
	for i, card := range candidates {
		var wins int
		if !opts.Sequential && iterations >= parallelThreshold {
			wins = simulateParallel(card, pool, trump, iterations, opts.RNG)
		} else {
			wins = simulate(card, pool, trump, iterations, opts.RNG)
		}
		results[i] = Candidate{Card: card, Wins: wins, Samples: iterations}
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Wins > results[best].Wins {
			best = i
		}
	}
	return results[best].Card, results, nil
}

// unseenPool returns every card not in the leader's hand and not yet
// played this deal.
func unseenPool(hand []deck.Card, played []deck.Card) []deck.Card {
	seen := deck.NewCardSet(hand)
	for _, c := range played {
		seen.Add(c)
	}

	pool := make([]deck.Card, 0, 52)
	for _, suit := range deck.Suits {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.Card{Suit: suit, Rank: rank}
			if !seen.Contains(c) {
				pool = append(pool, c)
			}
		}
	}
	return pool
}

// simulate runs the per-candidate sample loop on one goroutine.
func simulate(lead deck.Card, pool []deck.Card, trump bid.Strain, iterations int, rng *rand.Rand) int {
	scratchPtr := poolScratch.Get().(*[]deck.Card)
	scratch := (*scratchPtr)[:0]
	defer func() {
		*scratchPtr = scratch
		poolScratch.Put(scratchPtr)
	}()

	handSize := len(pool) / opponents
	if handSize == 0 {
		// Nothing unseen to deal out: the lead stands unopposed.
		return iterations
	}
	trick := make([]deck.Card, 0, game.NumSeats)

	wins := 0
	for i := 0; i < iterations; i++ {
		// Fresh disjoint partition of the unseen pool. Shuffling a
		// scratch copy and slicing thirds samples without replacement;
		// remainder cards sit beyond the last segment and are unused
		// this sample.
		scratch = append(scratch[:0], pool...)
		rng.Shuffle(len(scratch), func(a, b int) {
			scratch[a], scratch[b] = scratch[b], scratch[a]
		})

		trick = append(trick[:0], lead)
		for opp := 0; opp < opponents; opp++ {
			segment := scratch[opp*handSize : (opp+1)*handSize]
			trick = append(trick, followRandom(segment, lead.Suit, rng))
		}

		if game.ResolveTrick(trick, lead.Suit, trump) == 0 {
			wins++
		}
	}
	return wins
}

// followRandom plays one uniformly random card from a hypothetical
// hand's legal follow subset.
func followRandom(hand []deck.Card, led deck.Suit, rng *rand.Rand) deck.Card {
	legal := game.LegalFollowCards(hand, led)
	return legal[rng.IntN(len(legal))]
}

// simulateParallel fans the sample loop out over workers, each with a
// forked RNG so there is no shared state beyond the merged tallies.
func simulateParallel(lead deck.Card, pool []deck.Card, trump bid.Strain, iterations int, rng *rand.Rand) int {
	workers := parallelWorkers
	perWorker := iterations / workers
	remainder := iterations % workers

	var g errgroup.Group
	tallies := make([]int, workers)
	for w := 0; w < workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		workerRng := randutil.Fork(rng)
		w := w
		g.Go(func() error {
			tallies[w] = simulate(lead, pool, trump, samples, workerRng)
			return nil
		})
	}
	// Workers never fail; Wait only synchronises the tallies.
	_ = g.Wait()

	wins := 0
	for _, t := range tallies {
		wins += t
	}
	return wins
}
