// Package simulator drives multi-deal games: it shuffles and deals,
// runs the auction with the baseline bid policy, plays thirteen
// tricks per contracted deal with the Monte Carlo advisor leading for
// the watched partnership, and aggregates the win rate.
package simulator

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"whist/internal/advisor"
	"whist/internal/bot"
	"whist/internal/deck"
	"whist/internal/game"
	"whist/internal/randutil"
	"whist/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Deals      int
	Iterations int           // advisor samples per candidate lead
	Seed       int64         // master seed; per-deal seeds derive from it
	Timeout    time.Duration // advisor budget per lead; 0 disables
	Watch      game.Seat     // the advisor leads for this seat and its partner
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Simulator runs whist deal simulations.
type Simulator struct {
	config Config
	table  *game.Table
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Iterations <= 0 {
		config.Iterations = advisor.DefaultIterations
	}
	return &Simulator{
		config: config,
		table:  game.NewTable(),
	}
}

// Run executes the configured number of deals and returns aggregate
// statistics. Passed-out deals count toward the total but are
// excluded from the win-rate denominator.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	masterRng := randutil.New(s.config.Seed)

	for i := 0; i < s.config.Deals; i++ {
		dealSeed := masterRng.Int64()
		dealer := game.Seat(i % game.NumSeats)

		result, err := s.playDeal(dealSeed, dealer)
		if err != nil {
			return nil, fmt.Errorf("deal %d (seed %d): %w", i+1, dealSeed, err)
		}
		stats.Add(result)

		if result.PassedOut {
			s.config.Logger.Debug("deal passed out", "deal", i+1, "seed", dealSeed)
		} else {
			s.config.Logger.Info("deal complete",
				"deal", i+1,
				"trump", result.Trump,
				"contract", result.Contract,
				"tricks", result.Tricks,
				"won", result.Won)
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playDeal runs one full deal: auction then play. The table is reset
// unconditionally before each deal, so a faulted or passed-out deal
// leaks nothing into the next one.
func (s *Simulator) playDeal(dealSeed int64, dealer game.Seat) (statistics.DealResult, error) {
	s.table.Reset()
	rng := randutil.New(dealSeed)
	opponent := bot.NewRandBot(rng)

	if err := s.table.DealHands(deck.NewShuffled(rng)); err != nil {
		return statistics.DealResult{}, err
	}
	for _, seat := range game.AllSeats {
		s.table.Player(seat).SortHand()
	}

	outcome, err := s.runAuction(dealer, opponent)
	if err != nil {
		return statistics.DealResult{}, err
	}
	if !outcome.Contracted {
		return statistics.DealResult{Seed: dealSeed, PassedOut: true}, nil
	}

	d, err := game.NewDeal(s.table, outcome)
	if err != nil {
		return statistics.DealResult{}, err
	}

	watched := s.table.PartnershipOf(s.config.Watch)
	timeouts := 0

	for !d.Done() {
		seat := d.Turn()
		legal, _ := d.LegalPlays(seat)

		var card deck.Card
		switch {
		case d.Leading() && watched.Has(seat):
			var timedOut bool
			card, timedOut = s.advisedLead(seat, d, legal, rng)
			if timedOut {
				timeouts++
			}
		case d.Leading():
			card = opponent.ChooseLead(legal)
		default:
			card = opponent.ChooseFollow(legal)
		}

		if _, err := d.Play(seat, card); err != nil {
			return statistics.DealResult{}, err
		}
	}

	return statistics.DealResult{
		Seed:           dealSeed,
		Won:            watched.Points > game.HandSize/2,
		Tricks:         watched.Points,
		Trump:          outcome.Trump,
		Contract:       outcome.Contract,
		DeclarerTricks: s.table.PartnershipOf(outcome.Declarer).Points,
		TimedOut:       timeouts,
	}, nil
}

// runAuction collects bids in turn order until termination
func (s *Simulator) runAuction(dealer game.Seat, policy bot.BidPolicy) (game.Outcome, error) {
	auction := game.NewAuction(dealer)
	for auction.State() == game.Bidding {
		seat := auction.Turn()
		choice := policy.ChooseBid(auction.HighestBid())
		s.table.Player(seat).RecordBid(choice)
		if err := auction.Submit(seat, choice); err != nil {
			return game.Outcome{}, err
		}
	}
	outcome, _ := auction.Outcome()
	return outcome, nil
}

// advisedLead asks the Monte Carlo advisor for a lead under the
// configured budget. If the clock fires first the deal stays live:
// the lead falls back to a uniform random choice.
func (s *Simulator) advisedLead(seat game.Seat, d *game.Deal, legal []deck.Card, rng *rand.Rand) (deck.Card, bool) {
	// Snapshot the live state once. On timeout the deal moves on while
	// the abandoned goroutine is still reading, so it must never share
	// slices with the table.
	hand := append([]deck.Card(nil), s.table.Player(seat).Hand...)
	played := d.CardsPlayed()

	if s.config.Timeout <= 0 {
		card, _, err := advisor.AdviseLead(hand, played, d.Trump(), d.TrumpBroken(), advisor.Options{
			Iterations: s.config.Iterations,
			RNG:        rng,
		})
		if err != nil {
			s.config.Logger.Error("advisor failed, leading at random", "seat", seat, "error", err)
			return legal[rng.IntN(len(legal))], false
		}
		return card, false
	}

	type advice struct {
		card deck.Card
		err  error
	}
	resultCh := make(chan advice, 1)
	timedOut := make(chan struct{})

	// The advisor samples from a fork so the deal's RNG stream stays
	// deterministic even when the result is abandoned on timeout.
	advisorRng := randutil.Fork(rng)
	trump, trumpBroken := d.Trump(), d.TrumpBroken()
	go func() {
		card, _, err := advisor.AdviseLead(hand, played, trump, trumpBroken, advisor.Options{
			Iterations: s.config.Iterations,
			RNG:        advisorRng,
		})
		resultCh <- advice{card: card, err: err}
	}()

	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			s.config.Logger.Error("advisor failed, leading at random", "seat", seat, "error", res.err)
			return legal[rng.IntN(len(legal))], false
		}
		return res.card, false
	case <-timedOut:
		s.config.Logger.Warn("advisor timed out, leading at random",
			"seat", seat, "budget", s.config.Timeout)
		return legal[rng.IntN(len(legal))], true
	}
}
