// Package statistics aggregates per-deal results into the win-rate
// report. Passed-out deals are recorded but excluded from the
// denominator: they produced no contract, so they are void rather
// than lost.
package statistics

import (
	"fmt"
	"math"

	"whist/internal/bid"
)

// DealResult is the outcome of one simulated deal.
type DealResult struct {
	Seed      int64 // per-deal RNG seed, for replay
	PassedOut bool
	Won       bool // watched partnership took the majority of tricks
	Tricks    int  // tricks won by the watched partnership
	Trump     bid.Strain
	Contract  bid.Bid
	// DeclarerTricks is the trick count of the partnership that holds
	// the declarer, which may be either side of the table.
	DeclarerTricks int
	TimedOut       int // advisor decisions that fell back to a random lead
}

// Statistics accumulates deal results.
type Statistics struct {
	Deals     int // every deal, passed-out included
	Played    int // deals that reached the play phase
	Wins      int
	PassedOut int

	TricksSum  int
	TricksSum2 int // sum of squares for variance

	ContractsMade int // deals where the contract's trick target was met
	Timeouts      int
}

// Add records one deal result
func (s *Statistics) Add(result DealResult) {
	s.Deals++
	if result.PassedOut {
		s.PassedOut++
		return
	}
	s.Played++
	if result.Won {
		s.Wins++
	}
	s.TricksSum += result.Tricks
	s.TricksSum2 += result.Tricks * result.Tricks
	s.Timeouts += result.TimedOut
	if result.DeclarerTricks >= result.Contract.TricksToWin() {
		s.ContractsMade++
	}
}

// WinRate returns the fraction of played deals won
func (s *Statistics) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
}

// MeanTricks returns the average tricks won per played deal
func (s *Statistics) MeanTricks() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.TricksSum) / float64(s.Played)
}

// TricksStdDev returns the sample standard deviation of tricks won
func (s *Statistics) TricksStdDev() float64 {
	if s.Played < 2 {
		return 0
	}
	mean := s.MeanTricks()
	variance := (float64(s.TricksSum2) - float64(s.Played)*mean*mean) / float64(s.Played-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// ConfidenceInterval95 returns the normal-approximation 95% interval
// for the win rate, clamped to [0,1]
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	if s.Played == 0 {
		return 0, 0
	}
	p := s.WinRate()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Played))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Validate checks internal consistency before reporting
func (s *Statistics) Validate() error {
	if s.Played+s.PassedOut != s.Deals {
		return fmt.Errorf("deal ledger unbalanced: %d played + %d passed out != %d deals",
			s.Played, s.PassedOut, s.Deals)
	}
	if s.Wins > s.Played {
		return fmt.Errorf("more wins (%d) than played deals (%d)", s.Wins, s.Played)
	}
	if s.ContractsMade > s.Played {
		return fmt.Errorf("more contracts made (%d) than played deals (%d)", s.ContractsMade, s.Played)
	}
	return nil
}
