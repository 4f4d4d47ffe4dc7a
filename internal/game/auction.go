package game

import (
	"whist/internal/bid"
)

// AuctionState is the phase of the auction state machine.
type AuctionState int

const (
	Bidding AuctionState = iota
	Contracted
	PassedOut
)

// String returns the string representation of an auction state
func (s AuctionState) String() string {
	switch s {
	case Bidding:
		return "Bidding"
	case Contracted:
		return "Contracted"
	case PassedOut:
		return "PassedOut"
	default:
		return "Unknown"
	}
}

// SubmittedBid is one auction history entry: a bid tagged with the
// seat that made it.
type SubmittedBid struct {
	Seat Seat
	Bid  bid.Bid
}

// Outcome is the result of a terminated auction. When Contracted is
// false the deal was passed out: no declarer, no trump, and the deal
// is void rather than scored.
type Outcome struct {
	Contracted bool
	Declarer   Seat
	Contract   bid.Bid
	Trump      bid.Strain
}

// Auction consumes bids in turn order, enforcing that each submission
// is Pass or a strict raise, and terminates once the trailing three
// entries of the history are all Pass.
type Auction struct {
	state    AuctionState
	turn     Seat
	highest  bid.Bid
	declarer Seat
	history  []SubmittedBid
}

// NewAuction starts an auction with the given seat to act first
func NewAuction(first Seat) *Auction {
	return &Auction{
		state: Bidding,
		turn:  first,
	}
}

// State returns the current auction state
func (a *Auction) State() AuctionState {
	return a.state
}

// Turn returns the seat to act; meaningless once the auction ended
func (a *Auction) Turn() Seat {
	return a.turn
}

// HighestBid returns the highest bid seen so far (Pass if none)
func (a *Auction) HighestBid() bid.Bid {
	return a.highest
}

// History returns the submitted bids in order
func (a *Auction) History() []SubmittedBid {
	return a.history
}

// LegalBids returns the valid submissions for the seat to act
func (a *Auction) LegalBids() []bid.Bid {
	return bid.LegalBids(a.highest)
}

// Submit records one bid for the acting seat. The bid must be Pass or
// strictly greater than the highest bid so far; anything else is
// ErrInvalidBid, a caller bug rather than a game event.
func (a *Auction) Submit(seat Seat, b bid.Bid) error {
	if a.state != Bidding {
		return ErrAuctionOver
	}
	if seat != a.turn {
		return ErrOutOfTurn
	}
	if !b.IsPass() && !a.highest.Less(b) {
		return ErrInvalidBid
	}

	a.history = append(a.history, SubmittedBid{Seat: seat, Bid: b})
	if !b.IsPass() {
		a.highest = b
		a.declarer = seat
	}
	a.turn = a.turn.Next()

	a.checkTermination()
	return nil
}

// checkTermination ends the auction when the last three history
// entries are all Pass. The window never fires before three bids
// exist, and an all-Pass opening round terminates on its fourth entry
// because entries 1-3 are Pass.
func (a *Auction) checkTermination() {
	if len(a.history) < 3 {
		return
	}
	for _, sb := range a.history[len(a.history)-3:] {
		if !sb.Bid.IsPass() {
			return
		}
	}
	if a.highest.IsPass() {
		a.state = PassedOut
		return
	}
	a.state = Contracted
}

// Outcome returns the auction result. The second return is false
// while bidding is still in progress.
func (a *Auction) Outcome() (Outcome, bool) {
	switch a.state {
	case Contracted:
		return Outcome{
			Contracted: true,
			Declarer:   a.declarer,
			Contract:   a.highest,
			Trump:      a.highest.Strain,
		}, true
	case PassedOut:
		return Outcome{Contracted: false}, true
	default:
		return Outcome{}, false
	}
}
