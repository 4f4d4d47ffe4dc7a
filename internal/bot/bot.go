// Package bot provides the pluggable decision policies the simulator
// feeds into the auction and trick play, keeping the game engine
// policy-agnostic.
package bot

import (
	"whist/internal/bid"
	"whist/internal/deck"
)

// BidPolicy chooses an auction bid given the current highest bid.
// Implementations must return Pass or a strict raise.
type BidPolicy interface {
	ChooseBid(highest bid.Bid) bid.Bid
}

// LeadPolicy chooses the card to lead a trick from the legal lead set.
type LeadPolicy interface {
	ChooseLead(legal []deck.Card) deck.Card
}

// FollowPolicy chooses the card a defender plays from the legal
// follow set.
type FollowPolicy interface {
	ChooseFollow(legal []deck.Card) deck.Card
}
