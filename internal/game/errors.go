package game

import "errors"

var (
	// ErrInvalidBid reports a bid outside the legal-bid set. Callers
	// that only submit from bid.LegalBids never see it; surfacing it
	// means the caller is broken, not the game.
	ErrInvalidBid = errors.New("game: bid is neither pass nor a raise of the highest bid")

	// ErrAuctionOver reports a submission after the auction terminated
	ErrAuctionOver = errors.New("game: auction has ended")

	// ErrOutOfTurn reports an action by a seat that is not to act
	ErrOutOfTurn = errors.New("game: not this seat's turn")

	// ErrNotInHand reports playing a card the seat does not hold
	ErrNotInHand = errors.New("game: card not in hand")

	// ErrIllegalCard reports a play violating the lead or follow rules
	ErrIllegalCard = errors.New("game: card is not a legal play")

	// ErrDealOver reports a play after all thirteen tricks resolved
	ErrDealOver = errors.New("game: deal has ended")

	// ErrShortDeck reports dealing from a deck with fewer than 52 cards
	ErrShortDeck = errors.New("game: deck does not hold a full deal")
)
