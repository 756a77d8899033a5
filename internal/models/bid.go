package models

import (
	"strings"
	"time"
)

// Bid is an accepted offer on an auction. Bids are append-only: once placed
// they are never mutated or removed from the auction history.
type Bid struct {
	Bidder   string    `json:"bidder"`
	Amount   Money     `json:"-"`
	PlacedAt time.Time `json:"placed_at"`
}

func NewBid(bidder string, amount Money) (Bid, error) {
	trimmed := strings.TrimSpace(bidder)
	if trimmed == "" {
		return Bid{}, NewEmptyBidderError()
	}
	if !amount.IsPositive() {
		return Bid{}, NewInvalidAmountError("Bid amount must be positive")
	}
	return Bid{
		Bidder:   trimmed,
		Amount:   amount,
		PlacedAt: time.Now().UTC(),
	}, nil
}
