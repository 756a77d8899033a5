package models

import (
	"strings"
	"sync"
	"time"
)

// Auction is the single-item English auction state machine for one vehicle.
// It has exactly two states: active (endTime unset) and closed. Closing is
// one-way. Bids must strictly exceed the current highest bid in the same
// currency; equal amounts are rejected so that two racing bidders can never
// both be declared the winner.
//
// All mutations and reads go through the embedded mutex, so concurrent bids
// against the same auction are serialized and the increasing-bid check is
// atomic with the update it guards.
type Auction struct {
	mu sync.Mutex

	vehicleID            VehicleID
	startTime            time.Time
	endTime              *time.Time
	currentHighestBid    Money
	currentHighestBidder string
	bids                 []Bid
}

// AuctionSummary is an immutable projection of an auction's current state.
type AuctionSummary struct {
	VehicleID            VehicleID
	StartTime            time.Time
	EndTime              *time.Time
	CurrentHighestBid    Money
	CurrentHighestBidder string
	TotalBids            int
	IsActive             bool
}

// NewAuction opens an auction seeded with the vehicle's starting bid. The
// starting bid is the floor, not a bid of its own.
func NewAuction(vehicleID VehicleID, startingBid Money) *Auction {
	return &Auction{
		vehicleID:         vehicleID,
		startTime:         time.Now().UTC(),
		currentHighestBid: startingBid,
	}
}

func (a *Auction) VehicleID() VehicleID {
	return a.vehicleID
}

func (a *Auction) StartTime() time.Time {
	return a.startTime
}

// EndTime returns the close timestamp, or nil while the auction is active.
func (a *Auction) EndTime() *time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.endTime == nil {
		return nil
	}
	t := *a.endTime
	return &t
}

func (a *Auction) CurrentHighestBid() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentHighestBid
}

func (a *Auction) CurrentHighestBidder() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentHighestBidder
}

// Bids returns a copy of the bid history in chronological order.
func (a *Auction) Bids() []Bid {
	a.mu.Lock()
	defer a.mu.Unlock()
	bids := make([]Bid, len(a.bids))
	copy(bids, a.bids)
	return bids
}

func (a *Auction) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.endTime == nil
}

// PlaceBid validates and applies a bid. On any failure the auction state is
// untouched: a rejected bid never reaches the history.
func (a *Auction) PlaceBid(bidder string, amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if strings.TrimSpace(bidder) == "" {
		return NewEmptyBidderError()
	}
	if a.endTime != nil {
		return NewAuctionClosedError()
	}
	if amount.Currency() != a.currentHighestBid.Currency() {
		return NewCurrencyMismatchError("compare", amount.Currency(), a.currentHighestBid.Currency())
	}
	higher, err := amount.GreaterThan(a.currentHighestBid)
	if err != nil {
		return err
	}
	if !higher {
		return NewBidTooLowError(amount.String(), a.currentHighestBid.String())
	}

	bid, err := NewBid(bidder, amount)
	if err != nil {
		return err
	}
	a.bids = append(a.bids, bid)
	a.currentHighestBid = amount
	a.currentHighestBidder = bid.Bidder
	return nil
}

// Close ends the auction. It fails if the auction is already closed and can
// never be undone.
func (a *Auction) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.endTime != nil {
		return NewAuctionAlreadyClosedError()
	}
	now := time.Now().UTC()
	a.endTime = &now
	return nil
}

// GetSummary snapshots the auction without mutating it. Valid in both states.
func (a *Auction) GetSummary() AuctionSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	var endTime *time.Time
	if a.endTime != nil {
		t := *a.endTime
		endTime = &t
	}
	return AuctionSummary{
		VehicleID:            a.vehicleID,
		StartTime:            a.startTime,
		EndTime:              endTime,
		CurrentHighestBid:    a.currentHighestBid,
		CurrentHighestBidder: a.currentHighestBidder,
		TotalBids:            len(a.bids),
		IsActive:             a.endTime == nil,
	}
}
