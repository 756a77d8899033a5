package models

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuction(t *testing.T, startingBid float64, currency string) *Auction {
	t.Helper()
	id, err := NewVehicleID("001")
	require.NoError(t, err)
	bid, err := NewMoneyFromFloat(startingBid, currency)
	require.NoError(t, err)
	return NewAuction(id, bid)
}

func TestNewAuction(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")

	assert.True(t, auction.IsActive())
	assert.Nil(t, auction.EndTime())
	assert.Equal(t, "1000.00 USD", auction.CurrentHighestBid().String())
	assert.Empty(t, auction.CurrentHighestBidder())
	assert.Empty(t, auction.Bids())
}

func TestAuctionBidding(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")

	// bid above the starting bid is accepted
	amount, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	require.NoError(t, auction.PlaceBid("alice", amount))
	assert.Equal(t, "alice", auction.CurrentHighestBidder())
	assert.Equal(t, "1200.00 USD", auction.CurrentHighestBid().String())

	// a tie with the current highest is rejected
	tie, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	err = auction.PlaceBid("bob", tie)
	require.Error(t, err)
	assert.Equal(t, ErrCodeBidTooLow, ErrorCode(err))
	assert.Contains(t, err.Error(), "1200.00 USD")

	// a lower bid is rejected
	low, err := NewMoneyFromFloat(1100, "USD")
	require.NoError(t, err)
	err = auction.PlaceBid("bob", low)
	require.Error(t, err)
	assert.Equal(t, ErrCodeBidTooLow, ErrorCode(err))

	// the wrong currency never reaches the amount comparison
	eur, err := NewMoneyFromFloat(1100, "EUR")
	require.NoError(t, err)
	err = auction.PlaceBid("bob", eur)
	require.Error(t, err)
	assert.Equal(t, ErrCodeCurrencyMismatch, ErrorCode(err))

	// rejected bids left no trace
	assert.Len(t, auction.Bids(), 1)
	assert.Equal(t, "alice", auction.CurrentHighestBidder())
}

func TestAuctionEmptyBidder(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")
	amount, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)

	err = auction.PlaceBid("   ", amount)
	require.Error(t, err)
	assert.Equal(t, ErrCodeEmptyBidder, ErrorCode(err))
	assert.Empty(t, auction.Bids())
}

func TestAuctionClose(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")
	amount, err := NewMoneyFromFloat(1200, "USD")
	require.NoError(t, err)
	require.NoError(t, auction.PlaceBid("alice", amount))

	require.NoError(t, auction.Close())
	assert.False(t, auction.IsActive())
	require.NotNil(t, auction.EndTime())

	summary := auction.GetSummary()
	assert.False(t, summary.IsActive)
	assert.Equal(t, 1, summary.TotalBids)
	assert.Equal(t, "alice", summary.CurrentHighestBidder)
	assert.Equal(t, "1200.00 USD", summary.CurrentHighestBid.String())

	// closing twice fails
	err = auction.Close()
	require.Error(t, err)
	assert.Equal(t, ErrCodeAuctionAlreadyClosed, ErrorCode(err))

	// bidding on a closed auction fails
	next, err := NewMoneyFromFloat(1300, "USD")
	require.NoError(t, err)
	err = auction.PlaceBid("bob", next)
	require.Error(t, err)
	assert.Equal(t, ErrCodeAuctionClosed, ErrorCode(err))
}

func TestAuctionSummaryOfActiveAuction(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")

	summary := auction.GetSummary()
	assert.True(t, summary.IsActive)
	assert.Nil(t, summary.EndTime)
	assert.Equal(t, 0, summary.TotalBids)
	assert.Equal(t, "001", summary.VehicleID.Value())

	// summarizing does not close the auction
	assert.True(t, auction.IsActive())
}

func TestAuctionConcurrentBids(t *testing.T) {
	auction := newTestAuction(t, 1000, "USD")

	const bidders = 50
	var wg sync.WaitGroup
	errs := make([]error, bidders)

	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount, err := NewMoneyFromFloat(1000+float64(i+1), "USD")
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = auction.PlaceBid(fmt.Sprintf("bidder-%d", i), amount)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.Equal(t, ErrCodeBidTooLow, ErrorCode(err))
		}
	}

	// whatever interleaving happened, the history must be strictly increasing
	// and the highest submitted amount must have won
	assert.Equal(t, accepted, len(auction.Bids()))
	assert.GreaterOrEqual(t, accepted, 1)
	assert.Equal(t, "1050.00 USD", auction.CurrentHighestBid().String())

	bids := auction.Bids()
	for i := 1; i < len(bids); i++ {
		higher, err := bids[i].Amount.GreaterThan(bids[i-1].Amount)
		require.NoError(t, err)
		assert.True(t, higher)
	}
}
