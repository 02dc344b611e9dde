package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func sampleCoins() []domain.Coin {
	return []domain.Coin{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: decimal.NewFromInt(150)},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: decimal.NewFromInt(10)},
		{ID: "wrapped-bitcoin", Symbol: "wbtc", Name: "Wrapped Bitcoin", CurrentPrice: decimal.NewFromInt(149)},
	}
}

// --- Test Suite ---
type MarketDataServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockProvider *MockMarketDataProvider
	service      portssvc.MarketDataSvcFacade
	now          time.Time
}

func (suite *MarketDataServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.mockProvider = new(MockMarketDataProvider)
	suite.service = services.NewMarketDataService(suite.mockProvider,
		services.WithPageSize(50),
		services.WithClock(func() time.Time { return suite.now }))
}

// --- Test Cases ---

func (suite *MarketDataServiceTestSuite) TestEmptyBeforeFirstRefresh() {
	snap := suite.service.Snapshot()
	suite.True(snap.IsEmpty())
	suite.NotNil(snap.Coins)
	_, ok := suite.service.FindByID("bitcoin")
	suite.False(ok)
}

func (suite *MarketDataServiceTestSuite) TestRefresh_Success() {
	suite.mockProvider.On("FetchMarkets", suite.ctx, "EUR", 50, 1).Return(sampleCoins(), nil).Once()

	coins, err := suite.service.Refresh(suite.ctx, "eur")

	suite.Require().NoError(err)
	suite.Len(coins, 3)
	snap := suite.service.Snapshot()
	suite.Equal("EUR", snap.QuoteCurrency)
	suite.Equal(suite.now, snap.FetchedAt)
	suite.Len(snap.Coins, 3)

	btc, ok := suite.service.FindByID("bitcoin")
	suite.True(ok)
	suite.Equal("Bitcoin", btc.Name)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *MarketDataServiceTestSuite) TestRefresh_FailureKeepsCache() {
	suite.mockProvider.On("FetchMarkets", suite.ctx, "USD", 50, 1).Return(sampleCoins(), nil).Once()
	_, err := suite.service.Refresh(suite.ctx, "USD")
	suite.Require().NoError(err)

	suite.mockProvider.On("FetchMarkets", suite.ctx, "GBP", 50, 1).Return(nil, apperrors.ErrUpstream).Once()
	coins, err := suite.service.Refresh(suite.ctx, "GBP")

	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Nil(coins)
	snap := suite.service.Snapshot()
	suite.Equal("USD", snap.QuoteCurrency)
	suite.Len(snap.Coins, 3)
}

func (suite *MarketDataServiceTestSuite) TestRefresh_StaleResultDiscarded() {
	release := make(chan struct{})
	started := make(chan struct{})

	// The first (slow) refresh is still in flight when a second one completes.
	suite.mockProvider.On("FetchMarkets", mock.Anything, "USD", 50, 1).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]domain.Coin{{ID: "stale", Symbol: "old", Name: "Stale"}}, nil).Once()
	suite.mockProvider.On("FetchMarkets", mock.Anything, "EUR", 50, 1).Return(sampleCoins(), nil).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := suite.service.Refresh(suite.ctx, "USD")
		errCh <- err
	}()
	<-started

	_, err := suite.service.Refresh(suite.ctx, "EUR")
	suite.Require().NoError(err)
	close(release)

	suite.ErrorIs(<-errCh, services.ErrRefreshSuperseded)
	snap := suite.service.Snapshot()
	suite.Equal("EUR", snap.QuoteCurrency)
	_, ok := suite.service.FindByID("stale")
	suite.False(ok)
}

func (suite *MarketDataServiceTestSuite) TestRefresh_OlderResultAppliedWhenNewerFails() {
	release := make(chan struct{})
	started := make(chan struct{})

	suite.mockProvider.On("FetchMarkets", mock.Anything, "EUR", 50, 1).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(sampleCoins(), nil).Once()
	suite.mockProvider.On("FetchMarkets", mock.Anything, "GBP", 50, 1).Return(nil, apperrors.ErrUpstream).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := suite.service.Refresh(suite.ctx, "EUR")
		errCh <- err
	}()
	<-started

	_, err := suite.service.Refresh(suite.ctx, "GBP")
	suite.Require().ErrorIs(err, apperrors.ErrUpstream)
	close(release)

	suite.NoError(<-errCh)
	snap := suite.service.Snapshot()
	suite.Equal("EUR", snap.QuoteCurrency)
	suite.Len(snap.Coins, 3)
}

func (suite *MarketDataServiceTestSuite) TestSnapshotReturnsCopy() {
	suite.mockProvider.On("FetchMarkets", suite.ctx, "USD", 50, 1).Return(sampleCoins(), nil).Once()
	_, err := suite.service.Refresh(suite.ctx, "USD")
	suite.Require().NoError(err)

	snap := suite.service.Snapshot()
	snap.Coins[0].Name = "mutated"

	btc, _ := suite.service.FindByID("bitcoin")
	suite.Equal("Bitcoin", btc.Name)
}

func (suite *MarketDataServiceTestSuite) TestSearchCoins() {
	suite.mockProvider.On("FetchMarkets", suite.ctx, "USD", 50, 1).Return(sampleCoins(), nil).Once()
	_, err := suite.service.Refresh(suite.ctx, "USD")
	suite.Require().NoError(err)

	got := suite.service.SearchCoins("BTC", 0)
	suite.Require().Len(got, 2)
	suite.Equal("bitcoin", got[0].ID)
	suite.Equal("wrapped-bitcoin", got[1].ID)

	suite.Len(suite.service.SearchCoins("", 2), 2)
	suite.Empty(suite.service.SearchCoins("doge", 0))
}

func TestMarketDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketDataServiceTestSuite))
}
