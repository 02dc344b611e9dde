package valuation

import (
	"testing"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func usdTable() domain.ExchangeRateTable {
	return domain.NewExchangeRateTable(map[string]decimal.Decimal{
		"USD": d("1"),
		"EUR": d("0.9"),
		"INR": d("83"),
	}, time.Now())
}

func coin(id, symbol, name, price string) domain.Coin {
	return domain.Coin{ID: id, Symbol: symbol, Name: name, CurrentPrice: d(price)}
}

func TestComputeLineItems_ValuesMatchedHolding(t *testing.T) {
	holdings := []domain.Holding{{ID: "h1", CoinID: "bitcoin", Amount: d("2"), PurchasePrice: d("100")}}
	coins := []domain.Coin{coin("bitcoin", "btc", "Bitcoin", "150")}

	items := ComputeLineItems(holdings, coins, "USD", usdTable())

	require.Len(t, items, 1)
	item := items[0]
	assert.True(t, d("300").Equal(item.CurrentValue), "current value: %s", item.CurrentValue)
	assert.True(t, d("100").Equal(item.ProfitLoss), "profit/loss: %s", item.ProfitLoss)
	assert.True(t, d("50").Equal(item.ProfitLossPercent), "profit/loss %%: %s", item.ProfitLossPercent)
	assert.Equal(t, "USD", item.QuoteCurrency)
	assert.Equal(t, "h1", item.ID)
}

func TestComputeLineItems_ConvertsPurchasePriceIntoQuoteCurrency(t *testing.T) {
	// 100 USD purchase price is 90 EUR; coin quoted at 135 EUR.
	holdings := []domain.Holding{{ID: "h1", CoinID: "eth", Amount: d("1"), PurchasePrice: d("100")}}
	coins := []domain.Coin{coin("eth", "eth", "Ethereum", "135")}

	items := ComputeLineItems(holdings, coins, "EUR", usdTable())

	require.Len(t, items, 1)
	assert.True(t, d("90").Equal(items[0].PurchasePriceInQuoteCurrency))
	assert.True(t, d("45").Equal(items[0].ProfitLoss))
	assert.True(t, d("50").Equal(items[0].ProfitLossPercent))
}

func TestComputeLineItems_DropsUnknownCoin(t *testing.T) {
	holdings := []domain.Holding{
		{ID: "h1", CoinID: "bitcoin", Amount: d("1"), PurchasePrice: d("10")},
		{ID: "h2", CoinID: "delisted", Amount: d("5"), PurchasePrice: d("10")},
	}
	coins := []domain.Coin{coin("bitcoin", "btc", "Bitcoin", "20")}

	items := ComputeLineItems(holdings, coins, "USD", usdTable())

	require.Len(t, items, 1)
	assert.Equal(t, "h1", items[0].ID)

	summary := Aggregate(items)
	assert.True(t, d("20").Equal(summary.TotalValue))
	assert.True(t, d("10").Equal(summary.TotalProfitLoss))
}

func TestComputeLineItems_ZeroPurchasePriceHasZeroPercent(t *testing.T) {
	holdings := []domain.Holding{{ID: "h1", CoinID: "airdrop", Amount: d("10"), PurchasePrice: decimal.Zero}}
	coins := []domain.Coin{coin("airdrop", "air", "Airdrop", "3")}

	items := ComputeLineItems(holdings, coins, "USD", usdTable())

	require.Len(t, items, 1)
	assert.True(t, items[0].ProfitLossPercent.IsZero())
	assert.True(t, d("30").Equal(items[0].ProfitLoss))
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)
	assert.True(t, summary.TotalValue.IsZero())
	assert.True(t, summary.TotalProfitLoss.IsZero())
	assert.True(t, summary.TotalProfitLossPercent.IsZero())
}

func TestAggregate_WorthlessPortfolio(t *testing.T) {
	items := []domain.PortfolioLineItem{{CurrentValue: decimal.Zero, ProfitLoss: d("-50")}}
	summary := Aggregate(items)
	assert.True(t, summary.TotalProfitLossPercent.IsZero())
	assert.True(t, d("-50").Equal(summary.TotalProfitLoss))
}

func TestAggregate_PercentRelativeToValue(t *testing.T) {
	items := []domain.PortfolioLineItem{
		{CurrentValue: d("300"), ProfitLoss: d("100")},
		{CurrentValue: d("100"), ProfitLoss: d("-20")},
	}
	summary := Aggregate(items)
	assert.True(t, d("400").Equal(summary.TotalValue))
	assert.True(t, d("80").Equal(summary.TotalProfitLoss))
	assert.True(t, d("20").Equal(summary.TotalProfitLossPercent))
}

func TestAllocation_SumsToHundred(t *testing.T) {
	holdings := []domain.Holding{
		{ID: "h1", CoinID: "bitcoin", Amount: d("1"), PurchasePrice: d("1")},
		{ID: "h2", CoinID: "eth", Amount: d("3"), PurchasePrice: d("1")},
		{ID: "h3", CoinID: "sol", Amount: d("7"), PurchasePrice: d("1")},
	}
	coins := []domain.Coin{
		coin("bitcoin", "btc", "Bitcoin", "100"),
		coin("eth", "eth", "Ethereum", "33.33"),
		coin("sol", "sol", "Solana", "1.7"),
	}
	items := ComputeLineItems(holdings, coins, "USD", usdTable())
	summary := Aggregate(items)

	slices := Allocation(items, summary.TotalValue)

	require.Len(t, slices, 3)
	sum := decimal.Zero
	for _, s := range slices {
		sum = sum.Add(s.Percentage)
	}
	assert.True(t, sum.Sub(d("100")).Abs().LessThan(d("0.000001")), "sum was %s", sum)
	assert.Equal(t, "BTC", slices[0].CoinSymbol)
	assert.Equal(t, "Bitcoin", slices[0].CoinName)
}

func TestAllocation_EmptyWhenTotalIsZero(t *testing.T) {
	items := []domain.PortfolioLineItem{{CurrentValue: decimal.Zero, Coin: coin("x", "x", "X", "0")}}
	slices := Allocation(items, decimal.Zero)
	assert.NotNil(t, slices)
	assert.Empty(t, slices)
}

func TestFilterCoins(t *testing.T) {
	coins := []domain.Coin{
		coin("bitcoin", "btc", "Bitcoin", "1"),
		coin("bitcoin-cash", "bch", "Bitcoin Cash", "1"),
		coin("ethereum", "eth", "Ethereum", "1"),
		coin("wrapped-bitcoin", "wbtc", "Wrapped Bitcoin", "1"),
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := FilterCoins(coins, "BITCOIN", 0)
		require.Len(t, got, 3)
		assert.Equal(t, "bitcoin", got[0].ID)
		assert.Equal(t, "wrapped-bitcoin", got[2].ID)
	})
	t.Run("matches symbol", func(t *testing.T) {
		got := FilterCoins(coins, "eth", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "ethereum", got[0].ID)
	})
	t.Run("limit keeps order", func(t *testing.T) {
		got := FilterCoins(coins, "", 2)
		require.Len(t, got, 2)
		assert.Equal(t, "bitcoin-cash", got[1].ID)
	})
	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterCoins(coins, "doge", 10))
	})
}

func TestResolveCoin(t *testing.T) {
	coins := []domain.Coin{coin("bitcoin", "btc", "Bitcoin", "150")}

	selected := coin("bitcoin", "btc", "Bitcoin", "100")
	got, ok := ResolveCoin(&selected, coins)
	require.True(t, ok)
	assert.True(t, d("150").Equal(got.CurrentPrice))

	gone := coin("luna", "luna", "Terra", "1")
	_, ok = ResolveCoin(&gone, coins)
	assert.False(t, ok)

	_, ok = ResolveCoin(nil, coins)
	assert.False(t, ok)
}
