// Package valuation joins holdings with market data and derives portfolio
// aggregates. Every function is pure: results depend only on the arguments and
// are recomputed from scratch on each call.
package valuation

import (
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Converter converts monetary amounts between currencies.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal
}

// ComputeLineItems values each holding against its coin. Holdings whose coin is
// absent from coins are dropped. Purchase prices are converted from the canonical
// currency into quoteCurrency before any arithmetic, so values never mix currencies.
func ComputeLineItems(holdings []domain.Holding, coins []domain.Coin, quoteCurrency string, conv Converter) []domain.PortfolioLineItem {
	byID := make(map[string]domain.Coin, len(coins))
	for _, c := range coins {
		byID[c.ID] = c
	}

	items := make([]domain.PortfolioLineItem, 0, len(holdings))
	for _, h := range holdings {
		coin, ok := byID[h.CoinID]
		if !ok {
			continue
		}

		purchasePrice := conv.Convert(h.PurchasePrice, domain.CanonicalCurrency, quoteCurrency)
		currentValue := h.Amount.Mul(coin.CurrentPrice)
		costBasis := h.Amount.Mul(purchasePrice)

		items = append(items, domain.PortfolioLineItem{
			Holding:                      h,
			Coin:                         coin,
			QuoteCurrency:                quoteCurrency,
			PurchasePriceInQuoteCurrency: purchasePrice,
			CurrentValue:                 currentValue,
			ProfitLoss:                   currentValue.Sub(costBasis),
			ProfitLossPercent:            percentChange(purchasePrice, coin.CurrentPrice),
		})
	}
	return items
}

// Aggregate sums value and profit/loss across items. The percentage is relative to
// the total value and is zero when the total value is not positive.
func Aggregate(items []domain.PortfolioLineItem) domain.PortfolioSummary {
	totalValue := decimal.Zero
	totalProfitLoss := decimal.Zero
	for _, item := range items {
		totalValue = totalValue.Add(item.CurrentValue)
		totalProfitLoss = totalProfitLoss.Add(item.ProfitLoss)
	}

	percent := decimal.Zero
	if totalValue.IsPositive() {
		percent = totalProfitLoss.Div(totalValue).Mul(hundred)
	}
	return domain.PortfolioSummary{
		TotalValue:             totalValue,
		TotalProfitLoss:        totalProfitLoss,
		TotalProfitLossPercent: percent,
	}
}

// Allocation returns each item's share of totalValue. It is empty when
// totalValue is zero.
func Allocation(items []domain.PortfolioLineItem, totalValue decimal.Decimal) []domain.AllocationSlice {
	if totalValue.IsZero() {
		return []domain.AllocationSlice{}
	}
	slices := make([]domain.AllocationSlice, 0, len(items))
	for _, item := range items {
		slices = append(slices, domain.AllocationSlice{
			CoinSymbol: strings.ToUpper(item.Coin.Symbol),
			CoinName:   item.Coin.Name,
			Value:      item.CurrentValue,
			Percentage: item.CurrentValue.Div(totalValue).Mul(hundred),
		})
	}
	return slices
}

// FilterCoins returns up to limit coins whose name or symbol contains term,
// case-insensitively, keeping the input order. An empty term matches every coin;
// a non-positive limit means no limit.
func FilterCoins(coins []domain.Coin, term string, limit int) []domain.Coin {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Coin, 0)
	for _, c := range coins {
		if limit > 0 && len(out) >= limit {
			break
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Symbol), needle) {
			out = append(out, c)
		}
	}
	return out
}

// ResolveCoin re-resolves a previously selected coin against a fresh coin list.
// It reports false when the coin no longer exists.
func ResolveCoin(selected *domain.Coin, coins []domain.Coin) (domain.Coin, bool) {
	if selected == nil {
		return domain.Coin{}, false
	}
	for _, c := range coins {
		if c.ID == selected.ID {
			return c, true
		}
	}
	return domain.Coin{}, false
}

// percentChange is (current - base) / base * 100, zero for a zero base.
func percentChange(base, current decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return current.Sub(base).Div(base).Mul(hundred)
}
