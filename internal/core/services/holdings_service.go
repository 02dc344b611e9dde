package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// holdingsService owns the holdings list. Every mutation rewrites the whole
// persisted list before the in-memory list is replaced.
type holdingsService struct {
	BaseService
	store     portsrepo.KeyValueStore
	converter portssvc.CurrencyConverterSvc
	newID     func() string

	mu       sync.RWMutex
	holdings []domain.Holding
}

// HoldingsOption is a functional option for configuring the holdings service
type HoldingsOption func(*holdingsService)

// WithIDGenerator overrides how holding ids are assigned.
func WithIDGenerator(fn func() string) HoldingsOption {
	return func(s *holdingsService) {
		s.newID = fn
	}
}

// NewHoldingsService creates a holdings service with an empty list. Call
// LoadHoldings to restore the persisted list.
func NewHoldingsService(store portsrepo.KeyValueStore, converter portssvc.CurrencyConverterSvc, options ...HoldingsOption) portssvc.HoldingsSvcFacade {
	svc := &holdingsService{
		store:     store,
		converter: converter,
		newID:     newHoldingID,
		holdings:  []domain.Holding{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure holdingsService implements the HoldingsSvcFacade interface
var _ portssvc.HoldingsSvcFacade = (*holdingsService)(nil)

// newHoldingID returns a time-ordered UUID, falling back to a random one.
func newHoldingID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *holdingsService) ListHoldings(ctx context.Context) []domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHoldings(s.holdings)
}

func (s *holdingsService) LoadHoldings(ctx context.Context) []domain.Holding {
	loaded := s.readPersisted(ctx)

	s.mu.Lock()
	s.holdings = loaded
	s.mu.Unlock()

	s.LogInfo(ctx, "Holdings loaded", slog.Int("count", len(loaded)))
	return copyHoldings(loaded)
}

func (s *holdingsService) readPersisted(ctx context.Context) []domain.Holding {
	raw, found, err := s.store.Get(ctx, portsrepo.HoldingsKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to read saved portfolio, starting empty")
		return []domain.Holding{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []domain.Holding{}
	}

	var holdings []domain.Holding
	if err := json.Unmarshal([]byte(raw), &holdings); err != nil {
		s.LogError(ctx, err, "Error parsing saved portfolio, starting empty")
		return []domain.Holding{}
	}
	if holdings == nil {
		return []domain.Holding{}
	}
	return holdings
}

func (s *holdingsService) AddHolding(ctx context.Context, coinID string, amount, purchasePrice decimal.Decimal, priceCurrency string) (*domain.Holding, error) {
	coinID = strings.TrimSpace(coinID)
	if coinID == "" {
		return nil, fmt.Errorf("%w: a coin must be selected", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if purchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: purchase price cannot be negative", apperrors.ErrValidation)
	}
	if priceCurrency == "" {
		return nil, fmt.Errorf("%w: purchase price currency is required", apperrors.ErrValidation)
	}
	if !domain.IsSupportedCurrency(priceCurrency) {
		return nil, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrUnsupportedCurrency, priceCurrency)
	}

	holding := domain.Holding{
		ID:            s.newID(),
		CoinID:        coinID,
		Amount:        amount,
		PurchasePrice: s.converter.Convert(purchasePrice, priceCurrency, domain.CanonicalCurrency),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(copyHoldings(s.holdings), holding)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.holdings = next

	s.LogInfo(ctx, "Holding added",
		slog.String("holding_id", holding.ID),
		slog.String("coin_id", holding.CoinID),
		slog.String("entered_currency", priceCurrency))
	return &holding, nil
}

func (s *holdingsService) RemoveHolding(ctx context.Context, holdingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		if h.ID != holdingID {
			next = append(next, h)
		}
	}
	if len(next) == len(s.holdings) {
		s.LogDebug(ctx, "Holding to remove not found", slog.String("holding_id", holdingID))
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.holdings = next

	s.LogInfo(ctx, "Holding removed", slog.String("holding_id", holdingID))
	return nil
}

// persist rewrites the full holdings list. Callers must hold s.mu.
func (s *holdingsService) persist(ctx context.Context, holdings []domain.Holding) error {
	payload, err := json.Marshal(holdings)
	if err != nil {
		return fmt.Errorf("failed to encode holdings: %w", err)
	}
	if err := s.store.Set(ctx, portsrepo.HoldingsKey, string(payload)); err != nil {
		s.LogError(ctx, err, "Failed to persist holdings")
		return fmt.Errorf("failed to persist holdings: %w", err)
	}
	return nil
}

func copyHoldings(in []domain.Holding) []domain.Holding {
	out := make([]domain.Holding, len(in))
	copy(out, in)
	return out
}
