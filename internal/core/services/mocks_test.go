package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock KeyValueStore ---
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- Mock ExchangeRateProvider ---
type MockExchangeRateProvider struct {
	mock.Mock
}

func (m *MockExchangeRateProvider) FetchLatestRates(ctx context.Context) (domain.ExchangeRateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ExchangeRateTable), args.Error(1)
}

// --- Mock MarketDataProvider ---
type MockMarketDataProvider struct {
	mock.Mock
}

func (m *MockMarketDataProvider) FetchMarkets(ctx context.Context, quoteCurrency string, perPage, page int) ([]domain.Coin, error) {
	args := m.Called(ctx, quoteCurrency, perPage, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coin), args.Error(1)
}

// memoryStore is a minimal in-process store for tests that care about the
// persisted payload rather than the call sequence.
type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.sets++
	return nil
}

func (s *memoryStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}
