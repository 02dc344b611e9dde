package repositories

import "context"

// Storage keys shared by every KeyValueStore implementation.
const (
	HoldingsKey          = "cryptoPortfolio"
	PreferredCurrencyKey = "preferredCurrency"
)

// KeyValueReader defines read access to the local persistence store.
type KeyValueReader interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
}

// KeyValueWriter defines write access to the local persistence store.
type KeyValueWriter interface {
	// Set stores value under key, replacing any previous value. Writes are synchronous.
	Set(ctx context.Context, key, value string) error
}

// KeyValueStore combines read and write access to the local persistence store.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
}
