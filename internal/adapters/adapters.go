package adapters

import (
	"context"

	"ratebank/internal/domain"
)

// RateClient fetches quotes for one base currency from an external provider.
// The result maps quote codes ("EUR") to the price of one unit of base.
type RateClient interface {
	GetExchangeRates(ctx context.Context, base string) (map[string]float64, error)
}

// HashStore is a key -> (field -> value) store. Get reports ok=false for a missing
// field. SetAll replaces every field under key with values.
type HashStore interface {
	Get(ctx context.Context, key, field string) (value string, ok bool, err error)
	Set(ctx context.Context, key, field, value string) error
	GetAll(ctx context.Context, key string) (map[string]string, error)
	SetAll(ctx context.Context, key string, values map[string]string) error
}

type CurrencyRepository interface {
	GetAll(ctx context.Context) ([]domain.Currency, error)
}

// SnapshotCache keeps the latest fallback rate table for a short time.
type SnapshotCache interface {
	Get() (domain.RateTable, bool)
	Set(table domain.RateTable)
	Clear()
}
