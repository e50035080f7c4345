package rate

import (
	"context"
	"errors"
	"fmt"

	"ratebank/internal/adapters"
	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultKey is the hash that holds the whole rate table.
const DefaultKey = "redis_bank_exchange_rates"

var ErrNoFallback = errors.New("no rate fallback configured")

type CurrencyResolver interface {
	Resolve(ref domain.CurrencyRef) (domain.Currency, error)
}

// FallbackFunc returns a full rate table snapshot. It is called when the store has no
// entry for a lookup or cannot be reached.
type FallbackFunc func(ctx context.Context) (domain.RateTable, error)

// Source tells where a lookup result came from.
type Source string

const (
	SourceIdentity      Source = "identity"
	SourceDirect        Source = "direct"
	SourceFallbackEmpty Source = "fallback_from_empty"
	SourceFallbackError Source = "fallback_from_error"
)

type RateLookup struct {
	Key    string
	Rate   decimal.NullDecimal
	Source Source
}

type TableLookup struct {
	Table  domain.RateTable
	Source Source
}

// LookupObserver is told the source of every successful lookup.
type LookupObserver interface {
	ObserveLookup(op, source string)
}

// Store keeps directional exchange rates in a single hash of a HashStore.
//
// Store does not synchronize SetFallback with lookups: configure the fallback before
// sharing the Store between goroutines.
type Store struct {
	kv         adapters.HashStore
	currencies CurrencyResolver
	key        string
	observer   LookupObserver

	fallback     FallbackFunc
	writeThrough bool
}

type StoreOption func(s *Store)

// WithKey overrides the hash key the table is stored under.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithObserver reports lookup sources to o.
func WithObserver(o LookupObserver) StoreOption {
	return func(s *Store) {
		s.observer = o
	}
}

// SetFallback installs fn as the fallback supplier, replacing any previous one. With
// writeThrough set, every table fetched from fn overwrites the stored table.
// A nil fn removes the fallback.
func (s *Store) SetFallback(writeThrough bool, fn FallbackFunc) {
	s.fallback = fn
	s.writeThrough = writeThrough && fn != nil
}

func (s *Store) HasFallback() bool { return s.fallback != nil }

func (s *Store) Key() string { return s.key }

// SetRate stores rate for the from -> to direction and returns it unchanged.
func (s *Store) SetRate(ctx context.Context, from, to domain.CurrencyRef, rate decimal.Decimal) (decimal.Decimal, error) {
	key, err := s.RateKeyFor(from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err = s.kv.Set(ctx, s.key, key, formatRate(rate)); err != nil {
		return decimal.Decimal{}, err
	}
	return rate, nil
}

// GetRate returns the from -> to rate. An invalid result with a nil error means no rate
// is known for the pair.
func (s *Store) GetRate(ctx context.Context, from, to domain.CurrencyRef) (decimal.NullDecimal, error) {
	lookup, err := s.LookupRate(ctx, from, to)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return lookup.Rate, nil
}

// LookupRate is GetRate that also reports where the rate came from.
func (s *Store) LookupRate(ctx context.Context, from, to domain.CurrencyRef) (RateLookup, error) {
	lookup, err := s.lookupRate(ctx, from, to)
	if err == nil {
		s.observe("get_rate", lookup.Source)
	}
	return lookup, err
}

func (s *Store) lookupRate(ctx context.Context, from, to domain.CurrencyRef) (RateLookup, error) {
	if fromCode := domain.NormalizeCode(from); fromCode != "" && fromCode == domain.NormalizeCode(to) {
		return RateLookup{Rate: decimal.NewNullDecimal(decimal.NewFromInt(1)), Source: SourceIdentity}, nil
	}

	key, err := s.RateKeyFor(from, to)
	if err != nil {
		return RateLookup{}, err
	}

	raw, ok, err := s.kv.Get(ctx, s.key, key)
	if err != nil {
		if s.fallback == nil {
			return RateLookup{}, err
		}
		return s.rateFromFallback(ctx, key, SourceFallbackError)
	}
	if !ok || raw == "" {
		if s.fallback == nil {
			return RateLookup{Key: key, Source: SourceDirect}, nil
		}
		return s.rateFromFallback(ctx, key, SourceFallbackEmpty)
	}

	rate, err := parseRate(key, raw)
	if err != nil {
		return RateLookup{}, err
	}
	return RateLookup{Key: key, Rate: decimal.NewNullDecimal(rate), Source: SourceDirect}, nil
}

// GetAllRates returns the whole stored table, or the fallback's table when the store
// is empty or unreachable.
func (s *Store) GetAllRates(ctx context.Context) (domain.RateTable, error) {
	lookup, err := s.LookupAllRates(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.Table, nil
}

func (s *Store) LookupAllRates(ctx context.Context) (TableLookup, error) {
	lookup, err := s.lookupAllRates(ctx)
	if err == nil {
		s.observe("get_all_rates", lookup.Source)
	}
	return lookup, err
}

func (s *Store) lookupAllRates(ctx context.Context) (TableLookup, error) {
	raw, err := s.kv.GetAll(ctx, s.key)
	if err != nil {
		if s.fallback == nil {
			return TableLookup{}, err
		}
		return s.fromFallback(ctx, SourceFallbackError)
	}
	if len(raw) == 0 && s.fallback != nil {
		return s.fromFallback(ctx, SourceFallbackEmpty)
	}

	table, err := decodeTable(raw)
	if err != nil {
		return TableLookup{}, err
	}
	return TableLookup{Table: table, Source: SourceDirect}, nil
}

// Refresh fetches a table from the fallback and overwrites the stored table with it,
// regardless of the write-through flag. Store errors are returned.
func (s *Store) Refresh(ctx context.Context) (domain.RateTable, error) {
	if s.fallback == nil {
		return nil, ErrNoFallback
	}
	table, err := s.callFallback(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.kv.SetAll(ctx, s.key, encodeTable(table)); err != nil {
		return nil, err
	}
	return table, nil
}

// RateKeyFor returns the hash field for the from -> to rate, e.g. "usd_to_eur".
func (s *Store) RateKeyFor(from, to domain.CurrencyRef) (string, error) {
	fromCurrency, err := s.currencies.Resolve(from)
	if err != nil {
		return "", err
	}
	toCurrency, err := s.currencies.Resolve(to)
	if err != nil {
		return "", err
	}
	return domain.RatePair{From: fromCurrency, To: toCurrency}.Key(), nil
}

func (s *Store) observe(op string, source Source) {
	if s.observer != nil {
		s.observer.ObserveLookup(op, string(source))
	}
}

func (s *Store) rateFromFallback(ctx context.Context, key string, source Source) (RateLookup, error) {
	lookup, err := s.fromFallback(ctx, source)
	if err != nil {
		return RateLookup{}, err
	}
	res := RateLookup{Key: key, Source: source}
	if rate, ok := lookup.Table[key]; ok {
		res.Rate = decimal.NewNullDecimal(rate)
	}
	return res, nil
}

// fromFallback is the single place both miss paths (empty result, store error) end up.
func (s *Store) fromFallback(ctx context.Context, source Source) (TableLookup, error) {
	table, err := s.callFallback(ctx)
	if err != nil {
		return TableLookup{}, err
	}
	if s.writeThrough {
		// the fallback is configured, so a store failure here is suppressed like any other
		_ = s.kv.SetAll(ctx, s.key, encodeTable(table))
	}
	return TableLookup{Table: table, Source: source}, nil
}

func (s *Store) callFallback(ctx context.Context) (domain.RateTable, error) {
	table, err := s.fallback(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate fallback failed: %w", err)
	}
	if table == nil {
		table = domain.RateTable{}
	}
	return table, nil
}

func NewStore(kv adapters.HashStore, currencies CurrencyResolver, opts ...StoreOption) *Store {
	s := &Store{kv: kv, currencies: currencies, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
