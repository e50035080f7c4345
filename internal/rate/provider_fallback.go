package rate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"ratebank/internal/adapters"
	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const numWorkers = 5
const perRequestTimeout = 5 * time.Second

var ErrNoBases = errors.New("no base currencies configured")

// FetchObserver is told the outcome of every provider fetch.
type FetchObserver interface {
	ObserveFallbackFetch(err error)
}

type baseRates struct {
	Base  domain.Currency
	Rates map[string]float64
}

// ProviderFallback builds a full rate table from an external rates provider, one
// request per configured base currency.
type ProviderFallback struct {
	client     adapters.RateClient
	currencies CurrencyResolver
	bases      []domain.Currency
	observer   FetchObserver
}

// Fetch queries every base in parallel and merges the answers into one table keyed
// "{base}_to_{quote}". Quotes unknown to the currency registry are skipped. It fails
// only when no base could be fetched; partial failures are logged.
func (p *ProviderFallback) Fetch(ctx context.Context) (domain.RateTable, error) {
	table, err := p.fetch(ctx)
	if p.observer != nil {
		p.observer.ObserveFallbackFetch(err)
	}
	return table, err
}

func (p *ProviderFallback) fetch(ctx context.Context) (domain.RateTable, error) {
	if len(p.bases) == 0 {
		return nil, ErrNoBases
	}

	results := p.processInParallel(ctx)
	if len(results) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("provider returned no rates for any of %d bases", len(p.bases))
	}
	if len(results) < len(p.bases) {
		logrus.WithFields(logrus.Fields{
			"requested": len(p.bases),
			"fetched":   len(results),
		}).Warn("Some base currencies were not fetched, rate table is partial")
	}

	table := make(domain.RateTable)
	for _, res := range results {
		for quote, v := range res.Rates {
			to, err := p.currencies.Resolve(domain.Code(quote))
			if err != nil {
				continue
			}
			pair := domain.RatePair{From: res.Base, To: to}
			if pair.Identity() {
				continue
			}
			table[pair.Key()] = decimal.NewFromFloat(v)
		}
	}
	return table, nil
}

// processInParallel runs workers which fetch rates for one base each
func (p *ProviderFallback) processInParallel(ctx context.Context) []baseRates {
	workQueue := make(chan domain.Currency, len(p.bases))
	for _, base := range p.bases {
		workQueue <- base
	}
	close(workQueue)

	resultsCh := make(chan baseRates, len(p.bases))

	var wg sync.WaitGroup
	for i := 0; i < min(numWorkers, len(p.bases)); i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			p.runWorker(ctx, workerID, workQueue, resultsCh)
		}(i)
	}

	wg.Wait()
	close(resultsCh)

	results := make([]baseRates, 0, len(p.bases))
	for res := range resultsCh {
		results = append(results, res)
	}
	return results
}

func (p *ProviderFallback) runWorker(ctx context.Context, workerID int, workQueue <-chan domain.Currency, resultsCh chan<- baseRates) {
	for {
		select {
		case <-ctx.Done():
			return
		case base, ok := <-workQueue:
			if !ok {
				return
			}
			p.processBase(ctx, workerID, base, resultsCh)
		}
	}
}

func (p *ProviderFallback) processBase(ctx context.Context, workerID int, base domain.Currency, resultsCh chan<- baseRates) {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	rates, err := p.client.GetExchangeRates(reqCtx, base.Code)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"base":   base.Code,
			"worker": workerID,
		}).Warn("Base wasn't fetched as external api call returned error")
		return
	}
	resultsCh <- baseRates{Base: base, Rates: rates}
}

// NewProviderFallback resolves the configured bases up front; an unknown base is an error.
func NewProviderFallback(client adapters.RateClient, currencies CurrencyResolver, bases []string, observer FetchObserver) (*ProviderFallback, error) {
	seen := make(map[string]struct{}, len(bases))
	resolved := make([]domain.Currency, 0, len(bases))
	for _, code := range bases {
		c, err := currencies.Resolve(domain.Code(code))
		if err != nil {
			return nil, fmt.Errorf("fallback base %q: %w", strings.TrimSpace(code), err)
		}
		if _, ok := seen[c.Code]; ok {
			continue
		}
		seen[c.Code] = struct{}{}
		resolved = append(resolved, c)
	}
	return &ProviderFallback{client: client, currencies: currencies, bases: resolved, observer: observer}, nil
}

// CachedFallback serves fn's tables from cache until the cache drops them, so a burst
// of misses costs one provider round trip. Errors are not cached.
func CachedFallback(cache adapters.SnapshotCache, fn FallbackFunc) FallbackFunc {
	return func(ctx context.Context) (domain.RateTable, error) {
		if table, ok := cache.Get(); ok {
			return maps.Clone(table), nil
		}
		table, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		cache.Set(maps.Clone(table))
		return table, nil
	}
}
