package rate

import (
	"context"
	"fmt"

	"ratebank/internal/adapters"
	"ratebank/internal/domain"

	"github.com/sirupsen/logrus"
)

type Refresher interface {
	Refresh(ctx context.Context) (domain.RateTable, error)
}

// RefreshObserver is told the outcome of every refresh run.
type RefreshObserver interface {
	ObserveRefresh(err error)
}

// RefreshRates replaces the stored table with a fresh fallback table. The snapshot
// cache, when given, is cleared first so the fallback hits the provider.
func RefreshRates(ctx context.Context, execID string, store Refresher, cache adapters.SnapshotCache, observer RefreshObserver) error {
	if cache != nil {
		cache.Clear()
	}

	table, err := store.Refresh(ctx)
	if observer != nil {
		observer.ObserveRefresh(err)
	}
	if err != nil {
		return fmt.Errorf("failed to refresh rates: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"exec_id": execID,
		"rates":   len(table),
	}).Info("Rate table refreshed")
	return nil
}
