package rate

import (
	"context"
	"sync"
	"time"

	"ratebank/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = 30 * time.Minute

// Scheduler periodically refreshes the stored rate table from the fallback.
type Scheduler struct {
	store    Refresher
	cache    adapters.SnapshotCache
	observer RefreshObserver

	refreshInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.setSched(scheduler)

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if refreshErr := RefreshRates(jobCtx, execID, s.store, s.cache, s.observer); refreshErr != nil {
			logrus.WithError(refreshErr).WithField("exec_id", execID).Error("Refresh rates job failed")
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func (s *Scheduler) setSched(sched gocron.Scheduler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched = sched
}

func NewScheduler(store Refresher, cache adapters.SnapshotCache, observer RefreshObserver, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{store: store, cache: cache, observer: observer, refreshInterval: refreshInterval}
}
