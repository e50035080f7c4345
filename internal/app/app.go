package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"ratebank/internal/adapters"
	"ratebank/internal/adapters/cache"
	"ratebank/internal/adapters/httpclient"
	"ratebank/internal/adapters/memory"
	"ratebank/internal/adapters/postgres"
	redisadapter "ratebank/internal/adapters/redis"
	"ratebank/internal/api"
	"ratebank/internal/config"
	"ratebank/internal/currency"
	"ratebank/internal/exchange"
	"ratebank/internal/metrics"
	"ratebank/internal/platform/db"
	httpserver "ratebank/internal/platform/http"
	"ratebank/internal/rate"
	"ratebank/internal/rate/handler"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const startupTimeout = 10 * time.Second

// App holds the wired components shared by the HTTP server and the CLI commands.
type App struct {
	Config     *config.AppConfig
	Currencies *currency.Registry
	Store      *rate.Store
	Converter  *exchange.Converter
	Metrics    *metrics.Metrics

	snapshots adapters.SnapshotCache
	closers   []func()
}

// SetupLogging configures the global logrus logger.
func SetupLogging(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// New connects to the configured backends and wires the rate store, its fallback and
// the converter. Close releases what New opened.
func New(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics.New()}

	// Bounded context for startup operations (connects, migrations, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DbServer.Enabled {
		var err error
		if pool, err = db.Open(startupCtx, cfg.DbServer); err != nil {
			logrus.WithError(err).Error("Error connecting to db")
			return nil, err
		}
		a.onClose(pool.Close)
		logrus.Info("Postgres connection successful")
	}

	registry, err := loadCurrencies(startupCtx, pool)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Currencies = registry

	kv, err := a.openHashStore(startupCtx, pool)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Store = rate.NewStore(kv, registry, rate.WithKey(cfg.Store.Key), rate.WithObserver(a.Metrics))
	if cfg.Fallback.Enabled {
		if err = a.installFallback(); err != nil {
			a.Close()
			return nil, err
		}
	}

	rounding, err := exchange.RoundingByName(cfg.Exchange.Rounding)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Converter = exchange.NewConverter(a.Store, registry, exchange.WithRounding(rounding))
	return a, nil
}

func (a *App) openHashStore(ctx context.Context, pool *pgxpool.Pool) (adapters.HashStore, error) {
	switch a.Config.Store.Driver {
	case config.DriverRedis:
		s, err := redisadapter.Connect(ctx, &redis.Options{
			Addr:     a.Config.Redis.Addr,
			Password: a.Config.Redis.Password,
			DB:       a.Config.Redis.DB,
		})
		if err != nil {
			logrus.WithError(err).WithField("addr", a.Config.Redis.Addr).Error("Error connecting to redis")
			return nil, err
		}
		a.onClose(func() { _ = s.Close() })
		logrus.Info("Redis connection successful")
		return s, nil
	case config.DriverPostgres:
		return postgres.NewHashStore(pool), nil
	case config.DriverMemory:
		logrus.Warn("Using in-memory rate store, rates are lost on exit")
		return memory.NewHashStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", a.Config.Store.Driver)
	}
}

func (a *App) installFallback() error {
	cfg := a.Config
	baseHTTPClient := &http.Client{Timeout: cfg.HTTPClient.Timeout()}
	rateClient := httpclient.NewExchangeRateClient(
		baseHTTPClient,
		strings.TrimSuffix(cfg.ExchangeRateAPI.BaseURL, "/"),
		cfg.ExchangeRateAPI.APIKey,
	)

	provider, err := rate.NewProviderFallback(rateClient, a.Currencies, cfg.ExchangeRateAPI.Bases, a.Metrics)
	if err != nil {
		return err
	}

	fallback := rate.FallbackFunc(provider.Fetch)
	if ttl := cfg.Fallback.SnapshotTTL(); ttl > 0 {
		snapshots, cacheErr := cache.NewSnapshotCache(a.Store.Key(), ttl, cfg.Fallback.CacheMaxItems)
		if cacheErr != nil {
			return cacheErr
		}
		a.onClose(snapshots.Close)
		a.snapshots = snapshots
		fallback = rate.CachedFallback(snapshots, fallback)
	}

	a.Store.SetFallback(cfg.Fallback.WriteThrough, fallback)
	logrus.WithFields(logrus.Fields{
		"bases":         cfg.ExchangeRateAPI.Bases,
		"write_through": cfg.Fallback.WriteThrough,
	}).Info("Rate fallback installed")
	return nil
}

// Refresh overwrites the stored table with a fresh fallback table once.
func (a *App) Refresh(ctx context.Context) error {
	return rate.RefreshRates(ctx, uuid.NewString(), a.Store, a.snapshots, a.Metrics)
}

// Serve starts the refresh scheduler (when configured) and the HTTP server, and blocks
// until ctx is canceled.
func (a *App) Serve(ctx context.Context) error {
	interval := time.Duration(a.Config.Scheduler.RefreshIntervalSec) * time.Second
	if a.Store.HasFallback() && interval > 0 {
		scheduler := rate.NewScheduler(a.Store, a.snapshots, a.Metrics, interval)
		// Ensure scheduler stops before the store connections close
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.WithField("interval", interval).Info("Refresh scheduler started")
	}

	rateHandler := handler.NewRateHandler(a.Store, a.Converter, a.Currencies, a.Metrics)
	router := api.NewRouter(rateHandler, a.Metrics.Handler())

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, a.Config.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) onClose(fn func()) { a.closers = append(a.closers, fn) }

// loadCurrencies extends the built-in ISO table with the currencies table when a
// database is configured.
func loadCurrencies(ctx context.Context, pool *pgxpool.Pool) (*currency.Registry, error) {
	if pool == nil {
		return currency.NewDefaultRegistry(), nil
	}
	extra, err := postgres.NewCurrencyRepository(pool).GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load currencies")
		return nil, err
	}
	logrus.WithField("extra", len(extra)).Info("Currencies loaded")
	return currency.NewDefaultRegistry(extra...), nil
}
