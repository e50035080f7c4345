package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c HTTPClient) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Store struct {
	Driver string `mapstructure:"driver"`
	Key    string `mapstructure:"key"`
}

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DbServer struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Pass           string `mapstructure:"pass"`
	Name           string `mapstructure:"name"`
	MaxConns       int32  `mapstructure:"max_conns"`
	MaxConnIdleSec int    `mapstructure:"max_conn_idle_sec"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type ExchangeRateAPI struct {
	BaseURL string   `mapstructure:"base_url"`
	APIKey  string   `mapstructure:"api_key"`
	Bases   []string `mapstructure:"bases"`
}

type Fallback struct {
	Enabled           bool  `mapstructure:"enabled"`
	WriteThrough      bool  `mapstructure:"write_through"`
	SnapshotTTLSecond int   `mapstructure:"snapshot_ttl_seconds"`
	CacheMaxItems     int64 `mapstructure:"cache_max_items"`
}

func (f Fallback) SnapshotTTL() time.Duration {
	return time.Duration(f.SnapshotTTLSecond) * time.Second
}

type Scheduler struct {
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
}

type Exchange struct {
	Rounding string `mapstructure:"rounding"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	Logging         Logging         `mapstructure:"logging"`
	Store           Store           `mapstructure:"store"`
	Redis           Redis           `mapstructure:"redis"`
	DbServer        DbServer        `mapstructure:"db_server"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Fallback        Fallback        `mapstructure:"fallback"`
	Scheduler       Scheduler       `mapstructure:"scheduler"`
	Exchange        Exchange        `mapstructure:"exchange"`
}

// Validate rejects combinations the application cannot wire.
func (c *AppConfig) Validate() error {
	switch c.Store.Driver {
	case DriverRedis, DriverMemory:
	case DriverPostgres:
		if !c.DbServer.Enabled {
			return errors.New("store driver postgres requires db_server.enabled")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Fallback.Enabled && len(c.ExchangeRateAPI.Bases) == 0 {
		return errors.New("fallback requires at least one exchange_rate_api.bases entry")
	}
	return nil
}

// Init reads path (config.yaml when empty), an optional .env file and environment
// overrides. A missing config file is not an error: defaults and env apply.
func Init(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if path == "" {
		path = DefaultFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("store.driver", DriverRedis)
	v.SetDefault("store.key", "redis_bank_exchange_rates")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("db_server.auto_migrate", true)
	v.SetDefault("exchange_rate_api.base_url", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("fallback.write_through", true)
	v.SetDefault("fallback.snapshot_ttl_seconds", 60)
	v.SetDefault("fallback.cache_max_items", 16)
	v.SetDefault("scheduler.refresh_interval_sec", 0)
	v.SetDefault("exchange.rounding", "truncate")
}

func bindEnv(v *viper.Viper) {
	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// redis env vars
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")

	// store and provider env vars
	_ = v.BindEnv("store.driver", "STORE_DRIVER")
	_ = v.BindEnv("store.key", "STORE_KEY")
	_ = v.BindEnv("exchange_rate_api.api_key", "EXCHANGE_RATE_API_KEY")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
}
