package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInit_Defaults(t *testing.T) {
	cfg, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, DriverRedis, cfg.Store.Driver)
	require.Equal(t, "redis_bank_exchange_rates", cfg.Store.Key)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, "truncate", cfg.Exchange.Rounding)
	require.True(t, cfg.Fallback.WriteThrough)
	require.Equal(t, time.Minute, cfg.Fallback.SnapshotTTL())
	require.Equal(t, 10*time.Second, cfg.HTTPClient.Timeout())
}

func TestInit_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
store:
  driver: MEMORY
fallback:
  enabled: true
  write_through: false
exchange_rate_api:
  bases: [USD, EUR]
scheduler:
  refresh_interval_sec: 300
exchange:
  rounding: half_even
`)
	t.Setenv("EXCHANGE_RATE_API_KEY", "secret")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Init(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, DriverMemory, cfg.Store.Driver)
	require.True(t, cfg.Fallback.Enabled)
	require.False(t, cfg.Fallback.WriteThrough)
	require.Equal(t, []string{"USD", "EUR"}, cfg.ExchangeRateAPI.Bases)
	require.Equal(t, "secret", cfg.ExchangeRateAPI.APIKey)
	require.Equal(t, "redis:6379", cfg.Redis.Addr)
	require.Equal(t, 300, cfg.Scheduler.RefreshIntervalSec)
	require.Equal(t, "half_even", cfg.Exchange.Rounding)
}

func TestInit_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "http_server: [")

	_, err := Init(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading config file")
}

func TestAppConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     AppConfig
		wantErr string
	}{
		{name: "memory", cfg: AppConfig{Store: Store{Driver: DriverMemory}}},
		{name: "unknown driver", cfg: AppConfig{Store: Store{Driver: "mongo"}}, wantErr: "unknown store driver"},
		{name: "postgres without db", cfg: AppConfig{Store: Store{Driver: DriverPostgres}}, wantErr: "db_server.enabled"},
		{
			name: "postgres with db",
			cfg:  AppConfig{Store: Store{Driver: DriverPostgres}, DbServer: DbServer{Enabled: true}},
		},
		{
			name:    "fallback without bases",
			cfg:     AppConfig{Store: Store{Driver: DriverRedis}, Fallback: Fallback{Enabled: true}},
			wantErr: "bases",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDbServer_GetConnectionStr(t *testing.T) {
	db := DbServer{User: "u", Pass: "p", Host: "h", Port: "5432", Name: "rates"}
	require.Equal(t, "user=u password=p host=h port=5432 dbname=rates sslmode=disable", db.GetConnectionStr())
}
