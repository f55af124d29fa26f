package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Contains(t, cfg.Tickers, "NVDA")
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 10, cfg.Strategy.StochasticKPeriod)
	assert.Equal(t, 32.0, cfg.Strategy.SweetSpotLower)
	assert.Equal(t, 80.0, cfg.Strategy.SweetSpotUpper)
	assert.Equal(t, 100000.0, cfg.Portfolio.InitialCapital)
	assert.Equal(t, -10.0, cfg.Portfolio.StopLossPct)
	assert.Equal(t, 25.0, cfg.Portfolio.TakeProfitPct)
	assert.Equal(t, "0 0 22 * * 1-5", cfg.Schedule.ScanCron)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tickers: [AAPL, KO]
portfolio:
  initial_capital: 25000
  max_positions: 4
  stop_loss_pct: -8
strategy:
  min_cagr: 20
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "KO"}, cfg.Tickers)
	assert.Equal(t, 25000.0, cfg.Portfolio.InitialCapital)
	assert.Equal(t, 4, cfg.Portfolio.MaxPositions)
	assert.Equal(t, -8.0, cfg.Portfolio.StopLossPct)
	assert.Equal(t, 20.0, cfg.Strategy.MinCAGR)
	assert.Equal(t, 5000.0, cfg.Portfolio.PositionSize, "unset fields still get defaults")
}

func TestLoad_ExplicitZeroSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy:
  min_cagr: 0
  sweet_spot_lower: 0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// A configured zero is a value, not an unset field.
	assert.Equal(t, 0.0, cfg.Strategy.MinCAGR)
	assert.Equal(t, 0.0, cfg.Strategy.SweetSpotLower)
	assert.Equal(t, 80.0, cfg.Strategy.SweetSpotUpper, "untouched fields keep their defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VH_TICKERS", "NVDA, PLTR ,MSFT")
	t.Setenv("VH_STOP_LOSS_PCT", "-12.5")
	t.Setenv("VH_SCAN_CRON", "0 30 21 * * 1-5")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"NVDA", "PLTR", "MSFT"}, cfg.Tickers)
	assert.Equal(t, -12.5, cfg.Portfolio.StopLossPct)
	assert.Equal(t, "0 30 21 * * 1-5", cfg.Schedule.ScanCron)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.Portfolio.StopLossPct = 5
	assert.Error(t, cfg.Validate())

	cfg.Portfolio.StopLossPct = -10
	cfg.Strategy.SweetSpotLower = 90
	assert.Error(t, cfg.Validate())

	cfg.Strategy.SweetSpotLower = 32
	cfg.Email.Host = "smtp.example.com"
	cfg.Email.To = nil
	assert.Error(t, cfg.Validate())

	cfg.Email.To = []string{"ops@example.com"}
	assert.NoError(t, cfg.Validate())
}
