package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Data    struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Strategy struct {
		StochasticKPeriod int     `yaml:"stochastic_k_period"`
		StochasticDPeriod int     `yaml:"stochastic_d_period"`
		StochasticSmooth  int     `yaml:"stochastic_smooth"`
		SweetSpotLower    float64 `yaml:"sweet_spot_lower"`
		SweetSpotUpper    float64 `yaml:"sweet_spot_upper"`
		MinCAGR           float64 `yaml:"min_cagr"`
	} `yaml:"strategy"`
	Portfolio struct {
		InitialCapital float64 `yaml:"initial_capital"`
		PositionSize   float64 `yaml:"position_size"`
		MaxPositions   int     `yaml:"max_positions"`
		MaxPerSector   int     `yaml:"max_per_sector"`
		StopLossPct    float64 `yaml:"stop_loss_pct"`
		TakeProfitPct  float64 `yaml:"take_profit_pct"`
		StateFile      string  `yaml:"state_file"`
	} `yaml:"portfolio"`
	Schedule struct {
		ScanCron   string `yaml:"scan_cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Email struct {
		Host     string   `yaml:"host"`
		Port     int      `yaml:"port"`
		Username string   `yaml:"username"`
		Password string   `yaml:"password"`
		From     string   `yaml:"from"`
		To       []string `yaml:"to"`
	} `yaml:"email"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Defaults are populated first and the file is unmarshalled over
// them, so an explicit zero in the file (say strategy.min_cagr: 0) is kept
// rather than mistaken for an unset field.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("VH_TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("VH_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("VH_STATE_FILE"); v != "" {
		cfg.Portfolio.StateFile = v
	}
	if v := os.Getenv("VH_STOP_LOSS_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.StopLossPct = f
		}
	}
	if v := os.Getenv("VH_TAKE_PROFIT_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.TakeProfitPct = f
		}
	}
	if v := os.Getenv("VH_SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("VH_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.Host = v
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.Email.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("VH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// defaultConfig returns the production defaults that Load layers the file
// and environment on top of.
func defaultConfig() *Config {
	cfg := &Config{
		Tickers: []string{
			"NVDA", "NFLX", "PLTR", "SHOP", "ZS", "SPOT", "CRWD", "DECK",
			"META", "AVGO", "LRCX", "CSCO", "MU", "AMZN", "MELI", "TSLA",
			"HD", "KLAC", "MSFT", "GOOGL", "QQQ",
		},
		LogLevel: "info",
	}
	cfg.Data.Dir = "data"
	cfg.Strategy.StochasticKPeriod = 10
	cfg.Strategy.StochasticDPeriod = 3
	cfg.Strategy.StochasticSmooth = 3
	cfg.Strategy.SweetSpotLower = 32
	cfg.Strategy.SweetSpotUpper = 80
	cfg.Strategy.MinCAGR = 15.0
	cfg.Portfolio.InitialCapital = 100000.0
	cfg.Portfolio.PositionSize = 5000.0
	cfg.Portfolio.MaxPositions = 10
	cfg.Portfolio.MaxPerSector = 3
	cfg.Portfolio.StopLossPct = -10.0
	cfg.Portfolio.TakeProfitPct = 25.0
	cfg.Portfolio.StateFile = "data/portfolio.json"
	cfg.Schedule.ScanCron = "0 0 22 * * 1-5"
	cfg.Email.Port = 587
	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	if c.Portfolio.InitialCapital <= 0 {
		return fmt.Errorf("portfolio.initial_capital must be positive")
	}
	if c.Portfolio.PositionSize <= 0 {
		return fmt.Errorf("portfolio.position_size must be positive")
	}
	if c.Portfolio.MaxPositions <= 0 {
		return fmt.Errorf("portfolio.max_positions must be positive")
	}
	if c.Portfolio.StopLossPct >= 0 {
		return fmt.Errorf("portfolio.stop_loss_pct must be negative")
	}
	if c.Portfolio.TakeProfitPct <= 0 {
		return fmt.Errorf("portfolio.take_profit_pct must be positive")
	}
	if c.Strategy.SweetSpotLower >= c.Strategy.SweetSpotUpper {
		return fmt.Errorf("strategy.sweet_spot_lower must be below sweet_spot_upper")
	}
	if c.Email.Host != "" && len(c.Email.To) == 0 {
		return fmt.Errorf("email.to is required when email.host is set")
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
