package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"VolatilityHunter/internal/config"
	"VolatilityHunter/internal/marketdata"
	"VolatilityHunter/internal/notifier"
	"VolatilityHunter/internal/portfolio"
	"VolatilityHunter/internal/recorder"
	"VolatilityHunter/internal/scheduler"
	"VolatilityHunter/internal/sector"
	"VolatilityHunter/internal/strategy"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	if lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		log = log.Level(lvl)
	}
	log.Info().Msg("VolatilityHunter starting")

	// Init market data provider
	var provider marketdata.Provider
	if os.Getenv("VH_MOCK_DATA") == "true" {
		provider = marketdata.NewMockProvider()
	} else {
		provider = marketdata.NewFileProvider(cfg.Data.Dir)
	}
	log.Info().Str("provider", provider.Name()).Msg("market data source")

	// Init strategy
	params := strategy.DefaultParams()
	params.StochasticKPeriod = cfg.Strategy.StochasticKPeriod
	params.StochasticDPeriod = cfg.Strategy.StochasticDPeriod
	params.StochasticSmooth = cfg.Strategy.StochasticSmooth
	params.SweetSpotLower = cfg.Strategy.SweetSpotLower
	params.SweetSpotUpper = cfg.Strategy.SweetSpotUpper
	params.MinCAGR = cfg.Strategy.MinCAGR
	classifier := strategy.NewClassifier(params, nil, log)
	scanner := strategy.NewScanner(classifier, log)

	// Init portfolio engine
	store := portfolio.NewStore(cfg.Portfolio.StateFile, log)
	engine := portfolio.NewEngine(portfolio.Config{
		InitialCapital: cfg.Portfolio.InitialCapital,
		PositionSize:   cfg.Portfolio.PositionSize,
		MaxPositions:   cfg.Portfolio.MaxPositions,
		MaxPerSector:   cfg.Portfolio.MaxPerSector,
		StopLossPct:    cfg.Portfolio.StopLossPct,
		TakeProfitPct:  cfg.Portfolio.TakeProfitPct,
	}, store, sector.DefaultCatalog(), log)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init notifier
	var notif notifier.Notifier
	if cfg.Email.Host != "" {
		notif = notifier.NewEmailNotifier(cfg.Email.Host, cfg.Email.Port,
			cfg.Email.Username, cfg.Email.Password, cfg.Email.From, cfg.Email.To, log)
	} else {
		notif = notifier.NewLogNotifier(log)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.New(ctx, provider, cfg.Tickers, scanner, engine, rec, notif, log)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("register scan task")
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.RunOnStart {
		log.Info().Msg("run_on_start enabled, executing scan cycle now")
		go sched.RunCycle()
	}

	log.Info().Msg("VolatilityHunter is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("VolatilityHunter stopped")
}
