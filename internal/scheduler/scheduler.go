package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"VolatilityHunter/internal/marketdata"
	"VolatilityHunter/internal/model"
	"VolatilityHunter/internal/notifier"
	"VolatilityHunter/internal/portfolio"
	"VolatilityHunter/internal/recorder"
	"VolatilityHunter/internal/strategy"
)

// Scheduler runs the scan-then-trade cycle on a cron schedule. Each cycle is
// synchronous start to finish; the portfolio engine serialises mutation, so a
// manual trigger overlapping a scheduled run cannot corrupt state.
type Scheduler struct {
	cron     *cron.Cron
	provider marketdata.Provider
	tickers  []string
	scanner  *strategy.Scanner
	engine   *portfolio.Engine
	recorder recorder.Recorder
	notifier notifier.Notifier
	log      zerolog.Logger
	ctx      context.Context
}

// New creates a scheduler wiring the whole cycle together.
func New(
	ctx context.Context,
	provider marketdata.Provider,
	tickers []string,
	scanner *strategy.Scanner,
	engine *portfolio.Engine,
	rec recorder.Recorder,
	notif notifier.Notifier,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		provider: provider,
		tickers:  tickers,
		scanner:  scanner,
		engine:   engine,
		recorder: rec,
		notifier: notif,
		log:      log.With().Str("component", "scheduler").Logger(),
		ctx:      ctx,
	}
}

// Register adds the scan task under the given cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.cron.AddFunc(scanCron, func() { s.RunCycle() }); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunCycle executes one full scan-and-trade cycle immediately.
func (s *Scheduler) RunCycle() {
	s.log.Info().Int("tickers", len(s.tickers)).Str("provider", s.provider.Name()).Msg("running scan cycle")

	data := make(map[string]model.PriceSeries, len(s.tickers))
	prices := make(map[string]float64)
	for _, ticker := range s.tickers {
		series, err := s.provider.Load(ticker)
		if err != nil {
			s.log.Warn().Str("ticker", ticker).Err(err).Msg("price data unavailable, skipping")
			continue
		}
		data[ticker] = series
		if bar, ok := series.Latest(); ok {
			prices[ticker] = bar.Close
		}
	}

	results := s.scanner.Scan(data)
	scan := results.Summary()
	s.log.Info().
		Int("scanned", scan.TotalScanned).
		Int("buy", scan.BuySignals).
		Int("sell", scan.SellSignals).
		Int("hold", scan.HoldSignals).
		Int("errors", scan.Errors).
		Msg("scan complete")

	trades := s.engine.ProcessSignals(results.RankedBuys(), results.Sell, prices)
	summary := s.engine.Summary(prices)

	s.record(results, scan, trades, summary)

	report := notifier.FormatScanReport(results, trades, summary)
	subject := fmt.Sprintf("VolatilityHunter: %d BUY, %d SELL, %d trades",
		scan.BuySignals, scan.SellSignals, len(trades.Buys)+len(trades.Sells))
	if err := notifier.SendWithRetry(s.ctx, s.notifier, subject, report, 3); err != nil {
		s.log.Error().Err(err).Msg("send report")
	}
}

func (s *Scheduler) record(results strategy.ScanResults, scan strategy.ScanSummary, trades portfolio.ExecutedTrades, summary model.PortfolioSummary) {
	if err := s.recorder.RecordScan(&recorder.ScanEvent{
		TotalScanned: scan.TotalScanned,
		BuySignals:   scan.BuySignals,
		SellSignals:  scan.SellSignals,
		HoldSignals:  scan.HoldSignals,
		Errors:       scan.Errors,
	}); err != nil {
		s.log.Error().Err(err).Msg("record scan")
	}

	for _, sig := range append(append([]model.SignalResult{}, results.Buy...), results.Sell...) {
		evt := &recorder.SignalEvent{
			Ticker:       sig.Ticker,
			Signal:       string(sig.Signal),
			Price:        sig.Indicators.Price,
			CAGR:         sig.Indicators.CAGR,
			QualityScore: sig.QualityScore,
			Reason:       sig.Reason,
		}
		if sig.Indicators.StochasticK != nil {
			evt.StochasticK = *sig.Indicators.StochasticK
		}
		if err := s.recorder.RecordSignal(evt); err != nil {
			s.log.Error().Err(err).Msg("record signal")
		}
	}

	for _, t := range append(append([]model.TradeRecord{}, trades.Sells...), trades.Buys...) {
		evt := &recorder.TradeEvent{
			Type:       string(t.Type),
			Ticker:     t.Ticker,
			Shares:     t.Shares,
			Price:      t.EntryPrice,
			ProfitLoss: t.ProfitLoss,
			Reason:     t.Reason,
		}
		if t.Type == model.TradeSell {
			evt.Price = t.ExitPrice
		}
		if err := s.recorder.RecordTrade(evt); err != nil {
			s.log.Error().Err(err).Msg("record trade")
		}
	}

	if err := s.recorder.RecordSnapshot(&recorder.SnapshotEvent{
		Cash:           summary.Cash,
		PositionsValue: summary.PositionsValue,
		TotalValue:     summary.TotalValue,
		TotalReturnPct: summary.TotalReturnPct,
		RealizedPL:     summary.RealizedPL,
		NumPositions:   summary.NumPositions,
	}); err != nil {
		s.log.Error().Err(err).Msg("record snapshot")
	}
}
